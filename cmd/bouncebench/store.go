// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// RunRecord is one persisted measurement, JSON-encoded in the store so
// the history file is inspectable with ordinary tools.
type RunRecord struct {
	Strategy   string    `json:"strategy"`
	Input      int       `json:"input"`
	Iterations int       `json:"iterations"`
	NsPerOp    int64     `json:"nsPerOp"`
	BestNs     int64     `json:"bestNs"`
	WorstNs    int64     `json:"worstNs"`
	Marker     string    `json:"marker"`
	When       time.Time `json:"when"`
}

// storeKeyLayout is fixed-width UTC so bbolt's byte-ordered keys sort
// chronologically; RFC3339Nano trims trailing zeros and would not.
const storeKeyLayout = "2006-01-02T15:04:05.000000000Z"

// Store keeps run history in a bbolt file, one bucket per strategy,
// keyed by timestamp.
type Store struct {
	db *bolt.DB
}

// OpenStore opens or creates the history file at path.
func OpenStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put appends rec to its strategy's history.
func (s *Store) Put(rec RunRecord) error {
	buf, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	key := []byte(rec.When.UTC().Format(storeKeyLayout))
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(rec.Strategy))
		if err != nil {
			return err
		}
		return b.Put(key, buf)
	})
}

// Last returns the most recent record for strategy, reporting false
// when the strategy has no history yet.
func (s *Store) Last(strategy string) (RunRecord, bool, error) {
	var rec RunRecord
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(strategy))
		if b == nil {
			return nil
		}
		_, v := b.Cursor().Last()
		if v == nil {
			return nil
		}
		if err := json.Unmarshal(v, &rec); err != nil {
			return fmt.Errorf("json unmarshal: %w", err)
		}
		found = true
		return nil
	})
	return rec, found, err
}

// History returns a strategy's records oldest first.
func (s *Store) History(strategy string) ([]RunRecord, error) {
	var recs []RunRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(strategy))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var rec RunRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("json unmarshal: %w", err)
			}
			recs = append(recs, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}
