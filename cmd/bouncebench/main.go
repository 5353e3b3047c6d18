// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command bouncebench measures the parity evaluation strategies of
// package bounce against each other: it times each strategy's entry at
// a configurable input, logs the per-iteration statistics, optionally
// persists them to a bbolt history file for run-over-run comparison,
// and can demonstrate the unsafe baseline's fatal stack exhaustion in
// a sacrificial child process.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"pkt.systems/pslog"

	"code.hybscloud.com/bounce"
)

// overflowChildEnv marks the re-exec'd process that performs the
// overflowing evaluation; the fault is fatal to a whole process, so it
// must not be the one reporting results.
const overflowChildEnv = "BOUNCEBENCH_OVERFLOW_CHILD"

func main() {
	var (
		configPath   = flag.String("f", "", "run configuration file (YAML)")
		input        = flag.Int("n", bounce.FixedInput, "input magnitude to evaluate")
		iterations   = flag.Int("i", 5, "timed iterations per strategy")
		warmup       = flag.Int("w", 1, "untimed warmup iterations per strategy")
		maxDepth     = flag.Int("d", bounce.DefaultMaxDepth, "hybrid direct-recursion budget")
		strategies   = flag.String("s", "", "comma-separated strategy filter (default all)")
		storePath    = flag.String("store", "", "bbolt run-history file")
		stackCap     = flag.Int("stack-cap", 1<<21, "stack cap in bytes for the overflow demo child")
		overflowDemo = flag.Bool("overflow-demo", false, "demonstrate the baseline's stack exhaustion and exit")
		history      = flag.Bool("history", false, "print the stored run history and exit")
	)
	flag.Parse()

	logger := pslog.New(os.Stderr).With("app", "bouncebench")

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			logger.Warn("bad configuration", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	// Explicit flags win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Input = *input
		case "i":
			cfg.Iterations = *iterations
		case "w":
			cfg.Warmup = *warmup
		case "d":
			cfg.MaxDepth = *maxDepth
		case "s":
			cfg.Strategies = splitList(*strategies)
		case "store":
			cfg.Store = *storePath
		case "stack-cap":
			cfg.OverflowStack = *stackCap
		}
	})
	if err := cfg.validate(); err != nil {
		logger.Warn("bad configuration", "error", err)
		os.Exit(1)
	}

	if *overflowDemo {
		if err := runOverflowDemo(logger, cfg); err != nil {
			logger.Warn("overflow demo failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if *history {
		if err := printHistory(os.Stdout, cfg); err != nil {
			logger.Warn("history failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := run(logger, cfg); err != nil {
		logger.Warn("run failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *pslog.Logger, cfg Config) error {
	strategies, err := cfg.selectStrategies()
	if err != nil {
		return err
	}

	var store *Store
	if cfg.Store != "" {
		store, err = OpenStore(cfg.Store)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	logger.Info("measuring",
		"input", cfg.Input,
		"iterations", cfg.Iterations,
		"warmup", cfg.Warmup,
		"maxDepth", cfg.MaxDepth,
		"strategies", len(strategies))

	for _, s := range strategies {
		if !s.StackSafe && cfg.Input > bounce.FixedInput {
			logger.Warn("baseline at large input may exhaust the native stack",
				"strategy", s.Name, "input", cfg.Input)
		}
		m := measure(s.Eval, cfg.Input, cfg.Warmup, cfg.Iterations)
		logger.Info("measured",
			"strategy", s.Name,
			"nsPerOp", m.NsPerOp,
			"best", m.BestNs,
			"worst", m.WorstNs,
			"marker", m.Marker)

		if store == nil {
			continue
		}
		prev, ok, err := store.Last(s.Name)
		if err != nil {
			return err
		}
		if ok && prev.Input == cfg.Input && prev.NsPerOp > 0 {
			delta := float64(m.NsPerOp-prev.NsPerOp) / float64(prev.NsPerOp) * 100
			logger.Info("previous run",
				"strategy", s.Name,
				"nsPerOp", prev.NsPerOp,
				"deltaPct", delta,
				"when", prev.When.Format(time.RFC3339))
		}
		rec := RunRecord{
			Strategy:   s.Name,
			Input:      cfg.Input,
			Iterations: m.Iterations,
			NsPerOp:    m.NsPerOp,
			BestNs:     m.BestNs,
			WorstNs:    m.WorstNs,
			Marker:     m.Marker,
			When:       time.Now(),
		}
		if err := store.Put(rec); err != nil {
			return err
		}
	}
	return nil
}

// measurement summarizes the timed iterations of one strategy.
type measurement struct {
	Iterations int
	NsPerOp    int64
	BestNs     int64
	WorstNs    int64
	Marker     string
}

// measure times iterations of eval at input after warmup untimed runs.
// The marker of the last evaluation is carried in the result so the
// computed parity stays observed end to end.
func measure(eval func(int) bool, input, warmup, iterations int) measurement {
	even := false
	for range warmup {
		even = eval(input)
	}
	var total, best, worst time.Duration
	for i := 0; i < iterations; i++ {
		start := time.Now()
		even = eval(input)
		d := time.Since(start)
		total += d
		if i == 0 || d < best {
			best = d
		}
		if d > worst {
			worst = d
		}
	}
	m := measurement{
		Iterations: iterations,
		NsPerOp:    total.Nanoseconds() / int64(iterations),
		BestNs:     best.Nanoseconds(),
		WorstNs:    worst.Nanoseconds(),
		Marker:     bounce.MarkOdd,
	}
	if even {
		m.Marker = bounce.MarkEven
	}
	return m
}

// runOverflowDemo shows the failure mode the stack-safe strategies
// exist to avoid. The parent re-execs itself with a marker environment
// variable; the child lowers the runtime stack cap and evaluates the
// baseline entry, which needs native stack far beyond the cap at the
// fixed input; the parent then inspects the wreckage. Nothing recovers
// the fault; it is fatal to the whole child process.
func runOverflowDemo(logger *pslog.Logger, cfg Config) error {
	if os.Getenv(overflowChildEnv) == "1" {
		debug.SetMaxStack(cfg.OverflowStack)
		fmt.Println(bounce.EntryBaseline())
		return nil
	}

	logger.Info("spawning overflow child",
		"stackCap", cfg.OverflowStack,
		"input", bounce.FixedInput)
	cmd := exec.Command(os.Args[0], "-overflow-demo", "-stack-cap", strconv.Itoa(cfg.OverflowStack))
	cmd.Env = append(os.Environ(), overflowChildEnv+"=1")
	out, err := cmd.CombinedOutput()
	if err == nil {
		return fmt.Errorf("baseline survived input %d under a %d-byte stack cap; raise the input or lower the cap",
			bounce.FixedInput, cfg.OverflowStack)
	}
	if !strings.Contains(string(out), "stack overflow") {
		return fmt.Errorf("child failed without a stack overflow: %w", err)
	}
	logger.Info("baseline exhausted the lowered stack cap",
		"stackCap", cfg.OverflowStack,
		"child", err.Error())
	return nil
}

// printHistory writes the stored records of the configured strategies
// to w, oldest first. main hands it stdout while logs stay on stderr,
// so the history itself can be piped.
func printHistory(w io.Writer, cfg Config) error {
	if cfg.Store == "" {
		return fmt.Errorf("history needs a store file (-store or the configuration's store field)")
	}
	store, err := OpenStore(cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	strategies, err := cfg.selectStrategies()
	if err != nil {
		return err
	}
	for _, s := range strategies {
		recs, err := store.History(s.Name)
		if err != nil {
			return err
		}
		for _, rec := range recs {
			fmt.Fprintf(w, "%s %s input=%d nsPerOp=%d best=%d worst=%d marker=%s\n",
				rec.When.Format(time.RFC3339), rec.Strategy, rec.Input,
				rec.NsPerOp, rec.BestNs, rec.WorstNs, rec.Marker)
		}
	}
	return nil
}

// splitList splits a comma-separated flag value, dropping empties.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
