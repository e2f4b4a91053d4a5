package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/togglenet/minsteps"
	"github.com/katalvlaran/togglenet/parity"
	"github.com/katalvlaran/togglenet/parse"
)

var errTotalOverflow = errors.New("total overflow")

// solveOptions carries the resolved knobs for one run.
type solveOptions struct {
	wantP1   bool
	wantP2   bool
	workers  int
	minsteps minsteps.Options
	parity   parity.Options
}

func runSolve(cmd *cobra.Command, args []string) error {
	opts := solveOptions{
		wantP1:   part == "1" || part == "both",
		wantP2:   part == "2" || part == "both",
		workers:  workers,
		minsteps: minsteps.Options{Algo: minsteps.AutoSelect, BFSMaxPositions: cfg.BFSMaxPositions},
		parity:   parity.Options{SeedLimit: cfg.SeedLimit},
	}
	if !opts.wantP1 && !opts.wantP2 {
		return fmt.Errorf("invalid --part %q, want 1, 2 or both", part)
	}
	if opts.workers == 0 {
		opts.workers = cfg.Workers
	}
	if opts.workers <= 0 {
		opts.workers = runtime.NumCPU()
	}

	return solveFile(args[0], opts, cmd.OutOrStdout())
}

// solveFile answers the requested parts for every line and prints checked
// totals. Lines are independent, so they are solved in parallel; every
// worker writes only its own slot, and aggregation walks the slots in file
// order afterwards, which keeps totals and error reporting deterministic.
func solveFile(path string, opts solveOptions, out io.Writer) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("%s: no puzzle lines", path)
	}

	log.WithFields(log.Fields{
		"file":    path,
		"lines":   len(lines),
		"workers": opts.workers,
	}).Info("solving")
	start := time.Now()

	part1 := make([]uint64, len(lines))
	part2 := make([]uint64, len(lines))
	failures := make([]error, len(lines))

	var g errgroup.Group
	g.SetLimit(opts.workers)
	for i, line := range lines {
		i, line := i, line // capture per-iteration copies for the goroutine (pre-1.22 semantics)
		g.Go(func() error {
			failures[i] = solveLine(line, i+1, opts, part1, part2)
			return nil
		})
	}
	_ = g.Wait()

	for _, ferr := range failures {
		if ferr != nil {
			return ferr
		}
	}

	if opts.wantP1 {
		total, err := sumChecked(part1)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Part 1: %d\n", total)
	}
	if opts.wantP2 {
		total, err := sumChecked(part2)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Part 2: %d\n", total)
	}

	log.WithFields(log.Fields{
		"file":    path,
		"elapsed": time.Since(start),
	}).Info("solved")
	return nil
}

// solveLine parses one line and answers the requested parts into its slots.
// Errors carry the 1-based line number.
func solveLine(line string, number int, opts solveOptions, part1, part2 []uint64) error {
	p, err := parse.Line(line)
	if err != nil {
		return fmt.Errorf("line %d: %w", number, err)
	}

	if opts.wantP1 {
		res, err := minsteps.Solve(p, opts.minsteps)
		if err != nil {
			return fmt.Errorf("line %d: %w", number, err)
		}
		part1[number-1] = uint64(res.Count)
		log.WithFields(log.Fields{
			"line":  number,
			"algo":  res.Algo,
			"count": res.Count,
		}).Debug("minimum distinct steps")
	}

	if opts.wantP2 {
		res, err := parity.Solve(p, opts.parity)
		if err != nil {
			return fmt.Errorf("line %d: %w", number, err)
		}
		part2[number-1] = res.Total
		log.WithFields(log.Fields{
			"line":   number,
			"parity": fmt.Sprintf("%b", p.ParityPattern()),
			"total":  res.Total,
		}).Debug("minimum applications")
	}
	return nil
}

// sumChecked adds per-line answers, refusing to wrap around.
func sumChecked(values []uint64) (uint64, error) {
	var total uint64
	for i, v := range values {
		if total > math.MaxUint64-v {
			return 0, fmt.Errorf("line %d: %w", i+1, errTotalOverflow)
		}
		total += v
	}
	return total, nil
}

// readLines loads the input file. The scanner drops the final newline but
// keeps interior blank lines, so line numbers in errors stay accurate.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}
