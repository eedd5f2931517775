package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cespare/wait"

	"github.com/cespare/aoc2021/solver"
)

type allResult struct {
	key string
	n   int64
	err error
	ran bool
}

// runAll runs every solver that has a stashed input, concurrently, and
// prints the results in key order. A solver whose input is corrupt is
// reported and the others still run; a failure to read an input stops
// the whole run.
func (a *app) runAll() error {
	keys := solver.Keys()
	results := make([]allResult, len(keys))
	var g wait.Group
	for i, key := range keys {
		path := stashedInput(a.cfg.InputDir, solver.Group(key))
		ok, err := inputExists(path)
		if err != nil {
			return err
		}
		if !ok {
			a.log.debugf("%s: no input at %s; skipping", key, path)
			continue
		}
		fn, _ := solver.Lookup(key)
		g.Go(func(quit <-chan struct{}) error {
			select {
			case <-quit:
				return nil
			default:
			}
			r := &results[i]
			r.key = key
			r.ran = true
			r.n, r.err = a.solveFile(key, fn, path)
			if r.err != nil && r.err != errCorruptInput {
				return r.err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	var failed int
	for _, r := range results {
		if !r.ran {
			continue
		}
		if r.err != nil {
			failed++
			fmt.Fprintf(tw, "%s\t%s\t\n", r.key, r.err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", r.key, formatResult(r.n, a.cfg.Comma))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		return &exitError{code: 1, msg: fmt.Sprintf("%d solver(s) failed", failed)}
	}
	return nil
}
