package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/cp"

	"github.com/cespare/aoc2021/solver"
)

// stash copies the puzzle input at src into the input directory as the
// input for day, replacing any previously stashed copy.
func (a *app) stash(day, src string) error {
	if !hasDay(day) {
		return usageError("no solvers for day %q (run 'advent list')", day)
	}
	fi, err := os.Stat(src)
	if err != nil {
		return &exitError{code: 1, msg: fmt.Sprintf("could not access input data from file %s", src)}
	}
	if fi.IsDir() {
		return &exitError{code: 1, msg: fmt.Sprintf("%s is a directory", src)}
	}
	if err := os.MkdirAll(a.cfg.InputDir, 0o755); err != nil {
		return fmt.Errorf("cannot create input dir: %s", err)
	}
	base := filepath.Join(a.cfg.InputDir, "day"+day+".txt")
	dst := base
	if strings.HasSuffix(src, zstdExt) {
		dst += zstdExt
	}
	for _, name := range []string{base, base + zstdExt} {
		if name == dst {
			continue
		}
		if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("cannot remove old input: %s", err)
		}
	}
	if err := cp.CopyFile(dst, src); err != nil {
		return fmt.Errorf("cannot stash input: %s", err)
	}
	a.log.infof("Stashed %s (%s) as %s", src, sizeString(int(fi.Size())), dst)
	return nil
}

func hasDay(day string) bool {
	for _, key := range solver.Keys() {
		if solver.Group(key) == day {
			return true
		}
	}
	return false
}
