package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/cespare/aoc2021/solver"
)

func (a *app) repl() error {
	historyFile := ""
	if err := os.MkdirAll(a.cfg.InputDir, 0o755); err == nil {
		historyFile = filepath.Join(a.cfg.InputDir, ".advent_history")
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "advent> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		if done := a.eval(line); done {
			return nil
		}
	}
}

// eval runs one REPL line. It reports whether the session should end.
func (a *app) eval(line string) (done bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "quit", "exit":
		return true
	case "list":
		fmt.Fprintln(a.stdout, strings.Join(solver.Keys(), " "))
		return false
	}
	if len(fields) > 2 {
		a.log.errorf("usage: <solver> [file]")
		return false
	}
	var file string
	if len(fields) == 2 {
		file = fields[1]
	}
	if err := a.solve(fields[0], file); err != nil {
		a.log.errorf("%s", err)
	}
	return false
}
