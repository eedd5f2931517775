// Command advent runs puzzle solvers against puzzle input files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kr/pretty"

	"github.com/cespare/aoc2021/solver"
)

func main() {
	_ = godotenv.Load()
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv); err != nil {
		code := 1
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
		}
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, "advent:", msg)
		}
		os.Exit(code)
	}
}

// exitError is an error that carries the process exit status.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

var errCorruptInput = &exitError{code: 1, msg: "data inside input file is corrupted"}

func usageError(format string, args ...interface{}) error {
	return &exitError{code: 2, msg: fmt.Sprintf(format, args...)}
}

type app struct {
	cfg    config
	log    *logger
	stdin  io.Reader
	stdout io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) error {
	fs := flag.NewFlagSet("advent", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, fs) }
	var (
		configPath = fs.String("config", "", "Path to an INI config file")
		inputDir   = fs.String("inputdir", "", "Directory holding stashed puzzle inputs")
		verbose    = fs.Bool("v", false, "Verbose (debug) logging")
		comma      = fs.Bool("comma", false, "Print results with thousands separators")
		profile    = fs.String("fgprof", "", "Write a wall-clock profile to this file")
	)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return &exitError{code: 2}
	}

	cfg, err := loadConfig(*configPath, getenv)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "inputdir":
			cfg.InputDir = *inputDir
		case "v":
			cfg.Verbose = *verbose
		case "comma":
			cfg.Comma = *comma
		}
	})

	a := &app{
		cfg:    cfg,
		log:    newLogger(stderr, cfg.Verbose, getenv("NO_COLOR") != ""),
		stdin:  stdin,
		stdout: stdout,
	}
	a.log.debugf("config: %# v", pretty.Formatter(cfg))

	if *profile != "" {
		stop, err := startProfile(*profile)
		if err != nil {
			return err
		}
		defer func() {
			if err := stop(); err != nil {
				a.log.warnf("Error writing profile: %s", err)
			}
		}()
	}

	if fs.NArg() == 0 {
		printUsage(stderr, fs)
		return &exitError{code: 2}
	}
	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "list":
		if len(rest) > 0 {
			return usageError("list takes no arguments")
		}
		for _, key := range solver.Keys() {
			fmt.Fprintln(stdout, key)
		}
		return nil
	case "all":
		if len(rest) > 0 {
			return usageError("all takes no arguments")
		}
		return a.runAll()
	case "stash":
		if len(rest) != 2 {
			return usageError("usage: advent stash <day> <file>")
		}
		return a.stash(rest[0], rest[1])
	case "repl":
		if len(rest) > 0 {
			return usageError("repl takes no arguments")
		}
		return a.repl()
	}
	if len(rest) > 1 {
		return usageError("too many arguments; usage: advent <solver> [file]")
	}
	var file string
	if len(rest) == 1 {
		file = rest[0]
	}
	return a.solve(cmd, file)
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "usage: advent [flags] <solver> [file]")
	fmt.Fprintln(w, "       advent [flags] list | all | repl")
	fmt.Fprintln(w, "       advent [flags] stash <day> <file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "where solver is one of:")
	fmt.Fprintln(w, " ", strings.Join(solver.Keys(), " "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "If file is omitted, the input stashed for that day is used;")
	fmt.Fprintln(w, `a file of "-" reads standard input.`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

// solve runs the solver named by key against the input in file and prints
// the result.
func (a *app) solve(key, file string) error {
	fn, ok := solver.Lookup(key)
	if !ok {
		return usageError("invalid solver signature %q specified (run 'advent list')", key)
	}
	path := file
	if path == "" {
		path = stashedInput(a.cfg.InputDir, solver.Group(key))
	}
	n, err := a.solveFile(key, fn, path)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, formatResult(n, a.cfg.Comma))
	return nil
}

func (a *app) solveFile(key string, fn solver.Solver, path string) (int64, error) {
	input, err := readInput(path, a.stdin)
	if err != nil {
		a.log.debugf("%s", err)
		return 0, &exitError{code: 1, msg: fmt.Sprintf("could not access input data from file %s", path)}
	}
	a.log.debugf("Read %s of input from %s", sizeString(len(input)), path)
	n, err := fn(input)
	if err != nil {
		if errors.Is(err, solver.ErrInvalidInput) {
			a.log.debugf("%s: %s", key, err)
			return 0, errCorruptInput
		}
		return 0, err
	}
	return n, nil
}
