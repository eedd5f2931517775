package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"github.com/cespare/aoc2021/solver"
)

const (
	day1Sample = "199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n"
	day2Sample = "forward 5\ndown 5\nforward 8\nup 3\ndown 8\nforward 2\n"
	day3Sample = "00100\n11110\n10110\n10111\n10101\n01111\n00111\n11100\n10000\n11001\n00010\n01010\n"
)

type testRun struct {
	t      *testing.T
	home   string
	env    map[string]string
	stdin  string
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newTestRun(t *testing.T) *testRun {
	home := t.TempDir()
	return &testRun{
		t:    t,
		home: home,
		env: map[string]string{
			"HOME":             home,
			"ADVENT_INPUT_DIR": filepath.Join(home, "inputs"),
		},
	}
}

func (tr *testRun) run(args ...string) error {
	tr.stdout.Reset()
	tr.stderr.Reset()
	getenv := func(k string) string { return tr.env[k] }
	return run(args, strings.NewReader(tr.stdin), &tr.stdout, &tr.stderr, getenv)
}

func (tr *testRun) writeFile(name, contents string) string {
	tr.t.Helper()
	path := filepath.Join(tr.home, name)
	require.NoError(tr.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(tr.t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func requireExitCode(t *testing.T, err error, code int) *exitError {
	t.Helper()
	var ee *exitError
	require.True(t, errors.As(err, &ee), "got error %v; want *exitError", err)
	require.Equal(t, code, ee.code)
	return ee
}

func TestSolveFile(t *testing.T) {
	tr := newTestRun(t)
	path := tr.writeFile("day2.txt", day2Sample)
	for _, tt := range []struct {
		key  string
		want string
	}{
		{"2-1", "150\n"},
		{"2-2", "900\n"},
	} {
		require.NoError(t, tr.run(tt.key, path))
		require.Equal(t, tt.want, tr.stdout.String())
	}
}

func TestSolveStdin(t *testing.T) {
	tr := newTestRun(t)
	tr.stdin = day1Sample
	require.NoError(t, tr.run("1-1", "-"))
	require.Equal(t, "7\n", tr.stdout.String())
}

func TestSolveComma(t *testing.T) {
	tr := newTestRun(t)
	path := tr.writeFile("in.txt", "forward 1000\ndown 1000\n")
	require.NoError(t, tr.run("-comma", "2-1", path))
	require.Equal(t, "1,000,000\n", tr.stdout.String())
}

func TestSolveZstd(t *testing.T) {
	tr := newTestRun(t)
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := enc.EncodeAll([]byte(day3Sample), nil)
	require.NoError(t, enc.Close())
	path := tr.writeFile("day3.txt.zst", string(compressed))

	require.NoError(t, tr.run("3-1", path))
	require.Equal(t, "198\n", tr.stdout.String())
	require.NoError(t, tr.run("3-2", path))
	require.Equal(t, "230\n", tr.stdout.String())
}

func TestUnknownSolverIsNotCorruptInput(t *testing.T) {
	tr := newTestRun(t)
	path := tr.writeFile("bad.txt", "sideways 3\n")

	ee := requireExitCode(t, tr.run("9-9", path), 2)
	require.Contains(t, ee.msg, `invalid solver signature "9-9"`)

	err := tr.run("2-1", path)
	requireExitCode(t, err, 1)
	require.Equal(t, errCorruptInput, err)
	require.Empty(t, tr.stdout.String())
}

func TestSolveMissingFile(t *testing.T) {
	tr := newTestRun(t)
	missing := filepath.Join(tr.home, "nope.txt")
	ee := requireExitCode(t, tr.run("1-1", missing), 1)
	require.Equal(t, "could not access input data from file "+missing, ee.msg)
}

func TestNoArgs(t *testing.T) {
	tr := newTestRun(t)
	requireExitCode(t, tr.run(), 2)
	require.Contains(t, tr.stderr.String(), "usage: advent")
	require.Contains(t, tr.stderr.String(), "1-1 1-2")
}

func TestBadFlag(t *testing.T) {
	tr := newTestRun(t)
	requireExitCode(t, tr.run("-nosuchflag", "1-1"), 2)
}

func TestList(t *testing.T) {
	tr := newTestRun(t)
	require.NoError(t, tr.run("list"))
	require.Equal(t, strings.Join(solver.Keys(), "\n")+"\n", tr.stdout.String())
}

func TestStashThenSolve(t *testing.T) {
	tr := newTestRun(t)
	src := tr.writeFile("download.txt", day1Sample)
	require.NoError(t, tr.run("stash", "1", src))

	b, err := os.ReadFile(filepath.Join(tr.home, "inputs", "day1.txt"))
	require.NoError(t, err)
	require.Equal(t, day1Sample, string(b))

	require.NoError(t, tr.run("1-2"))
	require.Equal(t, "5\n", tr.stdout.String())
}

func TestStashReplacesCompressedCopy(t *testing.T) {
	tr := newTestRun(t)
	old := tr.writeFile("inputs/day2.txt.zst", "stale")
	src := tr.writeFile("download.txt", day2Sample)
	require.NoError(t, tr.run("stash", "2", src))
	_, err := os.Stat(old)
	require.True(t, os.IsNotExist(err), "stale compressed input still present")
}

func TestStashErrors(t *testing.T) {
	tr := newTestRun(t)
	src := tr.writeFile("download.txt", day1Sample)
	requireExitCode(t, tr.run("stash", "42", src), 2)
	requireExitCode(t, tr.run("stash", "1", filepath.Join(tr.home, "missing")), 1)
	requireExitCode(t, tr.run("stash", "1"), 2)
}

func TestSolveFlagOverridesInputDir(t *testing.T) {
	tr := newTestRun(t)
	tr.writeFile("other/day1.txt", day1Sample)
	require.NoError(t, tr.run("-inputdir", filepath.Join(tr.home, "other"), "1-1"))
	require.Equal(t, "7\n", tr.stdout.String())
}

func TestAll(t *testing.T) {
	tr := newTestRun(t)
	tr.writeFile("inputs/day1.txt", day1Sample)
	tr.writeFile("inputs/day3.txt", day3Sample)
	require.NoError(t, tr.run("all"))

	var got [][]string
	for _, line := range strings.Split(strings.TrimSpace(tr.stdout.String()), "\n") {
		got = append(got, strings.Fields(line))
	}
	want := [][]string{
		{"1-1", "7"},
		{"1-2", "5"},
		{"3-1", "198"},
		{"3-2", "230"},
	}
	require.Equal(t, want, got)
}

func TestAllReportsCorruptInput(t *testing.T) {
	tr := newTestRun(t)
	tr.writeFile("inputs/day1.txt", day1Sample)
	tr.writeFile("inputs/day2.txt", "forward x\n")
	ee := requireExitCode(t, tr.run("all"), 1)
	require.Equal(t, "2 solver(s) failed", ee.msg)

	out := tr.stdout.String()
	require.Contains(t, out, "1-1")
	require.Contains(t, out, "2-2  data inside input file is corrupted")
}

func TestEval(t *testing.T) {
	tr := newTestRun(t)
	path := tr.writeFile("day1.txt", day1Sample)
	a := &app{
		cfg:    config{InputDir: filepath.Join(tr.home, "inputs")},
		log:    newLogger(&tr.stderr, false, true),
		stdin:  strings.NewReader(""),
		stdout: &tr.stdout,
	}

	require.False(t, a.eval(""))
	require.False(t, a.eval("1-1 "+path))
	require.Equal(t, "7\n", tr.stdout.String())

	tr.stdout.Reset()
	require.False(t, a.eval("list"))
	require.Equal(t, strings.Join(solver.Keys(), " ")+"\n", tr.stdout.String())

	require.False(t, a.eval("7-7 "+path))
	require.Contains(t, tr.stderr.String(), `invalid solver signature "7-7"`)

	require.True(t, a.eval("quit"))
}

func TestAllVerboseConcurrentLogging(t *testing.T) {
	tr := newTestRun(t)
	tr.writeFile("inputs/day1.txt", day1Sample)
	tr.writeFile("inputs/day2.txt", day2Sample)
	tr.writeFile("inputs/day3.txt", day3Sample)
	for i := 0; i < 20; i++ {
		require.NoError(t, tr.run("-v", "all"))
		for _, key := range solver.Keys() {
			require.Contains(t, tr.stdout.String(), key)
		}
		require.Contains(t, tr.stderr.String(), "of input from")
	}
}

func TestCorruptInputDetailOnlyInDebugLog(t *testing.T) {
	tr := newTestRun(t)
	path := tr.writeFile("day2.txt", "forward 1\nsideways 3\n")

	err := tr.run("-v", "2-1", path)
	require.Equal(t, errCorruptInput, err)
	require.NotContains(t, err.Error(), "line")
	require.NotContains(t, err.Error(), "sideways")
	require.Contains(t, tr.stderr.String(), "line 2")
	require.Contains(t, tr.stderr.String(), `unknown command "sideways"`)

	require.Equal(t, errCorruptInput, tr.run("2-1", path))
	require.NotContains(t, tr.stderr.String(), "line 2")
}

func TestProfile(t *testing.T) {
	tr := newTestRun(t)
	path := tr.writeFile("day1.txt", day1Sample)
	profile := filepath.Join(tr.home, "p.pprof")
	require.NoError(t, tr.run("-fgprof", profile, "1-1", path))
	require.Equal(t, "7\n", tr.stdout.String())

	fi, err := os.Stat(profile)
	require.NoError(t, err)
	require.NotZero(t, fi.Size())
}

func TestProfileBadPath(t *testing.T) {
	tr := newTestRun(t)
	path := tr.writeFile("day1.txt", day1Sample)
	require.Error(t, tr.run("-fgprof", filepath.Join(tr.home, "no", "such", "dir", "p.pprof"), "1-1", path))
}

func TestLoggerNoColor(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, true, true).debugf("hello %d", 1)
	require.Contains(t, buf.String(), "hello 1")
	require.NotContains(t, buf.String(), "\x1b[")

	buf.Reset()
	newLogger(&buf, false, true).debugf("hidden")
	require.Empty(t, buf.String())

	tr := newTestRun(t)
	tr.env["NO_COLOR"] = "1"
	path := tr.writeFile("day1.txt", day1Sample)
	require.NoError(t, tr.run("-v", "1-1", path))
	require.NotContains(t, tr.stderr.String(), "\x1b[")
}
