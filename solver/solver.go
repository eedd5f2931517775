// Package solver holds the puzzle solutions and the table that maps
// selector keys such as "2-1" to them.
package solver

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned (possibly wrapped) by a Solver when its input
// does not have the shape the puzzle requires.
var ErrInvalidInput = errors.New("invalid input")

// A Solver computes a puzzle answer from the full text of a puzzle input.
type Solver func(input string) (int64, error)

var solvers = make(map[string]Solver)

func register(key string, fn Solver) {
	if _, _, ok := splitKey(key); !ok {
		panic(fmt.Sprintf("malformed solver key %q", key))
	}
	if _, ok := solvers[key]; ok {
		panic(fmt.Sprintf("duplicate solvers registered for %q", key))
	}
	solvers[key] = fn
}

// Lookup returns the solver registered under key.
// The match is exact and case-sensitive.
func Lookup(key string) (Solver, bool) {
	fn, ok := solvers[key]
	return fn, ok
}

// Keys returns every registered key ordered by group and then variant.
func Keys() []string {
	keys := make([]string, 0, len(solvers))
	for key := range solvers {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })
	return keys
}

// Group returns the "<group>" part of a "<group>-<variant>" key,
// or "" if key is not of that form.
func Group(key string) string {
	g, _, ok := splitKey(key)
	if !ok {
		return ""
	}
	return strconv.Itoa(g)
}

func keyLess(key0, key1 string) bool {
	g0, v0, _ := splitKey(key0)
	g1, v1, _ := splitKey(key1)
	if g0 != g1 {
		return g0 < g1
	}
	return v0 < v1
}

func splitKey(key string) (group, variant int, ok bool) {
	gs, vs, found := strings.Cut(key, "-")
	if !found {
		return 0, 0, false
	}
	var err error
	if group, err = strconv.Atoi(gs); err != nil || group < 1 {
		return 0, 0, false
	}
	if variant, err = strconv.Atoi(vs); err != nil || variant < 1 {
		return 0, 0, false
	}
	return group, variant, true
}
