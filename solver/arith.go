package solver

import (
	"fmt"
	"math"
)

var errOverflow = fmt.Errorf("%w: result overflows int64", ErrInvalidInput)

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	return c, (c > a) == (b > 0)
}

func subInt64(a, b int64) (int64, bool) {
	c := a - b
	return c, (c < a) == (b > 0)
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	return c, c/b == a
}

func finish(n int64, ok bool) (int64, error) {
	if !ok {
		return 0, errOverflow
	}
	return n, nil
}
