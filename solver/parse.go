package solver

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// lines splits input the way a line-oriented reader sees it: a final
// newline does not start another line and "\r\n" endings are accepted.
func lines(input string) ([]string, error) {
	var ls []string
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		ls = append(ls, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	return ls, nil
}

// parseInts parses one base-10 integer per line.
// It fails if there are no lines at all.
func parseInts(input string) ([]int64, error) {
	ls, err := lines(input)
	if err != nil {
		return nil, err
	}
	if len(ls) == 0 {
		return nil, fmt.Errorf("%w: no numbers", ErrInvalidInput)
	}
	nums := make([]int64, len(ls))
	for i, line := range ls {
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, lineError(i, "bad number %q", line)
		}
		nums[i] = n
	}
	return nums, nil
}

func lineError(i int, format string, args ...interface{}) error {
	return fmt.Errorf("%w: line %d: %s", ErrInvalidInput, i+1, fmt.Sprintf(format, args...))
}
