package solver

import "fmt"

func init() {
	register("3-1", day3Part1)
	register("3-2", day3Part2)
}

// maxBitWidth keeps the product of two patterns within an int64.
const maxBitWidth = 31

// parseBitRows reads one binary number per non-blank line. The width is
// taken from the first row; every other row must match it.
func parseBitRows(input string) (rows []uint32, width int, err error) {
	ls, err := lines(input)
	if err != nil {
		return nil, 0, err
	}
	for i, line := range ls {
		if line == "" {
			continue
		}
		if width == 0 {
			width = len(line)
			if width > maxBitWidth {
				return nil, 0, lineError(i, "row is %d bits wide; max is %d", width, maxBitWidth)
			}
		}
		if len(line) != width {
			return nil, 0, lineError(i, "row is %d bits wide; want %d", len(line), width)
		}
		var row uint32
		for j := 0; j < len(line); j++ {
			row <<= 1
			switch line[j] {
			case '0':
			case '1':
				row |= 1
			default:
				return nil, 0, lineError(i, "non-binary character %q", line[j])
			}
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("%w: no rows", ErrInvalidInput)
	}
	return rows, width, nil
}

// tallyOnes counts, for each bit position (0 is the rightmost), how many
// rows have that bit set.
func tallyOnes(rows []uint32, width int) []int {
	ones := make([]int, width)
	for _, row := range rows {
		for i := range ones {
			if row&(1<<i) != 0 {
				ones[i]++
			}
		}
	}
	return ones
}

// powerRates returns the majority (gamma) and minority (epsilon) patterns.
// A column is set in the majority pattern only if strictly more rows have a
// 1 there than a 0; the minority pattern is its complement within width.
func powerRates(rows []uint32, width int) (gamma, epsilon uint32) {
	for i, n := range tallyOnes(rows, width) {
		if n > len(rows)-n {
			gamma |= 1 << i
		}
	}
	mask := uint32(1)<<width - 1
	return gamma, mask ^ gamma
}

func day3Part1(input string) (int64, error) {
	rows, width, err := parseBitRows(input)
	if err != nil {
		return 0, err
	}
	gamma, epsilon := powerRates(rows, width)
	return int64(gamma) * int64(epsilon), nil
}

// filterRows narrows rows column by column from the left, keeping those
// whose bit matches the one chosen by keep(ones, zeros), until one remains.
// A column that would discard every row is skipped.
func filterRows(rows []uint32, width int, keep func(ones, zeros int) uint32) (uint32, bool) {
	remaining := append([]uint32(nil), rows...)
	for i := width - 1; i >= 0 && len(remaining) > 1; i-- {
		var ones int
		for _, row := range remaining {
			if row&(1<<i) != 0 {
				ones++
			}
		}
		bit := keep(ones, len(remaining)-ones)
		var next []uint32
		for _, row := range remaining {
			if (row>>i)&1 == bit {
				next = append(next, row)
			}
		}
		if len(next) > 0 {
			remaining = next
		}
	}
	if len(remaining) != 1 {
		return 0, false
	}
	return remaining[0], true
}

func mostCommon(ones, zeros int) uint32 {
	if ones >= zeros {
		return 1
	}
	return 0
}

func leastCommon(ones, zeros int) uint32 {
	if zeros <= ones {
		return 0
	}
	return 1
}

func day3Part2(input string) (int64, error) {
	rows, width, err := parseBitRows(input)
	if err != nil {
		return 0, err
	}
	oxygen, ok := filterRows(rows, width, mostCommon)
	if !ok {
		return 0, fmt.Errorf("%w: oxygen criteria left more than one row", ErrInvalidInput)
	}
	co2, ok := filterRows(rows, width, leastCommon)
	if !ok {
		return 0, fmt.Errorf("%w: CO2 criteria left more than one row", ErrInvalidInput)
	}
	return int64(oxygen) * int64(co2), nil
}
