package solver

func init() {
	register("1-1", day1Part1)
	register("1-2", day1Part2)
}

func day1Part1(input string) (int64, error) {
	depths, err := parseInts(input)
	if err != nil {
		return 0, err
	}
	return countIncreases(depths), nil
}

func day1Part2(input string) (int64, error) {
	depths, err := parseInts(input)
	if err != nil {
		return 0, err
	}
	return countIncreases(windowSums(depths, 3)), nil
}

// countIncreases counts the elements that are strictly larger than the
// element before them.
func countIncreases(seq []int64) int64 {
	var n int64
	for i := 1; i < len(seq); i++ {
		if seq[i] > seq[i-1] {
			n++
		}
	}
	return n
}

// windowSums returns the sum of every run of size consecutive elements.
func windowSums(seq []int64, size int) []int64 {
	if size < 1 || len(seq) < size {
		return nil
	}
	sums := make([]int64, 0, len(seq)-size+1)
	var sum int64
	for i, v := range seq {
		sum += v
		if i >= size {
			sum -= seq[i-size]
		}
		if i >= size-1 {
			sums = append(sums, sum)
		}
	}
	return sums
}
