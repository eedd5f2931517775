package solver

import (
	"strconv"
	"strings"
)

func init() {
	register("2-1", day2Part1)
	register("2-2", day2Part2)
}

type direction int

const (
	forward direction = iota
	down
	up
)

var directions = map[string]direction{
	"forward": forward,
	"down":    down,
	"up":      up,
}

type command struct {
	dir direction
	n   int64
}

func parseCommands(input string) ([]command, error) {
	ls, err := lines(input)
	if err != nil {
		return nil, err
	}
	cmds := make([]command, len(ls))
	for i, line := range ls {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, lineError(i, "want 2 fields; got %d", len(fields))
		}
		dir, ok := directions[fields[0]]
		if !ok {
			return nil, lineError(i, "unknown command %q", fields[0])
		}
		n, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, lineError(i, "bad magnitude %q", fields[1])
		}
		cmds[i] = command{dir, n}
	}
	return cmds, nil
}

func day2Part1(input string) (int64, error) {
	cmds, err := parseCommands(input)
	if err != nil {
		return 0, err
	}
	var depth, distance int64
	ok := true
	for _, c := range cmds {
		switch c.dir {
		case forward:
			distance, ok = addInt64(distance, c.n)
		case down:
			depth, ok = addInt64(depth, c.n)
		case up:
			depth, ok = subInt64(depth, c.n)
		}
		if !ok {
			return 0, errOverflow
		}
	}
	return finish(mulInt64(depth, distance))
}

func day2Part2(input string) (int64, error) {
	cmds, err := parseCommands(input)
	if err != nil {
		return 0, err
	}
	var aim, depth, distance int64
	ok := true
	for _, c := range cmds {
		switch c.dir {
		case forward:
			var delta int64
			if distance, ok = addInt64(distance, c.n); !ok {
				break
			}
			if delta, ok = mulInt64(aim, c.n); !ok {
				break
			}
			depth, ok = addInt64(depth, delta)
		case down:
			aim, ok = addInt64(aim, c.n)
		case up:
			aim, ok = subInt64(aim, c.n)
		}
		if !ok {
			return 0, errOverflow
		}
	}
	return finish(mulInt64(distance, depth))
}
