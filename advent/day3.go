package advent

import (
	"fmt"
	"strings"
)

func init() {
	register("3a", day3a)
	register("3b", day3b)
}

func day3a(input string) (int, error) {
	visits, err := deliver(strings.TrimSpace(input))
	if err != nil {
		return 0, err
	}
	return len(visits), nil
}

func day3b(input string) (int, error) {
	moves := strings.TrimSpace(input)
	var santa, robot []byte
	for i := 0; i < len(moves); i++ {
		if i%2 == 0 {
			santa = append(santa, moves[i])
		} else {
			robot = append(robot, moves[i])
		}
	}
	houses, err := deliver(string(santa))
	if err != nil {
		return 0, err
	}
	robotHouses, err := deliver(string(robot))
	if err != nil {
		return 0, err
	}
	for v, n := range robotHouses {
		houses[v] += n
	}
	return len(houses), nil
}

// deliver follows the moves ('^', 'v', '<', '>') from the origin and
// returns the number of presents delivered to each house. The origin gets
// one present before the first move.
func deliver(moves string) (map[vec2]int, error) {
	var v vec2
	visits := map[vec2]int{v: 1}
	for i := 0; i < len(moves); i++ {
		d, ok := houseDirs[moves[i]]
		if !ok {
			return nil, fmt.Errorf("unexpected move %q at position %d", moves[i], i+1)
		}
		v = v.add(d)
		visits[v]++
	}
	return visits, nil
}

var houseDirs = map[byte]vec2{
	'^': {0, 1},
	'v': {0, -1},
	'<': {-1, 0},
	'>': {1, 0},
}

type vec2 struct {
	x, y int64
}

func (v vec2) add(v1 vec2) vec2 {
	return vec2{v.x + v1.x, v.y + v1.y}
}
