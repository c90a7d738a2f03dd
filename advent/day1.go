package advent

import (
	"errors"
	"fmt"
	"strings"
)

func init() {
	register("1a", day1a)
	register("1b", day1b)
}

func day1a(input string) (int, error) {
	return Floor(input)
}

func day1b(input string) (int, error) {
	return BasementPosition(input)
}

// Floor returns the floor Santa ends up on after following the
// parenthesized directions in s, starting from floor 0.
func Floor(s string) (int, error) {
	var floor int
	for i, c := range []byte(strings.TrimSpace(s)) {
		d, err := floorDelta(c)
		if err != nil {
			return 0, fmt.Errorf("position %d: %s", i+1, err)
		}
		floor += d
	}
	return floor, nil
}

// BasementPosition returns the 1-based position of the first direction in s
// that brings Santa to floor -1.
func BasementPosition(s string) (int, error) {
	var floor int
	for i, c := range []byte(strings.TrimSpace(s)) {
		d, err := floorDelta(c)
		if err != nil {
			return 0, fmt.Errorf("position %d: %s", i+1, err)
		}
		floor += d
		if floor == -1 {
			return i + 1, nil
		}
	}
	return 0, errors.New("never entered the basement")
}

func floorDelta(c byte) (int, error) {
	switch c {
	case '(':
		return 1, nil
	case ')':
		return -1, nil
	}
	return 0, fmt.Errorf("unexpected direction %q", c)
}
