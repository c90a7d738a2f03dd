package advent

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register("2a", day2a)
	register("2b", day2b)
}

func day2a(input string) (int, error) {
	return sumPresents(input, func(p Present) int { return p.Area() + p.Slack() })
}

func day2b(input string) (int, error) {
	return sumPresents(input, func(p Present) int { return p.Ribbon() + p.Bow() })
}

func sumPresents(input string, f func(Present) int) (int, error) {
	var total int
	err := eachLine(input, func(line string) error {
		p, err := ParsePresent(line)
		if err != nil {
			return err
		}
		total += f(p)
		return nil
	})
	return total, err
}

// A Present is a box with length, width, and height.
type Present struct {
	L, W, H int
}

// ParsePresent parses dimensions written as "LxWxH".
func ParsePresent(s string) (Present, error) {
	var p Present
	parts := strings.Split(strings.TrimSpace(s), "x")
	if len(parts) != 3 {
		return p, fmt.Errorf("bad present dimensions %q", s)
	}
	dims := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return p, fmt.Errorf("bad present dimensions %q: %s", s, err)
		}
		dims[i] = int(n)
	}
	p.L, p.W, p.H = dims[0], dims[1], dims[2]
	return p, nil
}

// Area is the surface area of the box.
func (p Present) Area() int {
	return 2 * (p.L*p.W + p.W*p.H + p.H*p.L)
}

// Slack is the area of the smallest side.
func (p Present) Slack() int {
	return min(p.L*p.W, p.W*p.H, p.H*p.L)
}

// Ribbon is the smallest perimeter of any side.
func (p Present) Ribbon() int {
	return 2 * min(p.L+p.W, p.W+p.H, p.H+p.L)
}

// Bow is the ribbon needed for the bow, equal to the volume.
func (p Present) Bow() int {
	return p.L * p.W * p.H
}
