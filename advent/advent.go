// Package advent solves the Advent of Code 2015 puzzles.
//
// Each day registers its parts under names like "6a" and "6b". A solution
// takes the complete puzzle input and returns the integer answer.
package advent

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// A Solution computes a puzzle answer from the full puzzle input.
type Solution func(input string) (int, error)

var solutions = make(map[string]Solution)

func register(name string, fn Solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	splitName(name) // validate
	solutions[name] = fn
}

// Lookup returns the solution registered under name.
func Lookup(name string) (Solution, bool) {
	fn, ok := solutions[name]
	return fn, ok
}

// Names lists the registered solutions ordered by day, then by part.
func Names() []string {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

// Solve runs the named solution against input.
func Solve(name, input string) (int, error) {
	fn, ok := solutions[name]
	if !ok {
		return 0, fmt.Errorf("unknown solution %q", name)
	}
	return fn(input)
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}

// eachLine calls fn with every non-blank line of input, trimmed of
// surrounding whitespace. An error from fn is annotated with the line's
// position and stops the iteration.
func eachLine(input string, fn func(line string) error) error {
	scanner := bufio.NewScanner(strings.NewReader(input))
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return fmt.Errorf("%s line: %w", humanize.Ordinal(n), err)
		}
	}
	return scanner.Err()
}
