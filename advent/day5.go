package advent

import "strings"

func init() {
	register("5a", day5a)
	register("5b", day5b)
}

func day5a(input string) (int, error) {
	return countLines(input, IsNice)
}

func day5b(input string) (int, error) {
	return countLines(input, IsNicer)
}

func countLines(input string, pred func(string) bool) (int, error) {
	var n int
	err := eachLine(input, func(line string) error {
		if pred(line) {
			n++
		}
		return nil
	})
	return n, err
}

// IsNice reports whether s is nice under the first set of rules: at least
// three vowels, a doubled letter, and none of "ab", "cd", "pq", or "xy".
func IsNice(s string) bool {
	return hasThreeVowels(s) && hasDoubledLetter(s) && !hasForbiddenPair(s)
}

// IsNicer reports whether s is nice under the second set of rules: a pair
// of letters appearing twice without overlapping, and a letter repeated
// with exactly one letter between.
func IsNicer(s string) bool {
	return hasRepeatedPair(s) && hasSandwich(s)
}

func hasThreeVowels(s string) bool {
	var n int
	for i := 0; i < len(s); i++ {
		if strings.IndexByte("aeiou", s[i]) >= 0 {
			n++
			if n == 3 {
				return true
			}
		}
	}
	return false
}

func hasDoubledLetter(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			return true
		}
	}
	return false
}

func hasForbiddenPair(s string) bool {
	for _, pair := range []string{"ab", "cd", "pq", "xy"} {
		if strings.Contains(s, pair) {
			return true
		}
	}
	return false
}

func hasRepeatedPair(s string) bool {
	first := make(map[string]int) // pair -> first index
	for i := 0; i+1 < len(s); i++ {
		pair := s[i : i+2]
		j, ok := first[pair]
		if !ok {
			first[pair] = i
			continue
		}
		if i-j > 1 {
			return true
		}
	}
	return false
}

func hasSandwich(s string) bool {
	for i := 2; i < len(s); i++ {
		if s[i] == s[i-2] {
			return true
		}
	}
	return false
}
