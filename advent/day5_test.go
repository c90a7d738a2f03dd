package advent

import "testing"

func TestIsNice(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want bool
	}{
		{"ugknbfddgicrmopn", true},
		{"aaa", true},
		{"jchzalrnumimnmhp", false}, // no double letter
		{"haegwjzuvuyypxyu", false}, // contains xy
		{"dvszwmarrgswjxmb", false}, // one vowel
	} {
		if got := IsNice(tt.s); got != tt.want {
			t.Errorf("IsNice(%q): got %t; want %t", tt.s, got, tt.want)
		}
	}
}

func TestIsNicer(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want bool
	}{
		{"qjhvhtzxzqqjkmpb", true},
		{"xxyxx", true},
		{"uurcxstgmygtbstg", false}, // no sandwich
		{"ieodomkazucvgmuy", false}, // no repeated pair
	} {
		if got := IsNicer(tt.s); got != tt.want {
			t.Errorf("IsNicer(%q): got %t; want %t", tt.s, got, tt.want)
		}
	}
}

func TestHasRepeatedPair(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want bool
	}{
		{"aaa", false},
		{"aaaa", true},
		{"xyxy", true},
		{"aabcdefgaa", true},
		{"abcdef", false},
	} {
		if got := hasRepeatedPair(tt.s); got != tt.want {
			t.Errorf("hasRepeatedPair(%q): got %t; want %t", tt.s, got, tt.want)
		}
	}
}

func TestHasForbiddenPair(t *testing.T) {
	for _, s := range []string{"abanana", "cdefgh", "pqrstuv", "tuvwxyz"} {
		if !hasForbiddenPair(s) {
			t.Errorf("hasForbiddenPair(%q) = false", s)
		}
	}
	if hasForbiddenPair("ghijklm") {
		t.Error(`hasForbiddenPair("ghijklm") = true`)
	}
}
