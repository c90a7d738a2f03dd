package advent

import (
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/vaughan0/go-ini"
)

var debug = flag.Bool("debug", false, "Log solver progress")

func TestMain(m *testing.M) {
	flag.Parse()
	if *debug {
		log.SetLevel(log.DebugLevel)
	}
	os.Exit(m.Run())
}

func TestNames(t *testing.T) {
	got := Names()
	want := []string{
		"1a", "1b", "2a", "2b", "3a", "3b", "4a", "4b",
		"5a", "5b", "6a", "6b", "7a", "7b",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestNameLess(t *testing.T) {
	for _, tt := range []struct {
		name0, name1 string
		want         bool
	}{
		{"1a", "1b", true},
		{"1b", "1a", false},
		{"2a", "10a", true},
		{"10a", "2b", false},
		{"6", "6a", true},
		{"7a", "7a", false},
	} {
		got := nameLess(tt.name0, tt.name1)
		if got != tt.want {
			t.Errorf("nameLess(%q, %q): got %t; want %t", tt.name0, tt.name1, got, tt.want)
		}
	}
}

func TestRegisterDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("registering 1a twice did not panic")
		}
	}()
	register("1a", day1a)
}

func TestSolveUnknown(t *testing.T) {
	if _, err := Solve("26a", ""); err == nil {
		t.Fatal("got nil error for unregistered solution")
	}
}

func TestEachLine(t *testing.T) {
	var lines []string
	err := eachLine("a\n\n  b \r\nc", func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(lines, want) {
		t.Errorf("got %q; want %q", lines, want)
	}

	err = eachLine("1x1x1\n\nbad\n", func(line string) error {
		_, err := ParsePresent(line)
		return err
	})
	if err == nil {
		t.Fatal("got nil error for bad line")
	}
	if !strings.HasPrefix(err.Error(), "3rd line: ") {
		t.Errorf("error %q does not name the 3rd line", err)
	}
}

type answer struct {
	solution string
	input    string
	want     int
	slow     bool
}

func loadAnswers(t *testing.T) map[string]answer {
	t.Helper()
	file, err := ini.LoadFile(filepath.Join("testdata", "answers.ini"))
	if err != nil {
		t.Fatal(err)
	}
	answers := make(map[string]answer)
	for name, section := range file {
		if name == "" {
			continue
		}
		var a answer
		a.solution, _, _ = strings.Cut(name, " ")
		switch {
		case section["file"] != "":
			b, err := os.ReadFile(filepath.Join("testdata", section["file"]))
			if err != nil {
				t.Fatal(err)
			}
			a.input = string(b)
		case section["input"] != "":
			a.input = section["input"]
		default:
			t.Fatalf("[%s]: no input or file", name)
		}
		a.want, err = strconv.Atoi(section["want"])
		if err != nil {
			t.Fatalf("[%s]: bad want: %s", name, err)
		}
		a.slow = section["slow"] == "true"
		answers[name] = a
	}
	return answers
}

func TestAnswers(t *testing.T) {
	answers := loadAnswers(t)
	var names []string
	for name := range answers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a := answers[name]
		t.Run(name, func(t *testing.T) {
			if a.slow && testing.Short() {
				t.Skip("slow answer check skipped in short mode")
			}
			if _, ok := Lookup(a.solution); !ok {
				t.Fatalf("no solution registered for %q", a.solution)
			}
			got, err := Solve(a.solution, a.input)
			if err != nil {
				t.Fatal(err)
			}
			if got != a.want {
				t.Errorf("got %d; want %d", got, a.want)
			}
		})
	}
}
