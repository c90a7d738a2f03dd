package advent

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

func init() {
	register("6a", func(input string) (int, error) { return day6(input, OnOff) })
	register("6b", func(input string) (int, error) { return day6(input, Brightness) })
}

func day6(input string, l Lighting) (int, error) {
	var insns []Instruction
	err := eachLine(input, func(line string) error {
		insn, err := ParseInstruction(line)
		if err != nil {
			return err
		}
		insns = append(insns, insn)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return ReplayLights(insns, l), nil
}

// An Operation is what an Instruction does to each light it covers.
type Operation int

const (
	TurnOn Operation = iota
	TurnOff
	Toggle
)

func (op Operation) String() string {
	switch op {
	case TurnOn:
		return "turn on"
	case TurnOff:
		return "turn off"
	case Toggle:
		return "toggle"
	}
	return fmt.Sprintf("Operation(%d)", int(op))
}

// A Point addresses one light in the grid.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// An Instruction applies Op to every light in the rectangle with corners
// Start and End, inclusive.
type Instruction struct {
	Op    Operation
	Start Point
	End   Point
}

func (insn Instruction) String() string {
	return fmt.Sprintf("%s %s through %s", insn.Op, insn.Start, insn.End)
}

// ParseInstruction parses a line such as
//
//	turn on 0,0 through 999,999
//
// Any amount of whitespace may separate the words. The corners are used in
// the order given.
func ParseInstruction(s string) (Instruction, error) {
	var insn Instruction
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return insn, errors.New("empty instruction")
	}
	switch fields[0] {
	case "toggle":
		insn.Op = Toggle
		fields = fields[1:]
	case "turn":
		if len(fields) < 2 {
			return insn, fmt.Errorf("bad instruction %q: missing on/off", s)
		}
		switch fields[1] {
		case "on":
			insn.Op = TurnOn
		case "off":
			insn.Op = TurnOff
		default:
			return insn, fmt.Errorf("bad instruction %q: unknown operation %q", s, "turn "+fields[1])
		}
		fields = fields[2:]
	default:
		return insn, fmt.Errorf("bad instruction %q: unknown operation %q", s, fields[0])
	}
	if len(fields) < 3 || fields[1] != "through" {
		return insn, fmt.Errorf("bad instruction %q: want <x>,<y> through <x>,<y>", s)
	}
	if len(fields) > 3 {
		return insn, fmt.Errorf("bad instruction %q: trailing text %q", s, strings.Join(fields[3:], " "))
	}
	var err error
	if insn.Start, err = ParsePoint(fields[0]); err != nil {
		return insn, fmt.Errorf("bad instruction %q: %s", s, err)
	}
	if insn.End, err = ParsePoint(fields[2]); err != nil {
		return insn, fmt.Errorf("bad instruction %q: %s", s, err)
	}
	return insn, nil
}

// ParsePoint parses a point written as "x,y" with unsigned decimal
// coordinates.
func ParsePoint(s string) (Point, error) {
	var p Point
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return p, fmt.Errorf("bad point %q", s)
	}
	x, err := strconv.ParseUint(xs, 10, 32)
	if err != nil {
		return p, fmt.Errorf("bad point %q", s)
	}
	y, err := strconv.ParseUint(ys, 10, 32)
	if err != nil {
		return p, fmt.Errorf("bad point %q", s)
	}
	p.X, p.Y = int(x), int(y)
	return p, nil
}

// Lighting selects how a Grid interprets instructions.
type Lighting int

const (
	// OnOff lights are either lit or unlit. Toggle flips them.
	OnOff Lighting = iota
	// Brightness lights hold a brightness level that turning on raises by
	// 1, turning off lowers by 1 (never below 0), and toggling raises by 2.
	Brightness
)

func (l Lighting) String() string {
	switch l {
	case OnOff:
		return "on/off"
	case Brightness:
		return "brightness"
	}
	return fmt.Sprintf("Lighting(%d)", int(l))
}

// A Grid is a sparse grid of lights. Lights that are unlit or at
// brightness 0 are not stored.
type Grid struct {
	lighting Lighting
	cells    map[Point]int
}

// NewGrid returns a grid with every light off.
func NewGrid(l Lighting) *Grid {
	return &Grid{
		lighting: l,
		cells:    make(map[Point]int),
	}
}

// Apply carries out insn on each light in its rectangle. If the rectangle's
// corners are out of order on an axis, it covers no lights.
func (g *Grid) Apply(insn Instruction) {
	for x := insn.Start.X; x <= insn.End.X; x++ {
		for y := insn.Start.Y; y <= insn.End.Y; y++ {
			p := Point{x, y}
			g.set(p, g.next(insn.Op, g.cells[p]))
		}
	}
}

func (g *Grid) next(op Operation, v int) int {
	if g.lighting == OnOff {
		switch op {
		case TurnOn:
			return 1
		case TurnOff:
			return 0
		case Toggle:
			return 1 - v
		}
	} else {
		switch op {
		case TurnOn:
			return v + 1
		case TurnOff:
			return max(v-1, 0)
		case Toggle:
			return v + 2
		}
	}
	panic(fmt.Sprintf("unknown operation %s", op))
}

func (g *Grid) set(p Point, v int) {
	if v == 0 {
		delete(g.cells, p)
		return
	}
	g.cells[p] = v
}

// At returns the state of the light at p: 0 or 1 for OnOff lighting, or its
// brightness.
func (g *Grid) At(p Point) int {
	return g.cells[p]
}

// Len returns the number of lights that are not off.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Total returns the number of lit lights for OnOff lighting, or the total
// brightness.
func (g *Grid) Total() int {
	var total int
	for _, v := range g.cells {
		total += v
	}
	return total
}

// ReplayLights applies insns in order to a dark grid and returns the
// grid's Total.
func ReplayLights(insns []Instruction, l Lighting) int {
	g := NewGrid(l)
	for _, insn := range insns {
		log.Debugf("replaying %s", insn)
		g.Apply(insn)
	}
	return g.Total()
}
