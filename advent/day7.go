package advent

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

func init() {
	register("7a", day7a)
	register("7b", day7b)
}

func day7a(input string) (int, error) {
	c, err := LoadCircuit(input)
	if err != nil {
		return 0, err
	}
	a, err := c.Signal("a")
	return int(a), err
}

func day7b(input string) (int, error) {
	c, err := LoadCircuit(input)
	if err != nil {
		return 0, err
	}
	a, err := c.Signal("a")
	if err != nil {
		return 0, err
	}
	c.Reset()
	c.Override("b", a)
	a, err = c.Signal("a")
	return int(a), err
}

var (
	ErrUndefinedWire   = errors.New("undefined wire")
	ErrUnsupportedGate = errors.New("unsupported gate")
	ErrCycle           = errors.New("wires form a cycle")
)

type gateKind int

const (
	gateWire gateKind = iota // passthrough
	gateNot
	gateAnd
	gateOr
	gateLshift
	gateRshift
)

var binaryGates = map[string]gateKind{
	"AND":    gateAnd,
	"OR":     gateOr,
	"LSHIFT": gateLshift,
	"RSHIFT": gateRshift,
}

// An operand is either a literal signal or the name of a wire.
type operand struct {
	literal bool
	value   uint16
	wire    string
}

func parseOperand(tok string) operand {
	if n, err := strconv.ParseUint(tok, 10, 16); err == nil {
		return operand{literal: true, value: uint16(n)}
	}
	return operand{wire: tok}
}

type gate struct {
	kind gateKind
	args [2]operand
}

// A Circuit is a set of wires, each driven by a gate. Signals are computed
// on demand and remembered until Reset.
//
// A Circuit is not safe for concurrent use.
type Circuit struct {
	gates   map[string]gate
	signals map[string]uint16
	active  map[string]bool // wires being computed
}

// LoadCircuit parses one connection per line, each of the form
//
//	x AND y -> z
//
// The gate may be a lone operand, NOT followed by an operand, or two
// operands joined by AND, OR, LSHIFT, or RSHIFT. An operand is a decimal
// signal or a wire name. If a wire is connected twice, the last connection
// wins.
func LoadCircuit(input string) (*Circuit, error) {
	c := &Circuit{
		gates:   make(map[string]gate),
		signals: make(map[string]uint16),
		active:  make(map[string]bool),
	}
	err := eachLine(input, func(line string) error {
		wire, g, err := parseConnection(line)
		if err != nil {
			return err
		}
		c.gates[wire] = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func parseConnection(s string) (string, gate, error) {
	var g gate
	expr, wire, ok := strings.Cut(s, "->")
	if !ok {
		return "", g, fmt.Errorf("%w: no -> in %q", ErrUnsupportedGate, s)
	}
	wire = strings.TrimSpace(wire)
	if wire == "" || strings.ContainsAny(wire, " \t") {
		return "", g, fmt.Errorf("%w: bad wire name in %q", ErrUnsupportedGate, s)
	}
	toks := strings.Fields(expr)
	switch len(toks) {
	case 1:
		g.kind = gateWire
		g.args[0] = parseOperand(toks[0])
	case 2:
		if toks[0] != "NOT" {
			return "", g, fmt.Errorf("%w: unknown unary gate %q", ErrUnsupportedGate, toks[0])
		}
		g.kind = gateNot
		g.args[0] = parseOperand(toks[1])
	case 3:
		kind, ok := binaryGates[toks[1]]
		if !ok {
			return "", g, fmt.Errorf("%w: unknown binary gate %q", ErrUnsupportedGate, toks[1])
		}
		g.kind = kind
		g.args[0] = parseOperand(toks[0])
		g.args[1] = parseOperand(toks[2])
	default:
		return "", g, fmt.Errorf("%w: %q", ErrUnsupportedGate, strings.TrimSpace(expr))
	}
	return wire, g, nil
}

// Signal returns the signal on the wire named by token. If token is a
// decimal number, it is the signal itself.
func (c *Circuit) Signal(token string) (uint16, error) {
	return c.eval(parseOperand(token))
}

func (c *Circuit) eval(op operand) (uint16, error) {
	if op.literal {
		return op.value, nil
	}
	wire := op.wire
	if v, ok := c.signals[wire]; ok {
		return v, nil
	}
	g, ok := c.gates[wire]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUndefinedWire, wire)
	}
	if c.active[wire] {
		return 0, fmt.Errorf("%w through %q", ErrCycle, wire)
	}
	c.active[wire] = true
	defer delete(c.active, wire)

	x, err := c.eval(g.args[0])
	if err != nil {
		return 0, err
	}
	var y uint16
	if g.kind >= gateAnd {
		if y, err = c.eval(g.args[1]); err != nil {
			return 0, err
		}
	}
	var v uint16
	switch g.kind {
	case gateWire:
		v = x
	case gateNot:
		v = ^x
	case gateAnd:
		v = x & y
	case gateOr:
		v = x | y
	case gateLshift:
		v = x << y
	case gateRshift:
		v = x >> y
	}
	log.WithField("wire", wire).Debugf("signal %d", v)
	c.signals[wire] = v
	return v, nil
}

// Reset forgets every computed signal, including overrides.
func (c *Circuit) Reset() {
	clear(c.signals)
}

// Override fixes the signal on wire to v until the next Reset, regardless of
// the gate driving it.
func (c *Circuit) Override(wire string, v uint16) {
	log.WithField("wire", wire).Debugf("override signal %d", v)
	c.signals[wire] = v
}
