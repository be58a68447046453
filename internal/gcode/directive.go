package gcode

import (
	"fmt"
	"math"
	"strconv"
)

type Kind int

const (
	Rapid Kind = iota
	Linear
	ArcCW
	ArcCCW
	Dwell
	Home
	Absolute
	Relative
	SetPosition
)

var kinds = map[int]Kind{
	0:  Rapid,
	1:  Linear,
	2:  ArcCW,
	3:  ArcCCW,
	4:  Dwell,
	28: Home,
	90: Absolute,
	91: Relative,
	92: SetPosition,
}

func (k Kind) String() string {
	for n, kk := range kinds {
		if kk == k {
			return fmt.Sprintf("G%d", n)
		}
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Coord is an axis value that may be absent. The zero Coord is absent, so
// an explicit 0 is never confused with "unchanged".
type Coord struct {
	v   float64
	set bool
}

func Some(v float64) Coord {
	return Coord{v: v, set: true}
}

func (c Coord) Value() (float64, bool) {
	return c.v, c.set
}

// Or returns the value, or def when absent.
func (c Coord) Or(def float64) float64 {
	if c.set {
		return c.v
	}
	return def
}

func (c Coord) String() string {
	if !c.set {
		return "-"
	}
	return strconv.FormatFloat(c.v, 'g', -1, 64)
}

type Directive struct {
	Kind    Kind
	X, Y, Z Coord
}

func (d Directive) String() string {
	return fmt.Sprintf("%s X%s Y%s Z%s", d.Kind, d.X, d.Y, d.Z)
}

// Decode interprets one line. It returns nil, nil when the line holds no
// directive of a known kind. A line that cannot be tokenized, or whose axis
// fields are not finite numbers, yields a *LineError and no directive.
func Decode(line string) (*Directive, error) {
	fields, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	return Interpret(fields)
}

// Interpret turns tokenized fields into a directive.
func Interpret(fields Fields) (*Directive, error) {
	g, ok := fields['G']
	if !ok {
		return nil, nil
	}
	kind, ok := kindOf(g)
	if !ok {
		return nil, nil
	}
	d := &Directive{Kind: kind}
	for _, ax := range []struct {
		letter byte
		dst    *Coord
	}{
		{'X', &d.X},
		{'Y', &d.Y},
		{'Z', &d.Z},
	} {
		raw, ok := fields[ax.letter]
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fieldf(ax.letter, "%q is not a number", raw)
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, fieldf(ax.letter, "%q is not finite", raw)
		}
		*ax.dst = Some(v)
	}
	return d, nil
}

// kindOf accepts G1, G01 and G1.0 alike.
func kindOf(raw string) (Kind, bool) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 || f != math.Trunc(f) || f > 1000 {
		return 0, false
	}
	k, ok := kinds[int(f)]
	return k, ok
}
