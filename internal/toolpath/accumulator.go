package toolpath

import (
	"gonum.org/v1/gonum/spatial/r3"

	"toolpath/internal/gcode"
)

// Path is the ordered list of resolved tool positions, in file order.
type Path []r3.Vec

// Accumulator resolves linear moves into absolute points. Axes a move leaves
// out keep the value of the previous point; before the first point they
// are zero.
type Accumulator struct {
	path    Path
	cursor  r3.Vec
	started bool
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Apply consumes one directive and reports whether it produced a point.
// Only linear moves do.
func (a *Accumulator) Apply(d gcode.Directive) bool {
	if d.Kind != gcode.Linear {
		return false
	}
	var prev r3.Vec
	if a.started {
		prev = a.cursor
	}
	p := r3.Vec{
		X: d.X.Or(prev.X),
		Y: d.Y.Or(prev.Y),
		Z: d.Z.Or(prev.Z),
	}
	a.path = append(a.path, p)
	a.cursor = p
	a.started = true
	return true
}

// Cursor returns the last resolved point. ok is false before the first one.
func (a *Accumulator) Cursor() (p r3.Vec, ok bool) {
	return a.cursor, a.started
}

func (a *Accumulator) Len() int {
	return len(a.path)
}

// Finish hands the path over and resets the accumulator for another file.
func (a *Accumulator) Finish() Path {
	p := a.path
	*a = Accumulator{}
	if p == nil {
		p = Path{}
	}
	return p
}
