package toolpath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Bounds returns the axis-aligned box holding every point of p.
func Bounds(p Path) (r3.Box, bool) {
	if len(p) == 0 {
		return r3.Box{}, false
	}
	b := r3.Box{Min: p[0], Max: p[0]}
	for _, v := range p[1:] {
		b.Min = r3.Vec{X: math.Min(b.Min.X, v.X), Y: math.Min(b.Min.Y, v.Y), Z: math.Min(b.Min.Z, v.Z)}
		b.Max = r3.Vec{X: math.Max(b.Max.X, v.X), Y: math.Max(b.Max.Y, v.Y), Z: math.Max(b.Max.Z, v.Z)}
	}
	return b, true
}

// Length is the total distance travelled along p.
func Length(p Path) float64 {
	var l float64
	for i := 1; i < len(p); i++ {
		l += r3.Norm(r3.Sub(p[i], p[i-1]))
	}
	return l
}

type Summary struct {
	Points     int
	Start, End r3.Vec
	Bounds     r3.Box
	Length     float64
}

func Summarize(p Path) Summary {
	s := Summary{Points: len(p), Length: Length(p)}
	if len(p) == 0 {
		return s
	}
	s.Start, s.End = p[0], p[len(p)-1]
	s.Bounds, _ = Bounds(p)
	return s
}

func (s Summary) String() string {
	if s.Points == 0 {
		return "empty path"
	}
	return fmt.Sprintf("%d points, length %.2f, start %s, end %s, bounds %s..%s",
		s.Points, s.Length, fmtVec(s.Start), fmtVec(s.End), fmtVec(s.Bounds.Min), fmtVec(s.Bounds.Max))
}

func fmtVec(v r3.Vec) string {
	return fmt.Sprintf("(%.2f,%.2f,%.2f)", v.X, v.Y, v.Z)
}
