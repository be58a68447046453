package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Camera is a perspective camera looking from Eye at Target. FovY is in
// degrees.
type Camera struct {
	Eye, Target, Up r3.Vec
	Aspect          float64
	FovY            float64
	ZNear, ZFar     float64
}

// Default places the eye 500 units up and 500 back, looking at the origin.
func Default(aspect float64) Camera {
	return Camera{
		Eye:    r3.Vec{X: 0, Y: 500, Z: 500},
		Target: r3.Vec{},
		Up:     r3.Vec{Y: 1},
		Aspect: aspect,
		FovY:   45,
		ZNear:  0.1,
		ZFar:   1000,
	}
}

// Frame aims the camera at the centre of b and moves the eye back along its
// current direction until the whole box fits the vertical field of view.
func (c *Camera) Frame(b r3.Box) {
	center := r3.Scale(0.5, r3.Add(b.Min, b.Max))
	radius := 0.5 * r3.Norm(r3.Sub(b.Max, b.Min))
	if radius == 0 {
		radius = 1
	}
	dir := r3.Sub(c.Eye, c.Target)
	if r3.Norm(dir) == 0 {
		dir = r3.Vec{Y: 1, Z: 1}
	}
	dist := radius / math.Sin(c.fovRad()/2)
	c.Target = center
	c.Eye = r3.Add(center, r3.Scale(dist, r3.Unit(dir)))
	if far := 2 * (dist + radius); far > c.ZFar {
		c.ZFar = far
	}
}

func (c Camera) fovRad() float64 {
	return c.FovY * math.Pi / 180
}

// basis returns the view direction and the right and up screen axes.
func (c Camera) basis() (fwd, right, up r3.Vec) {
	fwd = r3.Unit(r3.Sub(c.Target, c.Eye))
	right = r3.Unit(r3.Cross(fwd, c.Up))
	up = r3.Cross(right, fwd)
	return fwd, right, up
}

// Project maps p to pixel coordinates on a w x h screen, origin top left.
// ok is false for points outside the near and far planes.
func (c Camera) Project(p r3.Vec, w, h float64) (x, y float64, ok bool) {
	fwd, right, up := c.basis()
	rel := r3.Sub(p, c.Eye)
	depth := r3.Dot(rel, fwd)
	if depth < c.ZNear || depth > c.ZFar {
		return 0, 0, false
	}
	f := 1 / math.Tan(c.fovRad()/2)
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = w / h
	}
	ndcX := f / aspect * r3.Dot(rel, right) / depth
	ndcY := f * r3.Dot(rel, up) / depth
	return (ndcX + 1) / 2 * w, (1 - ndcY) / 2 * h, true
}

// Segment is one projected edge of a line strip, in pixels.
type Segment struct {
	X0, Y0, X1, Y1 float32
}

// Strip projects consecutive points of path into segments. Segments with an
// endpoint outside the view depth range are left out.
func (c Camera) Strip(path []r3.Vec, w, h float64) []Segment {
	if len(path) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(path)-1)
	px, py, pok := c.Project(path[0], w, h)
	for _, p := range path[1:] {
		x, y, ok := c.Project(p, w, h)
		if ok && pok {
			segs = append(segs, Segment{float32(px), float32(py), float32(x), float32(y)})
		}
		px, py, pok = x, y, ok
	}
	return segs
}
