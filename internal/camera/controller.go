package camera

import "gonum.org/v1/gonum/spatial/r3"

// Controller moves a camera from held keys: forward and backward dolly
// towards the target, left and right orbit around it.
type Controller struct {
	Speed float64

	Forward, Backward, Left, Right bool
}

func NewController(speed float64) *Controller {
	return &Controller{Speed: speed}
}

func (ctl *Controller) Update(c *Camera) {
	forward := r3.Sub(c.Target, c.Eye)
	mag := r3.Norm(forward)
	if mag == 0 {
		return
	}
	dir := r3.Scale(1/mag, forward)

	// never step onto or past the target
	if ctl.Forward && mag > ctl.Speed {
		c.Eye = r3.Add(c.Eye, r3.Scale(ctl.Speed, dir))
	}
	if ctl.Backward {
		c.Eye = r3.Sub(c.Eye, r3.Scale(ctl.Speed, dir))
	}

	right := r3.Cross(dir, c.Up)
	forward = r3.Sub(c.Target, c.Eye)
	mag = r3.Norm(forward)

	if ctl.Right {
		c.Eye = r3.Sub(c.Target, r3.Scale(mag, r3.Unit(r3.Add(forward, r3.Scale(ctl.Speed, right)))))
	}
	if ctl.Left {
		c.Eye = r3.Sub(c.Target, r3.Scale(mag, r3.Unit(r3.Sub(forward, r3.Scale(ctl.Speed, right)))))
	}
}
