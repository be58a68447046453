package overlay

import (
	"fmt"
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"toolpath/internal/toolpath"
)

var (
	ColorText = color.RGBA{R: 0xee, G: 0x33, B: 0x33, A: 0xff}
	ColorDim  = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
)

const lineHeight = 8

var _ drivers.Displayer = (*Canvas)(nil)

// Canvas is a transparent RGBA layer that tinyfont can draw labels on.
type Canvas struct {
	img  *image.RGBA
	font tinyfont.Fonter
}

func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		font: &tinyfont.TomThumb,
	}
}

func (c *Canvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	if !(image.Point{X: int(x), Y: int(y)}).In(c.img.Bounds()) {
		return
	}
	c.img.SetRGBA(int(x), int(y), col)
}

func (c *Canvas) Display() error {
	return nil
}

// Image returns the backing image. It is reused across frames.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Clear() {
	clear(c.img.Pix)
}

// Label writes text with its baseline at y.
func (c *Canvas) Label(x, y int16, text string, col color.RGBA) {
	tinyfont.WriteLine(c, c.font, x, y, text, col)
}

// Labels draws the standard path readout in the top left corner.
func (c *Canvas) Labels(name string, s toolpath.Summary) {
	y := int16(lineHeight)
	c.Label(4, y, name, ColorText)
	y += lineHeight
	if s.Points == 0 {
		c.Label(4, y, "no moves", ColorDim)
		return
	}
	lines := []string{
		fmt.Sprintf("points %d", s.Points),
		fmt.Sprintf("length %.1f", s.Length),
		fmt.Sprintf("min %.1f %.1f %.1f", s.Bounds.Min.X, s.Bounds.Min.Y, s.Bounds.Min.Z),
		fmt.Sprintf("max %.1f %.1f %.1f", s.Bounds.Max.X, s.Bounds.Max.Y, s.Bounds.Max.Z),
	}
	for _, l := range lines {
		c.Label(4, y, l, ColorDim)
		y += lineHeight
	}
}
