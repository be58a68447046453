package overlay

import (
	"image/color"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"toolpath/internal/toolpath"
)

func inked(c *Canvas) int {
	n := 0
	pix := c.Image().Pix
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestCanvasSize(t *testing.T) {
	c := NewCanvas(120, 40)
	if w, h := c.Size(); w != 120 || h != 40 {
		t.Fatalf("size %dx%d", w, h)
	}
}

func TestSetPixelOutOfRange(t *testing.T) {
	c := NewCanvas(4, 4)
	red := color.RGBA{R: 0xff, A: 0xff}
	c.SetPixel(-1, 0, red)
	c.SetPixel(4, 0, red)
	c.SetPixel(0, 100, red)
	if inked(c) != 0 {
		t.Fatalf("out of range pixels were drawn")
	}
	c.SetPixel(3, 3, red)
	if got := c.Image().RGBAAt(3, 3); got != red {
		t.Fatalf("pixel %v", got)
	}
}

func TestLabelAndClear(t *testing.T) {
	c := NewCanvas(80, 20)
	c.Label(2, 10, "X1 Y2", ColorText)
	if inked(c) == 0 {
		t.Fatalf("label drew nothing")
	}
	c.Clear()
	if inked(c) != 0 {
		t.Fatalf("clear left %d pixels", inked(c))
	}
}

func TestLabels(t *testing.T) {
	empty := NewCanvas(160, 60)
	empty.Labels("empty.gcode", toolpath.Summarize(nil))
	full := NewCanvas(160, 60)
	full.Labels("part.gcode", toolpath.Summarize(toolpath.Path{{}, r3.Vec{X: 10, Y: 5}}))
	if inked(empty) == 0 || inked(full) <= inked(empty) {
		t.Fatalf("readout not drawn: empty=%d full=%d", inked(empty), inked(full))
	}
}
