package viewer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"toolpath/internal/camera"
	"toolpath/internal/overlay"
	"toolpath/internal/toolpath"
)

var colorPath = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

type Options struct {
	Title         string
	Width, Height int
	Speed         float64
	Labels        bool
}

// Run opens a window showing path as a line strip and blocks until it is
// closed. The path is not modified.
func Run(path toolpath.Path, opts Options) error {
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(newGame(path, opts))
}

type game struct {
	path    toolpath.Path
	summary toolpath.Summary
	title   string
	labels  bool

	cam  camera.Camera
	ctl  *camera.Controller
	w, h int

	canvas    *overlay.Canvas
	overlayIm *ebiten.Image
}

func newGame(path toolpath.Path, opts Options) *game {
	g := &game{
		path:    path,
		summary: toolpath.Summarize(path),
		title:   opts.Title,
		labels:  opts.Labels,
		cam:     camera.Default(float64(opts.Width) / float64(opts.Height)),
		ctl:     camera.NewController(opts.Speed),
		w:       opts.Width,
		h:       opts.Height,
	}
	if b, ok := toolpath.Bounds(path); ok {
		g.cam.Frame(b)
	}
	return g
}

func (g *game) Update() error {
	g.ctl.Forward = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	g.ctl.Backward = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	g.ctl.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	g.ctl.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	g.ctl.Update(&g.cam)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	for _, s := range g.cam.Strip(g.path, float64(g.w), float64(g.h)) {
		vector.StrokeLine(screen, s.X0, s.Y0, s.X1, s.Y1, 1, colorPath, true)
	}
	if !g.labels {
		return
	}
	if g.canvas == nil {
		g.canvas = overlay.NewCanvas(g.w, g.h)
		if g.overlayIm != nil {
			g.overlayIm.Deallocate()
		}
		g.overlayIm = ebiten.NewImage(g.w, g.h)
	}
	g.canvas.Clear()
	g.canvas.Labels(g.title, g.summary)
	g.overlayIm.WritePixels(g.canvas.Image().Pix)
	screen.DrawImage(g.overlayIm, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.w || outsideHeight != g.h) {
		g.w, g.h = outsideWidth, outsideHeight
		g.cam.Aspect = float64(g.w) / float64(g.h)
		g.canvas = nil
	}
	return g.w, g.h
}
