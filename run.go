package sprout

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Default window parameters used when RunConfig leaves them zero.
const (
	defaultTitle  = "Sprout"
	defaultWidth  = 800
	defaultHeight = 600
)

// RunConfig configures the window and which feature levels are live.
// The zero value gives a static 800x600 window with input disabled.
type RunConfig struct {
	Title  string
	Width  int // initial logical width; defaults to 800
	Height int // initial logical height; defaults to 600

	Keyboard bool // directional key movement
	Mouse    bool // cursor tracking and click-to-recenter
	Animate  bool // per-frame velocity integration and bouncing

	ShowFPS bool // FPS/TPS overlay in the top-left corner
	Debug   bool // periodic frame timing stats on stderr

	// Events, when non-nil, is drained into the square before hardware
	// input each frame. Scripted demos push synthetic events here.
	Events *Queue

	// OnBounce fires once per frame in which Advance reversed the square's
	// velocity on either axis. The bounce example hooks a blip sound here.
	OnBounce func()

	// OnClick, when set with Mouse enabled, replaces the default
	// click-to-recenter: it receives the tracked cursor position for each
	// left-button press. Cursor tracking still happens first.
	OnClick func(x, y float64)

	// OnUpdate runs once per tick after input and physics. Returning an
	// error stops Run with that error.
	OnUpdate func(dt float64) error
}

// game adapts a Square to the ebiten.Game interface. All state mutation
// happens on Ebitengine's single update goroutine.
type game struct {
	sq     *Square
	cfg    RunConfig
	canvas *Canvas
	poll   poller
	evs    []Event
	width  int
	height int
	fps    *fpsOverlay
	stats  frameStats
}

// Layout reports the pixel size of the canvas. Ebitengine calls it whenever
// the window resizes; a minimum of 1x1 guards degenerate windows.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width = max(outsideWidth, 1)
	g.height = max(outsideHeight, 1)
	return g.width, g.height
}

// Update drains synthetic events, polls hardware input, dispatches events
// to the square, and advances physics by one fixed tick.
func (g *game) Update() error {
	t0 := time.Now()
	dt := 1.0 / float64(ebiten.TPS())

	if g.cfg.Events != nil {
		g.cfg.Events.Drain(g.sq, g.width, g.height)
	}

	g.evs = g.poll.Poll(g.evs[:0])
	for _, ev := range g.evs {
		switch e := ev.(type) {
		case KeyEvent:
			if !g.cfg.Keyboard {
				continue
			}
		case CursorEvent:
			if !g.cfg.Mouse {
				continue
			}
		case MouseButtonEvent:
			if !g.cfg.Mouse {
				continue
			}
			if g.cfg.OnClick != nil {
				if e.Pressed && e.Button == MouseButtonLeft {
					g.cfg.OnClick(g.sq.Cursor.X, g.sq.Cursor.Y)
				}
				continue
			}
		}
		g.sq.HandleEvent(ev, g.width, g.height)
	}

	if g.cfg.Animate {
		before := g.sq.Vel
		g.sq.Advance(dt, g.width, g.height)
		if g.cfg.OnBounce != nil && (g.sq.Vel.X != before.X || g.sq.Vel.Y != before.Y) {
			g.cfg.OnBounce()
		}
	}

	if g.cfg.OnUpdate != nil {
		if err := g.cfg.OnUpdate(dt); err != nil {
			return err
		}
	}

	if g.fps != nil {
		g.fps.update(dt)
	}
	if g.cfg.Debug {
		g.stats.updateTime += time.Since(t0)
	}
	return nil
}

// Draw rasterizes the square into the software canvas and presents it.
func (g *game) Draw(screen *ebiten.Image) {
	t0 := time.Now()

	b := screen.Bounds()
	g.canvas.Resize(b.Dx(), b.Dy())
	g.sq.Draw(g.canvas)
	screen.WritePixels(g.canvas.RGBA())

	if g.fps != nil {
		g.fps.draw(screen)
	}

	if g.cfg.Debug {
		g.stats.drawTime += time.Since(t0)
		g.stats.maybeLog()
	}
}

// Run opens a resizable window and drives the square until the window is
// closed. It blocks for the lifetime of the window and returns whatever
// error Ebitengine reports; window, surface, and present failures are not
// recoverable at this level, so callers treat a non-nil error as fatal.
func Run(sq *Square, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = defaultTitle
	}
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}

	g := &game{
		sq:     sq,
		cfg:    cfg,
		canvas: NewCanvas(cfg.Width, cfg.Height),
		width:  cfg.Width,
		height: cfg.Height,
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false) // the canvas overwrites every pixel

	return ebiten.RunGame(g)
}
