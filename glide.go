package sprout

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Glide animates the square's position toward a target over a fixed
// duration with an easing function, as a smooth alternative to the instant
// CenterOn jump. Call Update(dt) each frame until Done.
//
// There is no global animation manager; callers own the Glide and drive it
// themselves.
type Glide struct {
	x, y *gween.Tween
	sq   *Square
	Done bool
}

// GlideTo creates a Glide that moves the square's top-left corner to
// (toX, toY) over duration seconds.
func GlideTo(sq *Square, toX, toY float64, duration float32, fn ease.TweenFunc) *Glide {
	return &Glide{
		x:  gween.New(float32(sq.Pos.X), float32(toX), duration, fn),
		y:  gween.New(float32(sq.Pos.Y), float32(toY), duration, fn),
		sq: sq,
	}
}

// GlideToCursor creates a Glide that centers the square on its last tracked
// cursor position, for a canvas of the given size. Like CenterOn, the
// target is not clamped to the canvas.
func GlideToCursor(sq *Square, width, height int, duration float32, fn ease.TweenFunc) *Glide {
	size := sq.Size(width, height)
	return GlideTo(sq, sq.Cursor.X-size.X/2, sq.Cursor.Y-size.Y/2, duration, fn)
}

// Update advances the glide by dt seconds and writes the interpolated
// position into the square. Once both axes finish, Done is set and further
// calls are no-ops.
func (g *Glide) Update(dt float32) {
	if g.Done {
		return
	}
	x, xDone := g.x.Update(dt)
	y, yDone := g.y.Update(dt)
	g.sq.Pos.X = float64(x)
	g.sq.Pos.Y = float64(y)
	g.Done = xDone && yDone
}
