package sprout

// Defaults used by New. Examples override them through the exported fields.
const (
	// DefaultStep is how far one directional key press moves the square,
	// in pixels.
	DefaultStep = 20.0

	// DefaultBackground is the canvas clear color (0x00RRGGBB).
	DefaultBackground uint32 = 0x00202020

	// DefaultFill is the square's color (0x00RRGGBB).
	DefaultFill uint32 = 0x00FF00FF
)

// sizeFraction is the square's edge length relative to each canvas
// dimension. Recomputed from the live canvas size on every call so the
// square tracks window resizes.
const sizeFraction = 0.10

// Square is the animated square's complete state: position, velocity,
// last known cursor position, and drawing colors. It holds no window or
// surface handle, so it can be driven headless; the host feeds canvas
// dimensions into each operation instead.
//
// Pos is the top-left corner in canvas pixel coordinates. The position
// invariant (0 <= Pos <= canvas - size, per axis) is maintained by clamping
// inside Nudge and Advance. CenterOn is exempt: see its doc.
type Square struct {
	Pos    Vec2
	Vel    Vec2
	Cursor Vec2

	Step       float64
	Background uint32
	Fill       uint32
}

// New returns a Square centered in a canvas of the given dimensions, with
// default step, colors, and zero velocity. Dimensions below 1 are raised
// to 1.
func New(width, height int) *Square {
	s := &Square{
		Step:       DefaultStep,
		Background: DefaultBackground,
		Fill:       DefaultFill,
	}
	size := s.Size(width, height)
	s.Pos = Vec2{
		X: (float64(max(width, 1)) - size.X) / 2,
		Y: (float64(max(height, 1)) - size.Y) / 2,
	}
	return s
}

// Size returns the square's dimensions for a canvas of the given size:
// 10% of the width and height. Never cached.
func (s *Square) Size(width, height int) Vec2 {
	return Vec2{
		X: float64(max(width, 1)) * sizeFraction,
		Y: float64(max(height, 1)) * sizeFraction,
	}
}

// Extent returns the square's rectangle for a canvas of the given size.
func (s *Square) Extent(width, height int) Rect {
	size := s.Size(width, height)
	return Rect{X: s.Pos.X, Y: s.Pos.Y, Width: size.X, Height: size.Y}
}

// maxPos returns the largest top-left position that keeps the square fully
// inside a canvas of the given size.
func (s *Square) maxPos(width, height int) Vec2 {
	size := s.Size(width, height)
	return Vec2{
		X: float64(max(width, 1)) - size.X,
		Y: float64(max(height, 1)) - size.Y,
	}
}

// Nudge moves the square one step in the given direction, clamped so the
// near edge never passes 0 and the far edge never passes the canvas edge.
// Keyboard movement clamps at the boundary; it never bounces.
func (s *Square) Nudge(dir Direction, width, height int) {
	mp := s.maxPos(width, height)
	switch dir {
	case DirUp:
		s.Pos.Y = clamp(s.Pos.Y-s.Step, 0, mp.Y)
	case DirLeft:
		s.Pos.X = clamp(s.Pos.X-s.Step, 0, mp.X)
	case DirDown:
		s.Pos.Y = clamp(s.Pos.Y+s.Step, 0, mp.Y)
	case DirRight:
		s.Pos.X = clamp(s.Pos.X+s.Step, 0, mp.X)
	}
}

// SetCursor records the pointer position. It has no visual effect on its
// own; CenterOn reads it when a click arrives.
func (s *Square) SetCursor(x, y float64) {
	s.Cursor = Vec2{X: x, Y: y}
}

// CenterOn places the square's center at the last recorded cursor position.
// Unlike Nudge, the result is NOT clamped to the canvas: a click near an
// edge leaves the square hanging partly (or wholly) outside, and Draw clips
// it. Keyboard movement and physics re-establish the bounds invariant on
// their next update.
func (s *Square) CenterOn(width, height int) {
	size := s.Size(width, height)
	s.Pos = Vec2{
		X: s.Cursor.X - size.X/2,
		Y: s.Cursor.Y - size.Y/2,
	}
}

// Advance integrates the square's position by dt seconds of velocity and
// reflects it off the canvas edges. Each axis is tested independently on
// the post-integration edges: when the far edge reaches the canvas edge or
// the near edge reaches 0, that axis's velocity is negated and the position
// is clamped back inside.
//
// Integration is a single explicit Euler step and the contact test runs
// once per frame, so a very large dt (a minimized window, a debugger pause)
// can carry the square across a boundary with only one late bounce.
// dt <= 0 leaves position and velocity untouched.
func (s *Square) Advance(dt float64, width, height int) {
	if dt <= 0 {
		return
	}
	mp := s.maxPos(width, height)

	s.Pos.X += s.Vel.X * dt
	if s.Pos.X <= 0 || s.Pos.X >= mp.X {
		s.Vel.X = -s.Vel.X
		s.Pos.X = clamp(s.Pos.X, 0, mp.X)
	}

	s.Pos.Y += s.Vel.Y * dt
	if s.Pos.Y <= 0 || s.Pos.Y >= mp.Y {
		s.Vel.Y = -s.Vel.Y
		s.Pos.Y = clamp(s.Pos.Y, 0, mp.Y)
	}
}

// Draw rasterizes the current frame into the canvas: background first, then
// the square's rectangle clipped to the canvas bounds.
func (s *Square) Draw(c *Canvas) {
	size := s.Size(c.Width, c.Height)
	c.Fill(s.Background)
	c.FillRect(int(s.Pos.X), int(s.Pos.Y), int(size.X), int(size.Y), s.Fill)
}
