package sprout

import "testing"

// --- Rect ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"left edge", 10, 40, true},
		{"right edge", 110, 40, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside above", 50, 19, false},
		{"outside below", 50, 71, false},
		{"far outside", 999, 999, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	base := Rect{0, 0, 100, 100}
	tests := []struct {
		name  string
		other Rect
		want  Rect
	}{
		{"overlapping", Rect{50, 50, 100, 100}, Rect{50, 50, 50, 50}},
		{"contained", Rect{20, 30, 10, 10}, Rect{20, 30, 10, 10}},
		{"containing", Rect{-10, -10, 200, 200}, Rect{0, 0, 100, 100}},
		{"hanging off top-left", Rect{-30, -30, 50, 50}, Rect{0, 0, 20, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Intersect(tt.other)
			if got != tt.want {
				t.Errorf("Intersect(Rect%v) = Rect%v, want Rect%v", tt.other, got, tt.want)
			}
		})
	}

	t.Run("disjoint", func(t *testing.T) {
		got := base.Intersect(Rect{200, 200, 10, 10})
		if got.Width > 0 && got.Height > 0 {
			t.Errorf("Intersect of disjoint rects = Rect%v, want non-positive size", got)
		}
	})
}

// --- Direction ---

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{DirUp, "up"},
		{DirLeft, "left"},
		{DirDown, "down"},
		{DirRight, "right"},
		{Direction(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

// --- clamp ---

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
