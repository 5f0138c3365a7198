package sprout

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestGlideReachesTarget(t *testing.T) {
	sq := New(800, 600)
	g := GlideTo(sq, 100, 200, 1.0, ease.Linear)

	for i := 0; i < 20 && !g.Done; i++ {
		g.Update(0.1)
	}

	if !g.Done {
		t.Fatal("glide did not finish within its duration")
	}
	if math.Abs(sq.Pos.X-100) > 0.001 || math.Abs(sq.Pos.Y-200) > 0.001 {
		t.Errorf("final position = %v, want (100, 200)", sq.Pos)
	}
}

func TestGlideLinearMidpoint(t *testing.T) {
	sq := New(800, 600)
	sq.Pos = Vec2{0, 0}
	g := GlideTo(sq, 100, 50, 1.0, ease.Linear)

	g.Update(0.5)
	if math.Abs(sq.Pos.X-50) > 0.001 || math.Abs(sq.Pos.Y-25) > 0.001 {
		t.Errorf("midpoint position = %v, want (50, 25)", sq.Pos)
	}
	if g.Done {
		t.Error("glide reported Done at the midpoint")
	}
}

func TestGlideToCursorTargetsSquareCenter(t *testing.T) {
	sq := New(800, 600)
	sq.SetCursor(100, 50)
	g := GlideToCursor(sq, 800, 600, 0.5, ease.Linear)

	for i := 0; i < 10 && !g.Done; i++ {
		g.Update(0.1)
	}

	// Same target as CenterOn: cursor minus half the square size, unclamped.
	if math.Abs(sq.Pos.X-60) > 0.001 || math.Abs(sq.Pos.Y-20) > 0.001 {
		t.Errorf("final position = %v, want (60, 20)", sq.Pos)
	}
}

func TestGlideDoneIsStable(t *testing.T) {
	sq := New(800, 600)
	g := GlideTo(sq, 10, 10, 0.1, ease.Linear)
	g.Update(1.0)

	if !g.Done {
		t.Fatal("glide not Done after overshooting its duration")
	}
	final := sq.Pos
	g.Update(1.0)
	if sq.Pos != final {
		t.Errorf("Update after Done moved the square from %v to %v", final, sq.Pos)
	}
}
