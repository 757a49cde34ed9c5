package particle

import (
	"regexp"
	"testing"

	"github.com/chris-regnier/tearoff/internal/motion"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

// fixedSource returns the same value forever.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

// seqSource cycles through values.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestGenerateCountAndBounds(t *testing.T) {
	pieces := Generate(DefaultCount, NewSource(7))
	if len(pieces) != DefaultCount {
		t.Fatalf("got %d pieces, want %d", len(pieces), DefaultCount)
	}
	for i, p := range pieces {
		if p.Index != i {
			t.Errorf("piece %d has index %d", i, p.Index)
		}
		if p.Left < 5 || p.Left > 95 {
			t.Errorf("piece %d left %v out of [5,95]", i, p.Left)
		}
		if p.Bottom < 0 || p.Bottom >= MaxBottom {
			t.Errorf("piece %d bottom %v out of range", i, p.Bottom)
		}
		for _, s := range []float64{p.Width, p.Height} {
			if s < MinSize || s >= MinSize+SizeSpread {
				t.Errorf("piece %d size %v out of range", i, s)
			}
		}
		if p.Rotate < 0 || p.Rotate >= 360 {
			t.Errorf("piece %d rotate %v out of range", i, p.Rotate)
		}
		if p.DriftX < -DriftRange/2 || p.DriftX >= DriftRange/2 {
			t.Errorf("piece %d drift %v out of range", i, p.DriftX)
		}
		if p.Delay < 0 || p.Delay >= MaxDelay {
			t.Errorf("piece %d delay %v out of range", i, p.Delay)
		}
	}
}

func TestGenerateNegativeCount(t *testing.T) {
	if got := Generate(-3, NewSource(1)); len(got) != 0 {
		t.Errorf("expected no pieces, got %d", len(got))
	}
}

func TestSeededSourceIsDeterministic(t *testing.T) {
	a := Generate(10, NewSource(42))
	b := Generate(10, NewSource(42))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different pieces:\n%s", diff)
	}
	c := Generate(10, NewSource(43))
	if cmp.Equal(a, c) {
		t.Error("different seeds produced identical pieces")
	}
}

func TestNewPieceShapeSelection(t *testing.T) {
	low := NewPiece(0, fixedSource(0.2))
	if low.Shape != ShapeSquare || low.Clipped {
		t.Errorf("low draw: shape=%s clipped=%v", low.Shape, low.Clipped)
	}
	high := NewPiece(0, fixedSource(0.9))
	if high.Shape != ShapeCircle || !high.Clipped {
		t.Errorf("high draw: shape=%s clipped=%v", high.Shape, high.Clipped)
	}
}

func TestNewPieceMidpoint(t *testing.T) {
	got := NewPiece(3, fixedSource(0.5))
	want := Piece{
		Index: 3, Left: 50, Bottom: 30, Width: 20, Height: 20,
		Rotate: 180, DriftX: 0, Delay: 0.4, Shape: ShapeSquare,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("midpoint piece mismatch (-want +got):\n%s", diff)
	}
}

func TestNewID(t *testing.T) {
	id, err := NewID()
	if err != nil {
		t.Fatal(err)
	}
	if !regexp.MustCompile(`^[a-z0-9]{8}$`).MatchString(id) {
		t.Errorf("unexpected id %q", id)
	}
}

func TestBurstWaitsForDelayThenSettles(t *testing.T) {
	defer goleak.VerifyNone(t)
	src := &seqSource{vals: []float64{0.5}}
	b := NewBurst("test", 1, src)
	if b.Len() != 1 {
		t.Fatalf("Len() = %d", b.Len())
	}

	// Delay is 0.4s = 24 frames; nothing moves before that.
	for i := 0; i < 24; i++ {
		b.Step()
	}
	s := b.Snapshots()[0]
	if s.Y != StartY || s.Opacity != 0 || s.Scale != 0.5 {
		t.Fatalf("piece moved during delay: %+v", s)
	}

	b.Step()
	if b.Snapshots()[0].Y == StartY {
		t.Fatal("piece did not start falling after delay")
	}

	for i := 0; i < 10*motion.FPS && !b.Settled(); i++ {
		b.Step()
	}
	if !b.Settled() {
		t.Fatal("burst never settled")
	}
	s = b.Snapshots()[0]
	if s.Y < -0.5 || s.Y > 0.5 {
		t.Errorf("resting y = %v, want ~0", s.Y)
	}
	if s.Angle < 179.5 || s.Angle > 180.5 {
		t.Errorf("resting angle = %v, want ~180", s.Angle)
	}
}

func TestBurstRetargetKeepsDelayAndPosition(t *testing.T) {
	b := NewBurst("x", 5, NewSource(3))
	for i := 0; i < 30; i++ {
		b.Step()
	}
	before := b.Snapshots()
	b.Retarget(NewSource(99))
	after := b.Snapshots()
	for i := range before {
		if before[i].Delay != after[i].Delay {
			t.Errorf("piece %d delay changed", i)
		}
		if before[i].Y != after[i].Y {
			t.Errorf("piece %d jumped on retarget", i)
		}
	}
	if cmp.Equal(before[0].Piece, after[0].Piece) {
		t.Error("retarget did not change resting parameters")
	}
}

func TestBurstElapsed(t *testing.T) {
	b := NewBurst("x", 0, NewSource(1))
	for i := 0; i < motion.FPS; i++ {
		b.Step()
	}
	if got := b.Elapsed(); got < 999_000_000 || got > 1_001_000_000 {
		t.Errorf("Elapsed after %d frames = %v", motion.FPS, got)
	}
	if !b.Settled() {
		t.Error("empty burst should be settled")
	}
}
