package particle

import (
	"time"

	"github.com/chris-regnier/tearoff/internal/motion"
)

// Snapshot is a piece's animated transform on the current frame.
type Snapshot struct {
	Piece
	X       float64 // px, horizontal drift applied so far
	Y       float64 // px, StartY while waiting, 0 at rest
	Angle   float64 // degrees
	Opacity float64
	Scale   float64
}

type faller struct {
	piece   Piece
	x, y    motion.Spring
	angle   motion.Spring
	opacity motion.Spring
	scale   motion.Spring
}

func newFaller(p Piece) faller {
	f := faller{
		piece:   p,
		x:       motion.NewSpring(motion.Falling, 0),
		y:       motion.NewSpring(motion.Falling, StartY),
		angle:   motion.NewSpring(motion.Falling, 0),
		opacity: motion.NewSpring(motion.Falling, 0),
		scale:   motion.NewSpring(motion.Falling, 0.5),
	}
	f.retarget(p)
	return f
}

func (f *faller) retarget(p Piece) {
	f.piece = p
	f.x.Target = p.DriftX
	f.y.Target = 0
	f.angle.Target = p.Rotate
	f.opacity.Target = 1
	f.scale.Target = 1
}

func (f *faller) step() {
	f.x.Step()
	f.y.Step()
	f.angle.Step()
	f.opacity.Step()
	f.scale.Step()
}

func (f faller) settled() bool {
	return f.x.Settled(0.5) && f.y.Settled(0.5) && f.angle.Settled(0.5) &&
		f.opacity.Settled(0.01) && f.scale.Settled(0.01)
}

func (f faller) snapshot() Snapshot {
	return Snapshot{
		Piece:   f.piece,
		X:       f.x.Pos,
		Y:       f.y.Pos,
		Angle:   f.angle.Pos,
		Opacity: motion.Clamp(f.opacity.Pos, 0, 1),
		Scale:   f.scale.Pos,
	}
}

// Burst is one tear's worth of falling pieces. It is advanced frame by
// frame with Step; each piece waits out its delay before its springs move.
type Burst struct {
	ID      string
	frame   int
	fallers []faller
}

// NewBurst generates count pieces from src under the given id.
func NewBurst(id string, count int, src Source) *Burst {
	pieces := Generate(count, src)
	b := &Burst{ID: id, fallers: make([]faller, len(pieces))}
	for i, p := range pieces {
		b.fallers[i] = newFaller(p)
	}
	return b
}

// Len is the number of pieces.
func (b *Burst) Len() int { return len(b.fallers) }

// Elapsed is the animation time covered so far.
func (b *Burst) Elapsed() time.Duration {
	return time.Duration(b.frame) * motion.Frame
}

// Step advances the burst by one frame.
func (b *Burst) Step() {
	b.frame++
	for i := range b.fallers {
		f := &b.fallers[i]
		if b.frame > motion.Frames(time.Duration(f.piece.Delay*float64(time.Second))) {
			f.step()
		}
	}
}

// Settled reports whether every piece has come to rest.
func (b *Burst) Settled() bool {
	for _, f := range b.fallers {
		if !f.settled() {
			return false
		}
	}
	return true
}

// Retarget draws fresh resting parameters for every piece while keeping
// its current animated position and delay, so pieces drift toward new
// rest poses.
func (b *Burst) Retarget(src Source) {
	for i := range b.fallers {
		f := &b.fallers[i]
		p := NewPiece(f.piece.Index, src)
		p.Delay = f.piece.Delay
		f.retarget(p)
	}
}

// Snapshots returns every piece's current transform in index order.
func (b *Burst) Snapshots() []Snapshot {
	out := make([]Snapshot, len(b.fallers))
	for i, f := range b.fallers {
		out[i] = f.snapshot()
	}
	return out
}
