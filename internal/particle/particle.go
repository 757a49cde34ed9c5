// Package particle generates the decorative paper scraps that pile up at
// the bottom of the screen once the calendar page is torn.
package particle

import (
	"fmt"
	"math/rand/v2"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// DefaultCount is the number of pieces in a burst.
const DefaultCount = 50

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

// Source supplies uniform random numbers in [0, 1).
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic Source for the given seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shape is a piece's outline.
type Shape int

const (
	ShapeSquare Shape = iota // slightly rounded corners
	ShapeCircle
)

func (s Shape) String() string {
	if s == ShapeCircle {
		return "circle"
	}
	return "square"
}

// Piece is one scrap's randomized parameters. Lengths are pixels, angles
// degrees.
type Piece struct {
	Index   int
	Left    float64 // percent of strip width, 5..95
	Bottom  float64 // resting height above the strip floor, 0..60
	Width   float64 // 10..30
	Height  float64 // 10..30
	Rotate  float64 // resting rotation, 0..360
	DriftX  float64 // resting horizontal drift, -150..150
	Delay   float64 // seconds before falling, 0..0.8
	Shape   Shape
	Clipped bool // one corner sheared off
}

// Ranges of the randomized parameters.
const (
	StartY     = -600
	MaxDelay   = 0.8
	MaxBottom  = 60
	MinSize    = 10
	SizeSpread = 20
	DriftRange = 300
	LeftSpread = 90
)

// NewPiece draws a piece's parameters from src.
func NewPiece(index int, src Source) Piece {
	p := Piece{Index: index}
	p.Rotate = src.Float64() * 360
	p.DriftX = (src.Float64() - 0.5) * DriftRange
	p.Delay = src.Float64() * MaxDelay
	p.Left = 50 + (src.Float64()-0.5)*LeftSpread
	p.Bottom = src.Float64() * MaxBottom
	p.Width = MinSize + src.Float64()*SizeSpread
	p.Height = MinSize + src.Float64()*SizeSpread
	if src.Float64() > 0.5 {
		p.Shape = ShapeCircle
	}
	p.Clipped = src.Float64() > 0.7
	return p
}

// Generate draws count pieces from src. A negative count yields none.
func Generate(count int, src Source) []Piece {
	if count < 0 {
		count = 0
	}
	pieces := make([]Piece, count)
	for i := range pieces {
		pieces[i] = NewPiece(i, src)
	}
	return pieces
}

// NewID returns an identifier for a burst, used to correlate log lines.
func NewID() (string, error) {
	id, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		return "", fmt.Errorf("generating burst id: %w", err)
	}
	return id, nil
}
