package gesture

// Axis restricts which component of pointer motion a drag tracks.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Drag tracks one press-move-release sequence along a single axis.
// The zero value is an idle drag.
type Drag struct {
	axis   Axis
	active bool
	origin float64
	offset float64
}

// NewDrag returns an idle drag on the given axis.
func NewDrag(axis Axis) Drag {
	return Drag{axis: axis}
}

// Active reports whether a press is in progress.
func (d Drag) Active() bool { return d.active }

// Offset is the current raw displacement along the axis.
func (d Drag) Offset() float64 { return d.offset }

func (d Drag) pick(x, y float64) float64 {
	if d.axis == AxisX {
		return x
	}
	return y
}

// Begin starts a drag at pointer position (x, y).
func (d *Drag) Begin(x, y float64) {
	d.BeginAt(x, y, 0)
}

// BeginAt starts a drag at (x, y) that already carries offset, so a grab
// continues from wherever a spring left the page.
func (d *Drag) BeginAt(x, y, offset float64) {
	d.active = true
	d.origin = d.pick(x, y) - offset
	d.offset = offset
}

// Move updates the displacement; it is ignored while idle.
func (d *Drag) Move(x, y float64) {
	if !d.active {
		return
	}
	d.offset = d.pick(x, y) - d.origin
}

// Nudge adds delta to the displacement, starting a drag if idle. It backs
// keyboard-driven drags.
func (d *Drag) Nudge(delta float64) {
	if !d.active {
		d.active = true
		d.origin = 0
		d.offset = 0
	}
	d.offset += delta
}

// End finishes the drag and returns the final displacement. Ending an idle
// drag returns 0.
func (d *Drag) End() float64 {
	if !d.active {
		return 0
	}
	off := d.offset
	d.active = false
	d.offset = 0
	return off
}

// Cancel abandons the drag without a release decision.
func (d *Drag) Cancel() {
	d.active = false
	d.offset = 0
}
