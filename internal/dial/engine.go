package dial

import "math"

// Phase is the gesture state of an Engine.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

// InteractionState is everything the engine remembers between events.
type InteractionState struct {
	Center Point
	Pivot  Point

	DragStartDeg float64
	CurrentDeg   float64
	// CommittedDeg is the rotation at the end of the last gesture; every new
	// gesture is measured relative to it.
	CommittedDeg float64

	Phase Phase
}

// Engine turns pointer drags into a bounded rotation and an integer value.
// It is not safe for concurrent use; the host serialises layout, drag and
// render calls on its UI loop.
type Engine struct {
	cfg      Config
	state    InteractionState
	lo, hi   float64
	value    int
	onChange func(int)
}

// NewEngine validates cfg and returns an idle engine at the initial value.
// onChange may be nil.
func NewEngine(cfg Config, onChange func(int)) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lo, hi := cfg.AngleBounds()
	return &Engine{
		cfg:      cfg,
		lo:       lo,
		hi:       hi,
		value:    cfg.InitialValue,
		onChange: onChange,
	}, nil
}

func (e *Engine) Config() Config          { return e.cfg }
func (e *Engine) State() InteractionState { return e.state }
func (e *Engine) Value() int              { return e.value }
func (e *Engine) Angle() float64          { return e.state.CurrentDeg }
func (e *Engine) Dragging() bool          { return e.state.Phase == Dragging }

// PivotFor places the rotation centre so the top of the band touches the top
// of an area of the given size.
func PivotFor(size Size, style ScaleStyle) (center, pivot Point) {
	center = Point{size.W / 2, size.H / 2}
	pivot = Point{center.X, style.ScaleWidth/2 + style.Radius}
	return center, pivot
}

// OnLayout recomputes the centre and pivot. Empty sizes are ignored.
func (e *Engine) OnLayout(size Size) {
	if size.Empty() {
		return
	}
	e.state.Center, e.state.Pivot = PivotFor(size, e.cfg.Style)
}

// AngleOfPoint is the angle of p around the pivot in degrees: straight up is
// zero and angles grow clockwise.
func (e *Engine) AngleOfPoint(p Point) float64 {
	return -math.Atan2(e.state.Pivot.X-p.X, e.state.Pivot.Y-p.Y) * 180 / math.Pi
}

// OnDragStart begins a gesture at p. Starting while a gesture is already
// active commits the rotation reached so far before starting over.
func (e *Engine) OnDragStart(p Point) {
	if e.state.Phase == Dragging {
		e.state.CommittedDeg = e.state.CurrentDeg
	}
	e.state.DragStartDeg = e.AngleOfPoint(p)
	e.state.Phase = Dragging
}

// OnDragMove rotates the dial by the pointer's angular travel since the
// gesture started, clamps the rotation and reports the resulting value.
func (e *Engine) OnDragMove(p Point) (int, error) {
	if e.state.Phase != Dragging {
		return e.value, ErrInvalidSequence
	}
	touch := e.AngleOfPoint(p)
	raw := e.state.CommittedDeg + (touch - e.state.DragStartDeg)
	e.state.CurrentDeg = clamp(raw, e.lo, e.hi)
	e.value = int(math.Round(float64(e.cfg.InitialValue) - e.state.CurrentDeg))
	if e.onChange != nil {
		e.onChange(e.value)
	}
	return e.value, nil
}

// OnDragEnd commits the current rotation as the baseline for the next gesture.
func (e *Engine) OnDragEnd() error {
	if e.state.Phase != Dragging {
		return ErrInvalidSequence
	}
	e.state.CommittedDeg = e.state.CurrentDeg
	e.state.Phase = Idle
	return nil
}

// Frame renders the dial at the engine's current rotation.
func (e *Engine) Frame() []Command {
	return Render(e.cfg, e.state.Pivot, e.state.CurrentDeg)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
