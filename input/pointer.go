package input

// Sink receives pointer updates in surface pixels
// engine.Context implements it
type Sink interface {
	MovePointer(x, y float64)
	LeavePointer()
}

// Tracker forwards pointer events to a sink and reports presence changes
type Tracker struct {
	sink    Sink
	present bool

	onEnter func()
	onLeave func()
}

// NewTracker creates a tracker with the pointer absent
func NewTracker(sink Sink) *Tracker {
	return &Tracker{sink: sink}
}

// OnEnter registers a callback fired when the pointer becomes present
func (t *Tracker) OnEnter(fn func()) { t.onEnter = fn }

// OnLeave registers a callback fired when the pointer becomes absent
func (t *Tracker) OnLeave(fn func()) { t.onLeave = fn }

// Present reports whether the last event left the pointer on the surface
func (t *Tracker) Present() bool { return t.present }

// Move sets the pointer position
func (t *Tracker) Move(x, y float64) {
	t.sink.MovePointer(x, y)
	if !t.present {
		t.present = true
		if t.onEnter != nil {
			t.onEnter()
		}
	}
}

// Leave clears the pointer
func (t *Tracker) Leave() {
	t.sink.LeavePointer()
	if t.present {
		t.present = false
		if t.onLeave != nil {
			t.onLeave()
		}
	}
}
