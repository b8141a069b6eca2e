package engine

// FrameID identifies a requested frame; zero is never issued
type FrameID uint64

// Scheduler delivers frame callbacks, one per display refresh
type Scheduler interface {
	// RequestFrame queues fn for the next refresh
	RequestFrame(fn func()) FrameID

	// CancelFrame drops a queued frame; unknown or stale IDs are ignored
	CancelFrame(id FrameID)
}

// TickScheduler holds at most one pending frame and runs it on Tick
// The owner calls Tick from its refresh source (ticker, game loop, test)
type TickScheduler struct {
	lastID    FrameID
	pendingID FrameID
	pending   func()
}

// NewTickScheduler creates an empty scheduler
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

// RequestFrame replaces any pending frame with fn
func (s *TickScheduler) RequestFrame(fn func()) FrameID {
	s.lastID++
	s.pendingID = s.lastID
	s.pending = fn
	return s.pendingID
}

// CancelFrame clears the pending frame if id still refers to it
func (s *TickScheduler) CancelFrame(id FrameID) {
	if id == 0 || id != s.pendingID {
		return
	}
	s.pendingID = 0
	s.pending = nil
}

// Pending reports whether a frame is queued
func (s *TickScheduler) Pending() bool {
	return s.pending != nil
}

// Tick runs the pending frame, if any
// The slot is cleared before the callback so it may request the next frame
func (s *TickScheduler) Tick() bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pendingID = 0
	s.pending = nil
	fn()
	return true
}
