package sceneedit

// FrameHandle identifies a pending frame request.
type FrameHandle uint64

// FrameScheduler runs a callback once on the next display frame, passing the
// frame time in milliseconds. A cancelled request never runs.
type FrameScheduler interface {
	RequestFrame(fn func(now float64)) FrameHandle
	CancelFrame(h FrameHandle)
}

// FrameLoop is a repeating frame task. Each tick requests the next frame
// before running the step, so Stop always has a handle to cancel.
type FrameLoop struct {
	sched   FrameScheduler
	step    func(now float64)
	handle  FrameHandle
	running bool
	frames  uint64
}

// NewFrameLoop creates a stopped loop calling step once per frame.
func NewFrameLoop(sched FrameScheduler, step func(now float64)) *FrameLoop {
	return &FrameLoop{sched: sched, step: step}
}

// Start schedules the first frame. No-op if already running.
func (l *FrameLoop) Start() {
	if l.running || l.sched == nil {
		return
	}
	l.running = true
	l.handle = l.sched.RequestFrame(l.tick)
}

// Stop cancels the pending frame. No-op if not running.
func (l *FrameLoop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.sched.CancelFrame(l.handle)
	l.handle = 0
}

// Running reports whether the loop is scheduled.
func (l *FrameLoop) Running() bool { return l.running }

// Frames returns the number of steps run since creation.
func (l *FrameLoop) Frames() uint64 { return l.frames }

func (l *FrameLoop) tick(now float64) {
	if !l.running {
		return
	}
	l.handle = l.sched.RequestFrame(l.tick)
	l.frames++
	l.step(now)
}

// --- ManualScheduler ---

type frameRequest struct {
	handle FrameHandle
	fn     func(now float64)
}

// ManualScheduler is a FrameScheduler driven by explicit Advance calls. Use
// it in tests and headless drivers.
type ManualScheduler struct {
	pending   []frameRequest
	running   []frameRequest
	cancelled map[FrameHandle]bool
	next      FrameHandle
	now       float64
}

// NewManualScheduler creates an empty scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// RequestFrame implements FrameScheduler.
func (m *ManualScheduler) RequestFrame(fn func(now float64)) FrameHandle {
	m.next++
	m.pending = append(m.pending, frameRequest{handle: m.next, fn: fn})
	return m.next
}

// CancelFrame implements FrameScheduler.
func (m *ManualScheduler) CancelFrame(h FrameHandle) {
	for i := range m.pending {
		if m.pending[i].handle == h {
			copy(m.pending[i:], m.pending[i+1:])
			m.pending[len(m.pending)-1] = frameRequest{}
			m.pending = m.pending[:len(m.pending)-1]
			return
		}
	}
	// Cancelling a request from the batch being advanced.
	for _, r := range m.running {
		if r.handle == h {
			if m.cancelled == nil {
				m.cancelled = make(map[FrameHandle]bool)
			}
			m.cancelled[h] = true
			return
		}
	}
}

// Advance runs every callback requested before the call, in request order,
// with frame time now. Callbacks requested while advancing wait for the next
// Advance. Returns the number of callbacks run.
func (m *ManualScheduler) Advance(now float64) int {
	m.now = now
	m.running = m.pending
	m.pending = nil
	ran := 0
	for _, r := range m.running {
		if m.cancelled[r.handle] {
			continue
		}
		r.fn(now)
		ran++
	}
	m.running = nil
	clear(m.cancelled)
	return ran
}

// Pending returns the number of queued callbacks.
func (m *ManualScheduler) Pending() int { return len(m.pending) }

// Now returns the time passed to the latest Advance.
func (m *ManualScheduler) Now() float64 { return m.now }
