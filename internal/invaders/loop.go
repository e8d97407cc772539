package invaders

// FrameID identifies a pending frame request.
type FrameID uint64

// Scheduler runs callbacks once per display frame.
// RequestFrame queues fn for the next frame; CancelFrame withdraws a request
// that has not run yet.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Loop drives a session: on every frame it runs one Update, then one Render,
// then asks the scheduler for another frame. It stops asking as soon as the
// session reaches a terminal state.
type Loop struct {
	session *Session
	surface Surface
	sched   Scheduler

	pending    FrameID
	hasPending bool
	running    bool

	onHalt func(State)
}

// NewLoop creates a stopped loop for the session.
func NewLoop(session *Session, dst Surface, sched Scheduler) *Loop {
	return &Loop{
		session: session,
		surface: dst,
		sched:   sched,
	}
}

// OnHalt registers fn to be called once with the terminal state when the
// loop stops by itself.
func (l *Loop) OnHalt(fn func(State)) {
	l.onHalt = fn
}

// Start renders the initial frame and requests the first tick.
// Starting a running loop or a finished session does nothing.
func (l *Loop) Start() {
	if l.running || l.session.State().Terminal() {
		return
	}
	l.running = true
	l.session.Render(l.surface)
	l.request()
}

// Stop cancels the pending frame request, if any.
func (l *Loop) Stop() {
	if l.hasPending {
		l.sched.CancelFrame(l.pending)
		l.hasPending = false
	}
	l.running = false
}

// Running reports whether the loop still has a frame scheduled.
func (l *Loop) Running() bool {
	return l.running
}

// Session returns the session the loop drives.
func (l *Loop) Session() *Session {
	return l.session
}

func (l *Loop) request() {
	l.pending = l.sched.RequestFrame(l.frame)
	l.hasPending = true
}

// frame is the per-tick callback handed to the scheduler.
func (l *Loop) frame() {
	l.hasPending = false
	if !l.running {
		return
	}

	state := l.session.Update()
	l.session.Render(l.surface)

	if state.Terminal() {
		l.running = false
		if l.onHalt != nil {
			l.onHalt(state)
		}
		return
	}
	l.request()
}

// FrameQueue is a Scheduler whose frames are advanced explicitly by the
// owner calling RunPending, e.g. from a timer message.
type FrameQueue struct {
	next    FrameID
	pending []frameRequest
	running []frameRequest
}

type frameRequest struct {
	id FrameID
	fn func()
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame queues fn for the next RunPending call.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.next++
	q.pending = append(q.pending, frameRequest{id: q.next, fn: fn})
	return q.next
}

// CancelFrame withdraws a request. Unknown or already-run IDs are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i := range q.pending {
		if q.pending[i].id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	// A callback of the frame being run may cancel a later one in the same batch.
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// RunPending runs every callback requested before this call, in request
// order, and returns how many ran. Callbacks requested while running are
// deferred to the next call.
func (q *FrameQueue) RunPending() int {
	q.running, q.pending = q.pending, nil
	ran := 0
	for i := range q.running {
		if fn := q.running[i].fn; fn != nil {
			fn()
			ran++
		}
	}
	q.running = nil
	return ran
}

// Pending returns the number of requests waiting for the next frame.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
