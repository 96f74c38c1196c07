package platform

type Event interface{}

type Expose struct{}
type KeyPress struct {
	Code  uint64
	Label string
}
type KeyRelease struct {
	Code  uint64
	Label string
}
type ButtonPress struct {
	Button uint32
	X, Y   int
}
type ButtonRelease struct {
	Button uint32
	X, Y   int
}
type MotionNotify struct {
	X, Y int
}
type MouseWheel struct {
	DeltaX float64
	DeltaY float64
	X, Y   int
}
type Resize struct {
	Width, Height int
}

// ClientMessage is a close request from the window manager.
type ClientMessage struct{}

// eventQueue buffers events delivered by native callbacks until the render
// loop drains them. Once full, the oldest event is dropped.
type eventQueue struct {
	events []Event
	limit  int
}

func newEventQueue(limit int) *eventQueue {
	if limit <= 0 {
		limit = 1024
	}
	return &eventQueue{limit: limit}
}

func (q *eventQueue) push(e Event) {
	if e == nil {
		return
	}
	if len(q.events) == q.limit {
		q.events = q.events[1:]
	}
	q.events = append(q.events, e)
}

func (q *eventQueue) pop() (Event, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	e := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return e, true
}

func (q *eventQueue) len() int {
	return len(q.events)
}
