package sched

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dkoval/emergenet/core"
)

// State is the lifecycle stage of a submitted task.
type State int32

const (
	// Pending indicates the task has been submitted but not yet picked up.
	Pending State = iota
	// Running indicates the task is executing on a background goroutine.
	Running
	// Completed indicates the work function returned successfully.
	Completed
	// Failed indicates the work function returned an error or panicked.
	Failed
)

// String renders the state for logs and reports.
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Kind tags the variant of a Message.
type Kind int

const (
	// KindReport carries the textual result of a completed task.
	KindReport Kind = iota
	// KindAnnotation carries edge highlights or node colors for rendering.
	KindAnnotation
	// KindNotice carries an informational note outside any task result.
	KindNotice
	// KindFailure carries the error text of a failed task.
	KindFailure
)

// Message is the tagged variant delivered through the inbox.
// Report and Failure use Title and Text; Annotation uses Highlight and/or
// Colors; Notice uses Text.
type Message struct {
	Kind      Kind
	Title     string
	Text      string
	Highlight []core.EdgeKey
	Colors    map[int]int
}

// Result is what a work function produces: a textual report plus optional
// rendering hints for the presentation layer.
type Result struct {
	// Text is the report body shown to the operator.
	Text string

	// Highlight lists edges the presentation layer should emphasize.
	Highlight []core.EdgeKey

	// Colors maps node IDs to color indices from a coloring run.
	Colors map[int]int
}

// Work is a unit of analysis: it receives the locked working graph and
// must neither retain nor mutate it.
type Work func(g *core.Graph) (Result, error)

// Task is the handle returned by Submit. It is safe for concurrent use.
type Task struct {
	id    uuid.UUID
	title string
	state atomic.Int32

	done chan struct{}

	mu  sync.Mutex
	err error
}

func newTask(title string) *Task {
	return &Task{
		id:    uuid.New(),
		title: title,
		done:  make(chan struct{}),
	}
}

// ID returns the unique task identifier.
func (t *Task) ID() uuid.UUID { return t.id }

// Title returns the name the task was submitted under.
func (t *Task) Title() string { return t.title }

// State returns the current lifecycle stage.
func (t *Task) State() State { return State(t.state.Load()) }

// Err returns the failure cause once the task is Failed, nil otherwise.
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// Wait blocks until the task reaches Completed or Failed.
func (t *Task) Wait() {
	<-t.done
}

// setRunning marks the transition Pending → Running.
func (t *Task) setRunning() { t.state.Store(int32(Running)) }

// finish records the terminal state and releases all waiters.
func (t *Task) finish(err error) {
	if err != nil {
		t.mu.Lock()
		t.err = err
		t.mu.Unlock()
		t.state.Store(int32(Failed))
	} else {
		t.state.Store(int32(Completed))
	}
	close(t.done)
}
