package sched

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/dkoval/emergenet/core"
)

// DefaultMaxConcurrent bounds simultaneous task executions unless
// overridden with WithMaxConcurrent.
const DefaultMaxConcurrent = 4

// Option configures a Scheduler at construction.
type Option func(*Scheduler)

// WithLogger replaces the default slog logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Scheduler) { s.log = log }
}

// WithMaxConcurrent bounds the number of simultaneously running tasks.
// Values below 1 are treated as 1.
func WithMaxConcurrent(n int) Option {
	return func(s *Scheduler) {
		if n < 1 {
			n = 1
		}
		s.sem = semaphore.NewWeighted(int64(n))
	}
}

// Scheduler executes submitted work against a core.Network and queues the
// resulting Messages for a single polling consumer.
type Scheduler struct {
	net *core.Network
	log *slog.Logger
	sem *semaphore.Weighted

	mu    sync.Mutex
	inbox []Message
}

// New creates a Scheduler bound to the given network store.
func New(net *core.Network, opts ...Option) *Scheduler {
	s := &Scheduler{
		net: net,
		log: slog.Default(),
		sem: semaphore.NewWeighted(DefaultMaxConcurrent),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Submit registers work under the given title and schedules it on a
// background goroutine. It returns immediately with the task handle; the
// outcome arrives later through Poll.
func (s *Scheduler) Submit(title string, work Work) *Task {
	t := newTask(title)
	s.log.Debug("task submitted", "task", t.ID(), "title", title)
	go s.run(t, work)

	return t
}

// Poll drains every queued message in arrival order without blocking.
// An empty slice means nothing was pending.
func (s *Scheduler) Poll() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.inbox
	s.inbox = nil

	return out
}

// Notify enqueues an informational Notice outside any task, e.g. after a
// synchronous mutation.
func (s *Scheduler) Notify(text string) {
	s.enqueue(Message{Kind: KindNotice, Text: text})
}

// run executes one task: semaphore admission, read-locked execution,
// message delivery, state transition. Panics inside work are contained
// here and surface as Failure messages.
func (s *Scheduler) run(t *Task, work Work) {
	// Admission control. The background context is deliberate: submitted
	// tasks always run to completion, there is no mid-flight cancellation.
	if err := s.sem.Acquire(context.Background(), 1); err != nil {
		s.fail(t, err)

		return
	}
	defer s.sem.Release(1)

	t.setRunning()
	s.log.Debug("task running", "task", t.ID(), "title", t.Title())

	var (
		res Result
		err error
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("sched: task panicked: %v", r)
			}
		}()
		// The read lock is held for the whole execution, including any
		// metric computation the work performs.
		err = s.net.View(func(g *core.Graph) error {
			var workErr error
			res, workErr = work(g)

			return workErr
		})
	}()

	if err != nil {
		s.fail(t, err)

		return
	}

	// Per-task ordering: the annotation, when present, precedes the report.
	if len(res.Highlight) > 0 || len(res.Colors) > 0 {
		s.enqueue(Message{
			Kind:      KindAnnotation,
			Title:     t.Title(),
			Highlight: res.Highlight,
			Colors:    res.Colors,
		})
	}
	s.enqueue(Message{Kind: KindReport, Title: t.Title(), Text: res.Text})
	t.finish(nil)
	s.log.Debug("task completed", "task", t.ID(), "title", t.Title())
}

// fail records the failure on the handle and queues the Failure message.
func (s *Scheduler) fail(t *Task, err error) {
	s.log.Error("task failed", "task", t.ID(), "title", t.Title(), "error", err)
	s.enqueue(Message{Kind: KindFailure, Title: t.Title(), Text: err.Error()})
	t.finish(err)
}

// enqueue appends one message to the inbox. Appending to a mutex-guarded
// slice keeps delivery non-blocking for producers regardless of how slowly
// the consumer polls.
func (s *Scheduler) enqueue(m Message) {
	s.mu.Lock()
	s.inbox = append(s.inbox, m)
	s.mu.Unlock()
}
