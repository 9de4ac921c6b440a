package simulator

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/dkoval/emergenet/builder"
	"github.com/dkoval/emergenet/core"
	"github.com/dkoval/emergenet/metrics"
	"github.com/dkoval/emergenet/sched"
)

// Option configures a Simulator at construction.
type Option func(*config)

type config struct {
	topology *core.Graph
	log      *slog.Logger
	seed     int64
	seeded   bool
	maxConc  int
}

// WithTopology replaces the built-in baseline with a custom topology.
func WithTopology(g *core.Graph) Option {
	return func(c *config) { c.topology = g }
}

// WithLogger replaces the default slog logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) { c.log = log }
}

// WithRandSeed fixes the random source used by FailRandomNode, making
// failure simulations reproducible in tests.
func WithRandSeed(seed int64) Option {
	return func(c *config) { c.seed, c.seeded = seed, true }
}

// WithMaxConcurrent bounds simultaneous background analyses.
func WithMaxConcurrent(n int) Option {
	return func(c *config) { c.maxConc = n }
}

// Simulator ties the network store, the task scheduler, and the canned
// analyses together behind the external interface.
type Simulator struct {
	net   *core.Network
	tasks *sched.Scheduler
	log   *slog.Logger

	mu  sync.Mutex // guards rng; FailRandomNode may race with itself
	rng *rand.Rand
}

// New builds a Simulator over the given options. The default topology is
// the 8-site baseline from builder.Default.
func New(opts ...Option) *Simulator {
	cfg := config{
		log:     slog.Default(),
		maxConc: sched.DefaultMaxConcurrent,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.topology == nil {
		cfg.topology = builder.Default()
	}

	net, err := core.NewNetwork(cfg.topology)
	if err != nil {
		// Only reachable with a nil custom topology; treat as misuse.
		panic(fmt.Sprintf("simulator: invalid topology: %v", err))
	}

	var src rand.Source
	if cfg.seeded {
		src = rand.NewSource(cfg.seed)
	} else {
		src = rand.NewSource(rand.Int63())
	}

	return &Simulator{
		net: net,
		tasks: sched.New(net,
			sched.WithLogger(cfg.log),
			sched.WithMaxConcurrent(cfg.maxConc),
		),
		log: cfg.log,
		rng: rand.New(src),
	}
}

// SubmitTask schedules an arbitrary unit of analysis work under the given
// title and returns its handle immediately.
func (s *Simulator) SubmitTask(title string, work sched.Work) *sched.Task {
	return s.tasks.Submit(title, work)
}

// Poll drains every queued message without blocking; the presentation
// layer calls this on a fixed cadence.
func (s *Simulator) Poll() []sched.Message {
	return s.tasks.Poll()
}

// FailNode simulates the failure of a specific site: the node and all its
// links are removed from the working topology. The error (unknown ID)
// propagates synchronously; on success a Notice is queued.
func (s *Simulator) FailNode(id int) error {
	if err := s.net.RemoveNode(id); err != nil {
		return err
	}
	s.log.Info("node failed", "node", id)
	s.tasks.Notify(fmt.Sprintf("Node %d has failed and was removed.", id))

	return nil
}

// FailRandomNode picks a random surviving site and fails it, returning the
// victim's ID. Returns core.ErrNodeNotFound when no nodes remain.
func (s *Simulator) FailRandomNode() (int, error) {
	nodes := s.net.Snapshot().Nodes()
	if len(nodes) == 0 {
		return 0, core.ErrNodeNotFound
	}

	s.mu.Lock()
	victim := nodes[s.rng.Intn(len(nodes))]
	s.mu.Unlock()

	// The victim was sampled from a snapshot; a concurrent failure of the
	// same node surfaces as ErrNodeNotFound here, which is accurate.
	if err := s.FailNode(victim); err != nil {
		return 0, err
	}

	return victim, nil
}

// Reset restores the working topology to the baseline, waiting out any
// in-flight analysis reads first.
func (s *Simulator) Reset() {
	s.net.Reset()
	s.log.Info("network reset")
	s.tasks.Notify("Network reset to default topology.")
}

// CurrentGraph returns a detached deep copy of the working topology for
// presentation-layer rendering.
func (s *Simulator) CurrentGraph() *core.Graph {
	return s.net.Snapshot()
}

// Metrics computes structural statistics of the working topology under the
// read lock.
func (s *Simulator) Metrics() metrics.Metrics {
	var m metrics.Metrics
	_ = s.net.View(func(g *core.Graph) error {
		m = metrics.Calculate(g)

		return nil
	})

	return m
}
