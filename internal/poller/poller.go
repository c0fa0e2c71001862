// Package poller implements the client-side leaderboard polling loop.
//
// A Poller is session-scoped state: it is created when a view mounts,
// runs until its context is cancelled, and owns the previous-leader
// reference and the reduced-motion preference for that session.
package poller

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nuitinfo/podium-live/internal/team/model"
)

// State describes where the polling loop currently is.
type State int

const (
	// StateIdle means the loop is not running.
	StateIdle State = iota
	// StatePolling means reads happen on the configured cadence.
	StatePolling
	// StateErrored means the last read failed; cadence ticks are ignored
	// until Retry is called.
	StateErrored
)

// Config holds poller construction options.
type Config struct {
	// Interval is the polling cadence (public view 2s, admin view 3s).
	Interval time.Duration
	// ReducedMotion seeds the motion-effect opt-out, typically from the
	// platform's reduced-motion signal.
	ReducedMotion bool
	// Logger receives poll failures and dropped events.
	Logger *zap.SugaredLogger
}

// Poller periodically reads the ranked list and emits leader-change events.
type Poller struct {
	client   Client
	interval time.Duration
	logger   *zap.SugaredLogger

	mu            sync.Mutex
	state         State
	prevLeader    *uint
	teams         []model.Team
	reducedMotion bool

	events  chan Event
	pokes   chan struct{}
	retries chan struct{}
}

// New creates a poller for the given client.
func New(client Client, cfg Config) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = 2 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Poller{
		client:        client,
		interval:      cfg.Interval,
		logger:        logger,
		state:         StateIdle,
		reducedMotion: cfg.ReducedMotion,
		events:        make(chan Event, 8),
		pokes:         make(chan struct{}, 1),
		retries:       make(chan struct{}, 1),
	}
}

// Events returns the channel carrying leader-change events.
func (p *Poller) Events() <-chan Event {
	return p.events
}

// State returns the current loop state.
func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Teams returns a copy of the last successfully observed ranked list.
func (p *Poller) Teams() []model.Team {
	p.mu.Lock()
	defer p.mu.Unlock()
	teams := make([]model.Team, len(p.teams))
	copy(teams, p.teams)
	return teams
}

// SetReducedMotion toggles the motion-effect opt-out at runtime.
func (p *Poller) SetReducedMotion(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reducedMotion = on
}

// ReducedMotion reports the current motion-effect opt-out.
func (p *Poller) ReducedMotion() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reducedMotion
}

// Poke requests an immediate out-of-cadence read, the window-focus case.
// Ignored while the poller is errored or a poke is already pending.
func (p *Poller) Poke() {
	select {
	case p.pokes <- struct{}{}:
	default:
	}
}

// Retry requests a read after a failure and resumes the cadence on success.
func (p *Poller) Retry() {
	select {
	case p.retries <- struct{}{}:
	default:
	}
}

// Run executes the polling loop until ctx is cancelled. The loop body is
// serial, so at most one read is ever in flight. Cancellation is silent:
// an in-progress read aborted by ctx does not surface as an error.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			p.mu.Lock()
			p.state = StateIdle
			p.mu.Unlock()
			return
		case <-ticker.C:
			if p.State() != StateErrored {
				p.poll(ctx)
			}
		case <-p.pokes:
			if p.State() != StateErrored {
				p.poll(ctx)
			}
		case <-p.retries:
			p.poll(ctx)
		}
	}
}

// poll performs one read and runs the observation through the reducer.
func (p *Poller) poll(ctx context.Context) {
	teams, err := p.client.ListTeams(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.logger.Warnw("leaderboard poll failed", "error", err)
		p.mu.Lock()
		p.state = StateErrored
		p.mu.Unlock()
		return
	}

	p.mu.Lock()
	next, ev := Observe(p.prevLeader, teams, p.reducedMotion)
	p.prevLeader = next
	p.teams = teams
	p.state = StatePolling
	p.mu.Unlock()

	if ev != nil {
		select {
		case p.events <- *ev:
		default:
			p.logger.Warnw("leader event dropped, consumer too slow", "leader", ev.LeaderName)
		}
	}
}
