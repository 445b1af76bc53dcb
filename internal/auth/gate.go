package auth

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/driverdesk/internal/clock"
	"github.com/dmitrijs2005/driverdesk/internal/common"
	"github.com/dmitrijs2005/driverdesk/internal/cryptox"
	"github.com/dmitrijs2005/driverdesk/internal/logging"
)

const (
	DefaultMaxAttempts  = 3
	DefaultLockDuration = 60 * time.Second
)

type Option func(*Gate)

func WithClock(c clock.Clock) Option { return func(g *Gate) { g.clock = c } }

func WithHasher(h cryptox.Hasher) Option { return func(g *Gate) { g.hasher = h } }

func WithLogger(l logging.Logger) Option { return func(g *Gate) { g.logger = l } }

// WithMaxAttempts sets how many consecutive failures lock the gate.
// Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Gate) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithLockDuration sets how long the gate stays locked. Non-positive values are ignored.
func WithLockDuration(d time.Duration) Option {
	return func(g *Gate) {
		if d > 0 {
			g.lockDuration = d
		}
	}
}

// OnLock registers f to run after the gate locks.
func OnLock(f func(State)) Option { return func(g *Gate) { g.onLock = f } }

// OnUnlock registers f to run after the lock expires.
func OnUnlock(f func()) Option { return func(g *Gate) { g.onUnlock = f } }

// Gate is safe for concurrent use; the unlock timer fires on its own goroutine.
type Gate struct {
	cred         Credential
	hasher       cryptox.Hasher
	clock        clock.Clock
	logger       logging.Logger
	maxAttempts  int
	lockDuration time.Duration
	onLock       func(State)
	onUnlock     func()

	mu    sync.Mutex
	state State
	timer clock.Timer
	// gen identifies the currently armed unlock timer. A callback whose
	// generation is no longer current is stale and does nothing.
	gen uint64
}

func NewGate(cred Credential, opts ...Option) *Gate {
	g := &Gate{
		cred:         cred,
		hasher:       cryptox.SHA256Hasher{},
		clock:        clock.Real{},
		logger:       logging.Nop{},
		maxAttempts:  DefaultMaxAttempts,
		lockDuration: DefaultLockDuration,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Check validates a username/password pair.
//
// While locked it returns Locked without touching the counter. Otherwise a
// match returns Accepted and resets the gate, and a mismatch returns Rejected
// and counts the failure, locking the gate when the threshold is reached.
func (g *Gate) Check(ctx context.Context, username string, password []byte) Outcome {
	g.mu.Lock()

	if g.state.Locked {
		if g.clock.Now().Before(g.state.LockExpiry) {
			g.mu.Unlock()
			g.logger.Warn(ctx, "login attempt while locked", "username", username)
			return Locked
		}
		// The deadline passed but the timer has not run yet.
		g.resetLocked()
	}

	userOK := username == g.cred.Username
	passOK := g.hasher.Verify(password, g.cred.PasswordHash)

	if userOK && passOK {
		g.resetLocked()
		g.mu.Unlock()
		g.logger.Info(ctx, "login accepted", "username", username)
		return Accepted
	}

	g.state.Attempts++
	attempts := g.state.Attempts
	var locked *State
	if attempts >= g.maxAttempts {
		g.lockLocked()
		s := g.state
		locked = &s
	}
	g.mu.Unlock()

	g.logger.Warn(ctx, "login rejected", "username", username, "attempts", attempts)
	if locked != nil {
		g.logger.Warn(ctx, "login locked", "until", locked.LockExpiry)
		if g.onLock != nil {
			g.onLock(*locked)
		}
	}
	return Rejected
}

// Authenticate is Check with the outcome mapped to an error: nil,
// common.ErrUnauthorized or *LockedError.
func (g *Gate) Authenticate(ctx context.Context, username string, password []byte) error {
	switch g.Check(ctx, username, password) {
	case Accepted:
		return nil
	case Locked:
		return &LockedError{Until: g.State().LockExpiry}
	default:
		return common.ErrUnauthorized
	}
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Reset unlocks the gate early and clears the counter. A pending unlock
// timer is cancelled.
func (g *Gate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
}

// Close cancels the pending unlock timer, if any. The state is left as is.
func (g *Gate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cancelTimerLocked()
}

func (g *Gate) lockLocked() {
	g.cancelTimerLocked()
	g.state.Locked = true
	g.state.LockExpiry = g.clock.Now().Add(g.lockDuration)

	gen := g.gen
	g.timer = g.clock.AfterFunc(g.lockDuration, func() { g.expire(gen) })
}

func (g *Gate) expire(gen uint64) {
	g.mu.Lock()
	if gen != g.gen || !g.state.Locked {
		g.mu.Unlock()
		return
	}
	g.timer = nil
	g.gen++
	g.state = State{}
	g.mu.Unlock()

	g.logger.Info(context.Background(), "login unlocked")
	if g.onUnlock != nil {
		g.onUnlock()
	}
}

func (g *Gate) resetLocked() {
	g.cancelTimerLocked()
	g.state = State{}
}

func (g *Gate) cancelTimerLocked() {
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.gen++
}
