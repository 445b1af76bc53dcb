// Package session ends an interactive session after a period without input.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/driverdesk/internal/clock"
	"github.com/dmitrijs2005/driverdesk/internal/logging"
)

const DefaultInactivityTimeout = 60 * time.Second

// Monitor fires onTimeout once when no input has been observed for a full
// period. Every Touch restarts the period.
type Monitor struct {
	clock     clock.Clock
	period    time.Duration
	onTimeout func()
	logger    logging.Logger

	mu       sync.Mutex
	last     time.Time
	timer    clock.Timer
	gen      uint64
	running  bool
	expired  bool
	done     chan struct{}
	doneOnce sync.Once
}

// NewMonitor returns a stopped Monitor. A non-positive period means
// DefaultInactivityTimeout; a nil logger discards output.
func NewMonitor(c clock.Clock, period time.Duration, onTimeout func(), logger logging.Logger) *Monitor {
	if period <= 0 {
		period = DefaultInactivityTimeout
	}
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Monitor{
		clock:     c,
		period:    period,
		onTimeout: onTimeout,
		logger:    logger,
		done:      make(chan struct{}),
	}
}

// Start arms the timer. Calling Start on a running or expired monitor does nothing.
func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running || m.expired {
		return
	}
	m.running = true
	m.rearmLocked()
}

// Touch records an input event and postpones the timeout by a full period.
func (m *Monitor) Touch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return
	}
	m.rearmLocked()
}

// Stop cancels the pending timeout. Stopping twice is a no-op.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running = false
	m.cancelLocked()
}

// Idle returns the time elapsed since the last observed input, or since Start.
func (m *Monitor) Idle() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.last.IsZero() {
		return 0
	}
	return m.clock.Now().Sub(m.last)
}

// Done is closed after the timeout fired.
func (m *Monitor) Done() <-chan struct{} {
	return m.done
}

func (m *Monitor) rearmLocked() {
	m.cancelLocked()
	m.last = m.clock.Now()
	gen := m.gen
	m.timer = m.clock.AfterFunc(m.period, func() { m.fire(gen) })
}

func (m *Monitor) cancelLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.gen++
}

func (m *Monitor) fire(gen uint64) {
	m.mu.Lock()
	if gen != m.gen || !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	m.expired = true
	m.timer = nil
	m.mu.Unlock()

	m.logger.Warn(context.Background(), "session closed due to inactivity", "period", m.period)
	m.doneOnce.Do(func() { close(m.done) })
	if m.onTimeout != nil {
		m.onTimeout()
	}
}
