package session

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/driverdesk/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func newTestMonitor(t *testing.T) (*Monitor, *clock.Fake, *int) {
	t.Helper()
	fc := clock.NewFake(epoch)
	fired := 0
	m := NewMonitor(fc, time.Minute, func() { fired++ }, nil)
	return m, fc, &fired
}

func isDone(m *Monitor) bool {
	select {
	case <-m.Done():
		return true
	default:
		return false
	}
}

func TestMonitor_FiresAfterPeriod(t *testing.T) {
	m, fc, fired := newTestMonitor(t)
	m.Start()

	fc.Advance(59 * time.Second)
	require.Equal(t, 0, *fired)
	require.False(t, isDone(m))

	fc.Advance(time.Second)
	assert.Equal(t, 1, *fired)
	assert.True(t, isDone(m))
}

func TestMonitor_TouchPostponesByFullPeriod(t *testing.T) {
	m, fc, fired := newTestMonitor(t)
	m.Start()

	fc.Advance(50 * time.Second)
	m.Touch()
	assert.Equal(t, time.Duration(0), m.Idle())

	fc.Advance(59 * time.Second)
	assert.Equal(t, 0, *fired, "stale timer from before Touch must not fire")
	assert.Equal(t, 59*time.Second, m.Idle())

	fc.Advance(time.Second)
	assert.Equal(t, 1, *fired)
}

func TestMonitor_FiresOnce(t *testing.T) {
	m, fc, fired := newTestMonitor(t)
	m.Start()
	fc.Advance(time.Minute)

	m.Touch()
	m.Start()
	fc.Advance(10 * time.Minute)

	assert.Equal(t, 1, *fired)
	assert.Equal(t, 0, fc.Pending())
}

func TestMonitor_StopCancels(t *testing.T) {
	m, fc, fired := newTestMonitor(t)
	m.Start()
	m.Stop()
	m.Stop()
	m.Touch()

	fc.Advance(time.Hour)
	assert.Equal(t, 0, *fired)
	assert.False(t, isDone(m))
}

func TestMonitor_TouchBeforeStartIgnored(t *testing.T) {
	m, fc, _ := newTestMonitor(t)
	m.Touch()
	assert.Equal(t, 0, fc.Pending())
	assert.Equal(t, time.Duration(0), m.Idle())
}

func TestNewMonitor_DefaultPeriod(t *testing.T) {
	m := NewMonitor(clock.NewFake(epoch), 0, nil, nil)
	assert.Equal(t, DefaultInactivityTimeout, m.period)
}
