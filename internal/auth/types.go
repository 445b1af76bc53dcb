package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/driverdesk/internal/common"
)

// Outcome is the result of a single Gate.Check call.
type Outcome int

const (
	Rejected Outcome = iota
	Accepted
	Locked
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Locked:
		return "locked"
	default:
		return "rejected"
	}
}

// Credential is the one account allowed through the gate.
type Credential struct {
	Username     string
	PasswordHash string
}

// State is a snapshot of the attempt counter and lock.
// LockExpiry is zero while the gate is unlocked.
type State struct {
	Attempts   int
	Locked     bool
	LockExpiry time.Time
}

// LockedError is returned by Authenticate while the gate is locked.
type LockedError struct {
	Until time.Time
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("too many failed login attempts, locked until %s", e.Until.Format(time.TimeOnly))
}

func (e *LockedError) Is(target error) bool {
	return target == common.ErrLocked
}
