package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubInputs replaces the prompt seams with scripted answers. before runs
// ahead of the i-th password read.
func stubInputs(t *testing.T, users, passwords []string, before func(i int)) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	u, p := 0, 0
	getSimpleText = func(_ context.Context, _ *Input, _ string, _ io.Writer) (string, error) {
		if u >= len(users) {
			return "", io.EOF
		}
		u++
		return users[u-1], nil
	}
	getPassword = func(_ context.Context, _ *Input, _ io.Writer) ([]byte, error) {
		if p >= len(passwords) {
			return nil, io.EOF
		}
		if before != nil {
			before(p)
		}
		p++
		return []byte(passwords[p-1]), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func TestLogin_Success(t *testing.T) {
	a, _, out := newTestApp(t, strings.NewReader(""))
	stubInputs(t, []string{"inspector"}, []string{"secret"}, nil)

	require.NoError(t, a.Login(bg))
	assert.Equal(t, "inspector", a.userName)
	assert.Contains(t, out.String(), "Welcome, inspector!")
	assert.Equal(t, "(inspector)", a.getStatus())
}

func TestLogin_WrongThenRight(t *testing.T) {
	a, _, out := newTestApp(t, strings.NewReader(""))
	stubInputs(t, []string{"inspector", "someone", "inspector"}, []string{"nope", "secret", "secret"}, nil)

	require.NoError(t, a.Login(bg))
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid login or password."))
	assert.Zero(t, a.gate.State().Attempts)
}

func TestLogin_LockoutAndTimedUnlock(t *testing.T) {
	a, fake, out := newTestApp(t, strings.NewReader(""))
	users := []string{"inspector", "inspector", "inspector", "inspector", "inspector"}
	passwords := []string{"x", "x", "x", "secret", "secret"}
	stubInputs(t, users, passwords, func(i int) {
		if i == 4 {
			fake.Advance(60 * time.Second)
		}
	})

	require.NoError(t, a.Login(bg))

	got := out.String()
	assert.Equal(t, 3, strings.Count(got, "Invalid login or password."))
	assert.Contains(t, got, "Too many failed attempts. Login is blocked for 1m0s.")
	assert.Contains(t, got, "Login is blocked. Try again in 1m0s.")
	assert.Contains(t, got, "Login is available again.")
	assert.Contains(t, got, "Welcome, inspector!")

	assert.Less(t, strings.Index(got, "Try again in"), strings.Index(got, "Login is available again."))
	assert.False(t, a.gate.State().Locked)
}

func TestLogin_InputErrorEndsLoop(t *testing.T) {
	a, _, _ := newTestApp(t, strings.NewReader(""))
	stubInputs(t, []string{"inspector"}, nil, nil)

	assert.ErrorIs(t, a.Login(bg), io.EOF)
	assert.Empty(t, a.userName)
}
