package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/driverdesk/internal/auth"
	"github.com/dmitrijs2005/driverdesk/internal/client/config"
	"github.com/dmitrijs2005/driverdesk/internal/client/services"
	"github.com/dmitrijs2005/driverdesk/internal/clock"
	"github.com/dmitrijs2005/driverdesk/internal/common"
	"github.com/dmitrijs2005/driverdesk/internal/cryptox"
	"github.com/dmitrijs2005/driverdesk/internal/drivers"
	"github.com/dmitrijs2005/driverdesk/internal/logging"
	"github.com/dmitrijs2005/driverdesk/internal/photo"
	"github.com/dmitrijs2005/driverdesk/internal/session"
	"github.com/dmitrijs2005/driverdesk/internal/validation"
)

type App struct {
	config   *config.Config
	gate     *auth.Gate
	monitor  *session.Monitor
	registry services.RegistryService
	clock    clock.Clock
	inspect  photo.Inspector
	logger   logging.Logger
	in       *Input
	out      io.Writer
	userName string
}

// NewApp wires the gate, the inactivity monitor and the registry for an
// interactive session on stdin/stdout.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	return newApp(c, logger, clock.Real{}, os.Stdin, os.Stdout)
}

func newApp(c *config.Config, logger logging.Logger, clk clock.Clock, r io.Reader, w io.Writer) (*App, error) {
	if logger == nil {
		logger = logging.Nop{}
	}

	hasher, err := cryptox.NewHasher(c.HashAlgorithm)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:   c,
		registry: services.NewRegistryService(drivers.NewMemoryStore(), validation.New(c.RequireCities), logger),
		clock:    clk,
		inspect:  photo.Inspect,
		logger:   logger,
		out:      &syncWriter{w: w},
	}

	a.gate = auth.NewGate(
		auth.Credential{Username: c.Username, PasswordHash: c.PasswordHash},
		auth.WithClock(clk),
		auth.WithHasher(hasher),
		auth.WithLogger(logger),
		auth.WithMaxAttempts(c.MaxAttempts),
		auth.WithLockDuration(c.LockDuration),
		auth.OnLock(a.onLock),
		auth.OnUnlock(a.onUnlock),
	)
	a.monitor = session.NewMonitor(clk, c.InactivityTimeout, nil, logger)
	a.in = NewInput(r, a.monitor.Touch)

	return a, nil
}

func (a *App) onLock(_ auth.State) {
	fmt.Fprintf(a.out, "\nToo many failed attempts. Login is blocked for %s.\n",
		a.config.LockDuration.Round(time.Second))
}

func (a *App) onUnlock() {
	fmt.Fprintln(a.out, "\nLogin is available again.")
}

// Run starts the inactivity monitor, asks for credentials until the gate
// accepts them and then serves commands. It returns nil when the user exits
// or input ends, and common.ErrSessionClosed when the session timed out.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.gate.Close()
	defer a.in.Close()

	a.monitor.Start()
	defer a.monitor.Stop()

	go func() {
		select {
		case <-a.monitor.Done():
			fmt.Fprintln(a.out, "\nSession closed due to inactivity.")
			cancel()
		case <-ctx.Done():
		}
	}()

	fmt.Fprintln(a.out, "Welcome to DriverDesk (type 'help' for commands)")

	err := a.Login(ctx)
	if err == nil {
		runREPL(ctx, a, a.getStatus, a.in)
	}

	select {
	case <-a.monitor.Done():
		return common.ErrSessionClosed
	default:
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// report prints a command failure the way the user should see it and logs
// anything unexpected.
func (a *App) report(ctx context.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		for _, m := range verrs.Messages() {
			fmt.Fprintln(a.out, " -", m)
		}
	case errors.Is(err, common.ErrNotFound):
		fmt.Fprintln(a.out, "Driver not found.")
	case errors.Is(err, common.ErrSessionClosed), errors.Is(err, io.EOF):
	default:
		a.logger.Error(ctx, "command failed", "error", err)
		fmt.Fprintln(a.out, "Error:", err)
	}
}
