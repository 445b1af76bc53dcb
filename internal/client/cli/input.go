package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/dmitrijs2005/driverdesk/internal/common"
	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for golang.org/x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

type inputResult struct {
	data []byte
	err  error
}

// Input serializes reads from the user. A single goroutine performs the
// blocking reads on request, so a masked password read never competes with a
// line read, and callers can give up on a read when the session context ends.
//
// onLine runs after every successful read and is how input activity reaches
// the inactivity monitor.
type Input struct {
	r      *bufio.Reader
	fd     int
	onLine func()

	reqs  chan bool
	resps chan inputResult
	done  chan struct{}
	start sync.Once
	stop  sync.Once
}

// NewInput reads from r. When r is a terminal, password reads are masked.
func NewInput(r io.Reader, onLine func()) *Input {
	in := &Input{
		r:      bufio.NewReader(r),
		fd:     -1,
		onLine: onLine,
		reqs:   make(chan bool),
		resps:  make(chan inputResult, 1),
		done:   make(chan struct{}),
	}
	if f, ok := r.(*os.File); ok && isTerminal(int(f.Fd())) {
		in.fd = int(f.Fd())
	}
	return in
}

// Masked reports whether password reads are hidden.
func (in *Input) Masked() bool { return in.fd >= 0 }

// Close stops the reader goroutine once its current read returns.
func (in *Input) Close() {
	in.stop.Do(func() { close(in.done) })
}

func (in *Input) loop() {
	for {
		select {
		case masked := <-in.reqs:
			in.resps <- in.readOnce(masked)
		case <-in.done:
			return
		}
	}
}

func (in *Input) readOnce(masked bool) inputResult {
	if masked && in.fd >= 0 {
		pw, err := readPassword(in.fd)
		return inputResult{data: pw, err: err}
	}
	line, err := in.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return inputResult{err: err}
	}
	return inputResult{data: []byte(strings.TrimRight(line, "\r\n"))}
}

func (in *Input) read(ctx context.Context, masked bool) ([]byte, error) {
	in.start.Do(func() { go in.loop() })

	select {
	case in.reqs <- masked:
	case <-ctx.Done():
		return nil, common.ErrSessionClosed
	case <-in.done:
		return nil, io.EOF
	}

	select {
	case res := <-in.resps:
		if res.err != nil {
			return nil, res.err
		}
		if in.onLine != nil {
			in.onLine()
		}
		return res.data, nil
	case <-ctx.Done():
		return nil, common.ErrSessionClosed
	case <-in.done:
		return nil, io.EOF
	}
}

// ReadLine reads one line with surrounding whitespace trimmed. If EOF occurs
// after some input was read, the partial line is returned.
func (in *Input) ReadLine(ctx context.Context) (string, error) {
	b, err := in.read(ctx, false)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// ReadSecret reads a password, without echo on a terminal.
// The caller should wipe the result.
func (in *Input) ReadSecret(ctx context.Context) ([]byte, error) {
	return in.read(ctx, true)
}

// GetSimpleText prints a prompt to w and reads a single line from in.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(ctx context.Context, in *Input, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return in.ReadLine(ctx)
}

// GetPassword prints a password prompt to w and reads a password. On a
// terminal the input is not echoed and a newline is printed after the read
// to keep the UI tidy.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(ctx context.Context, in *Input, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := in.ReadSecret(ctx)
	if in.Masked() {
		fmt.Fprintln(w)
	}
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetOptional is GetSimpleText with the current value shown; an empty answer
// keeps it.
func GetOptional(ctx context.Context, in *Input, prompt, current string, w io.Writer) (string, error) {
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, current)
	}
	v, err := GetSimpleText(ctx, in, prompt, w)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// syncWriter lets timer callbacks print while the main loop prompts.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
