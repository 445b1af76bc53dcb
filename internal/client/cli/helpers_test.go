package cli

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/driverdesk/internal/client/config"
	"github.com/dmitrijs2005/driverdesk/internal/clock"
	"github.com/dmitrijs2005/driverdesk/internal/cryptox"
	"github.com/stretchr/testify/require"
)

// safeBuffer is written by timer callbacks and read by the test.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	h, err := cryptox.SHA256Hasher{}.Hash([]byte("secret"))
	require.NoError(t, err)
	cfg.PasswordHash = h
	return cfg
}

func newTestApp(t *testing.T, input io.Reader) (*App, *clock.Fake, *safeBuffer) {
	t.Helper()
	fake := clock.NewFake(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	out := &safeBuffer{}
	a, err := newApp(testConfig(t), nil, fake, input, out)
	require.NoError(t, err)
	t.Cleanup(func() {
		a.in.Close()
		a.gate.Close()
	})
	return a, fake, out
}

func lines(ls ...string) io.Reader {
	return strings.NewReader(strings.Join(ls, "\n") + "\n")
}

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "photo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
	return path
}

func silenceREPL(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

var bg = context.Background()
