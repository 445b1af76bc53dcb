package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) NewDriver(ctx context.Context) error {
	f.calls = append(f.calls, "newdriver")
	return nil
}
func (f *fakeExec) AddLicense(ctx context.Context, id string) error {
	f.calls = append(f.calls, "addlicense:"+id)
	return nil
}
func (f *fakeExec) Show(ctx context.Context, id string) error {
	f.calls = append(f.calls, "show:"+id)
	return nil
}
func (f *fakeExec) List(ctx context.Context) error {
	f.calls = append(f.calls, "list")
	return nil
}

func TestRunREPL_Commands(t *testing.T) {
	var printed []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		printed = append(printed, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	in := NewInput(strings.NewReader(strings.Join([]string{
		"help",
		"newdriver",
		"",
		"addlicense",
		"addlicense 42",
		"show",
		"show 42",
		"l",
		"list",
		"foobar",
		"exit",
		"list",
	}, "\n")), nil)
	defer in.Close()

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(inspector)" }, in)

	assert.Equal(t, []string{"newdriver", "addlicense:", "addlicense:42", "show:42", "list", "list"}, exec.calls)
	assert.Contains(t, printed, "Usage: show <id>")
	assert.Contains(t, printed, "Unknown command: foobar")
	assert.Contains(t, printed, "Bye!")
	assert.Contains(t, printed, "dd (inspector)>")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	silenceREPL(t)

	in := NewInput(strings.NewReader("list"), nil)
	defer in.Close()

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, in)

	assert.Equal(t, []string{"list"}, exec.calls)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	silenceREPL(t)

	in := NewInput(strings.NewReader("list\nlist\n"), nil)
	defer in.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, in)

	assert.Empty(t, exec.calls)
}
