package terminal

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ehrlich-b/wtedit/internal/keymap"
)

// TeaBackend implements Terminal on top of a bubbletea program running
// with its own renderer disabled (tea.WithoutRenderer). bubbletea
// keeps doing what it's good at — raw mode, the alternate screen, and
// decoding the platform's native key escape sequences into tea.KeyMsg
// — while the editor's own compositor (internal/render) owns every
// byte written to the screen, the same division of labor the teacher
// gets implicitly by letting tea.Program own Update/View but not
// caring what View returns.
type TeaBackend struct {
	program *tea.Program
	out     io.Writer
	keys    chan keymap.Key
	done    chan struct{}

	rows atomic.Int64
	cols atomic.Int64

	pending   keymap.Key
	hasPending bool
}

// NewTeaBackend returns a backend that hasn't started its bubbletea
// program yet; call Init to do that. Screen bytes are written to
// os.Stdout directly, the same output bubbletea's own (disabled)
// renderer would otherwise own.
func NewTeaBackend() *TeaBackend {
	return &TeaBackend{
		out:  os.Stdout,
		keys: make(chan keymap.Key, 64),
		done: make(chan struct{}),
	}
}

type teaModel struct{ b *TeaBackend }

func (m teaModel) Init() tea.Cmd { return nil }

func (m teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.KeyMsg:
		m.b.keys <- convertKey(v)
	case tea.WindowSizeMsg:
		m.b.rows.Store(int64(v.Height))
		m.b.cols.Store(int64(v.Width))
		m.b.keys <- keymap.Resize(v.Height, v.Width)
	}
	return m, nil
}

func (m teaModel) View() string { return "" }

// Init starts the underlying bubbletea program and waits up to two
// seconds for the first WindowSizeMsg to establish the terminal's size.
func (b *TeaBackend) Init() error {
	b.program = tea.NewProgram(teaModel{b: b}, tea.WithAltScreen(), tea.WithoutRenderer(), tea.WithOutput(b.out))
	go func() {
		defer close(b.done)
		b.program.Run()
	}()

	deadline := time.Now().Add(2 * time.Second)
	for b.rows.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	return nil
}

// Deinit stops the bubbletea program, which restores raw mode and
// leaves the alternate screen unconditionally, the same guarantee the
// teacher gets from tea.Program.Run returning.
func (b *TeaBackend) Deinit() error {
	if b.program == nil {
		return nil
	}
	b.program.Quit()
	<-b.done
	return nil
}

// Poll and ReadKey are called from the same goroutine (the editor's
// main loop), so a single pending-key slot is enough to split "is a
// key available" from "consume it" without a second channel.
func (b *TeaBackend) Poll(timeout time.Duration) bool {
	if b.hasPending {
		return true
	}
	select {
	case k := <-b.keys:
		b.pending, b.hasPending = k, true
		return true
	case <-time.After(timeout):
		return false
	}
}

func (b *TeaBackend) ReadKey() (keymap.Key, error) {
	if b.hasPending {
		b.hasPending = false
		return b.pending, nil
	}
	return <-b.keys, nil
}

func (b *TeaBackend) Write(data []byte) error {
	_, err := b.out.Write(data)
	return err
}

func (b *TeaBackend) Size() (rows, cols int) {
	return int(b.rows.Load()), int(b.cols.Load())
}

func (b *TeaBackend) ClearScreen() error       { return b.Write([]byte("\x1b[2J")) }
func (b *TeaBackend) MoveCursor(row, col int) error {
	return b.Write([]byte(fmt.Sprintf("\x1b[%d;%dH", row+1, col+1)))
}
func (b *TeaBackend) HideCursor() error        { return b.Write([]byte("\x1b[?25l")) }
func (b *TeaBackend) ShowCursor() error        { return b.Write([]byte("\x1b[?25h")) }
func (b *TeaBackend) ClearToEndOfLine() error  { return b.Write([]byte("\x1b[K")) }

func (b *TeaBackend) SetForeground(code string) error {
	return b.Write([]byte(fmt.Sprintf("\x1b[38;5;%sm", code)))
}

func (b *TeaBackend) SetBackground(code string) error {
	return b.Write([]byte(fmt.Sprintf("\x1b[48;5;%sm", code)))
}

func (b *TeaBackend) ResetColor() error { return b.Write([]byte("\x1b[0m")) }
