// Package reply prints service replies on a terminal, turning IRC bold into lipgloss bold.
package reply

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/nickserv-gender/internal/domain"
	"github.com/bnema/nickserv-gender/internal/ports"
)

const ircBold = "\x02"

// ircControls lists the formatting codes other than bold that are dropped on output.
var ircControls = strings.NewReplacer("\x1d", "", "\x1f", "", "\x16", "", "\x0f", "")

type Terminal struct {
	mu     sync.Mutex
	w      io.Writer
	bold   lipgloss.Style
	fail   lipgloss.Style
	failed bool
}

var _ ports.Replier = (*Terminal)(nil)

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{
		w:    w,
		bold: lipgloss.NewStyle().Bold(true),
		fail: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

func (t *Terminal) Success(_ context.Context, format string, args ...any) {
	t.print(t.render(fmt.Sprintf(format, args...)))
}

func (t *Terminal) Fail(_ context.Context, _ domain.Fault, format string, args ...any) {
	t.mu.Lock()
	t.failed = true
	t.mu.Unlock()

	t.print(t.fail.Render(t.render(fmt.Sprintf(format, args...))))
}

// Failed reports whether any reply was a failure.
func (t *Terminal) Failed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.failed
}

func (t *Terminal) print(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, _ = fmt.Fprintln(t.w, line)
}

// render styles every \x02-delimited span; an unterminated span runs to the end of the line.
func (t *Terminal) render(text string) string {
	text = ircControls.Replace(text)
	if !strings.Contains(text, ircBold) {
		return text
	}

	var b strings.Builder
	for i, part := range strings.Split(text, ircBold) {
		if part == "" {
			continue
		}
		if i%2 == 1 {
			b.WriteString(t.bold.Render(part))
			continue
		}
		b.WriteString(part)
	}

	return b.String()
}
