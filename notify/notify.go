// Package notify delivers short user-facing messages about fallbacks and failures.
package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/prism-vault/prism/color"
	"github.com/prism-vault/prism/icon"
	"github.com/prism-vault/prism/key"
	"github.com/prism-vault/prism/log"
	"github.com/prism-vault/prism/style"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// Kind classifies a notification.
type Kind int

const (
	Info Kind = iota
	Success
	Warning
	Failure
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Failure:
		return "failure"
	default:
		return "info"
	}
}

// Notifier is told about things the user should know. Implementations must
// not block and never report delivery errors.
type Notifier interface {
	Notify(kind Kind, message string)
}

// Func adapts a function to Notifier.
type Func func(kind Kind, message string)

func (f Func) Notify(kind Kind, message string) { f(kind, message) }

// Discard drops every notification.
var Discard Notifier = Func(func(Kind, string) {})

// Log forwards notifications to the log.
type Log struct{}

func (Log) Notify(kind Kind, message string) {
	entry := log.WithFields(log.Fields{"notification": kind.String()})
	switch kind {
	case Failure:
		entry.Error(message)
	case Warning:
		entry.Warn(message)
	default:
		entry.Info(message)
	}
}

// Terminal prints notifications, one per line, with an icon.
// Styling is applied only when Out is a terminal.
type Terminal struct {
	Out io.Writer

	mu sync.Mutex
}

// NewTerminal returns a terminal notifier writing to stderr.
func NewTerminal() *Terminal {
	return &Terminal{Out: os.Stderr}
}

func (t *Terminal) Notify(kind Kind, message string) {
	if !viper.GetBool(key.NotifyEnable) {
		return
	}

	line := t.render(kind, message)

	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintln(t.Out, line)
}

func (t *Terminal) render(kind Kind, message string) string {
	var (
		i     icon.Icon
		paint func(string) string
	)
	switch kind {
	case Success:
		i, paint = icon.Success, style.Fg(color.Green)
	case Warning:
		i, paint = icon.Warn, style.Fg(color.Yellow)
	case Failure:
		i, paint = icon.Fail, style.Fg(color.Red)
	default:
		i, paint = icon.Theme, style.Fg(color.Purple)
	}

	prefix := icon.Get(i)
	if isTerminal(t.Out) && viper.GetBool(key.CliColored) {
		prefix = paint(prefix)
	}
	if prefix == "" {
		return message
	}
	return prefix + " " + message
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Multi delivers every notification to each notifier in order.
type Multi []Notifier

func (m Multi) Notify(kind Kind, message string) {
	for _, n := range m {
		n.Notify(kind, message)
	}
}
