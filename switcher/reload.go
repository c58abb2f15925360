package switcher

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/prism-vault/prism/notify"
	"github.com/prism-vault/prism/open"
)

// Reloader asks the host to reload so already rendered widgets pick up the
// new theme.
type Reloader interface {
	Reload(ctx context.Context) error
}

// ReloadFunc adapts a function to Reloader.
type ReloadFunc func(ctx context.Context) error

func (f ReloadFunc) Reload(ctx context.Context) error { return f(ctx) }

// CommandReloader runs a shell-style command line.
type CommandReloader struct {
	Command string
}

func (c CommandReloader) Reload(ctx context.Context) error {
	args, err := shellquote.Split(c.Command)
	if err != nil {
		return fmt.Errorf("reload command: %w", err)
	}
	if len(args) == 0 {
		return errors.New("reload command is empty")
	}

	out, err := exec.CommandContext(ctx, args[0], args[1:]...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("reload command: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// URIReloader opens a URI, for example an advanced-uri link running the
// host's reload command.
type URIReloader struct {
	URI string
}

func (u URIReloader) Reload(ctx context.Context) error {
	return open.Start(ctx, u.URI)
}

// ReminderReloader only tells the user to reload.
type ReminderReloader struct {
	Notifier notify.Notifier
}

func (r ReminderReloader) Reload(context.Context) error {
	r.Notifier.Notify(notify.Info, "Reload the vault to apply the theme everywhere")
	return nil
}

// NewReloader picks a reloader for a configured value: nothing means a
// reminder, anything with a scheme is opened as a URI, the rest is run as a command.
func NewReloader(configured string, notifier notify.Notifier) Reloader {
	configured = strings.TrimSpace(configured)
	switch {
	case configured == "":
		return ReminderReloader{Notifier: notifier}
	case strings.Contains(configured, "://"):
		return URIReloader{URI: configured}
	default:
		return CommandReloader{Command: configured}
	}
}
