// Package ui provides ephemeral notifications for the terminal browser.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prism-vault/prism/color"
	"github.com/prism-vault/prism/icon"
	"github.com/prism-vault/prism/notify"
	"github.com/prism-vault/prism/style"
)

// Lifetime is how long a notification stays on screen.
const Lifetime = 3 * time.Second

// Notification is the message a Notifier delivers to the program.
type Notification struct {
	Kind notify.Kind
	Text string
}

// Notifier queues engine notifications for the program. It never blocks;
// notifications arriving while the queue is full are dropped.
type Notifier struct {
	queue chan Notification
}

func NewNotifier() *Notifier {
	return &Notifier{queue: make(chan Notification, 16)}
}

func (n *Notifier) Notify(kind notify.Kind, message string) {
	select {
	case n.queue <- Notification{Kind: kind, Text: message}:
	default:
	}
}

// Wait returns a command delivering the next queued notification.
func (n *Notifier) Wait() tea.Cmd {
	return func() tea.Msg {
		return <-n.queue
	}
}

// ClearNotificationMsg resets the notification shown at At.
type ClearNotificationMsg struct {
	At time.Time
}

// ClearNotification clears the notification shown at at once its lifetime has passed.
func ClearNotification(at time.Time) tea.Cmd {
	return tea.Tick(Lifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{At: at}
	})
}

// Model holds the notification currently on screen.
type Model struct {
	notification *Notification
	notifiedAt   time.Time
}

// Update processes incoming messages to modify the notification state.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Notification:
		m.notification = &msg
		m.notifiedAt = time.Now()
		return ClearNotification(m.notifiedAt)
	case ClearNotificationMsg:
		if msg.At.Equal(m.notifiedAt) {
			m.notification = nil
		}
	}
	return nil
}

// View appends the current notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == nil {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] += "  " + render(*m.notification)
	return strings.Join(lines, "\n")
}

func render(n Notification) string {
	switch n.Kind {
	case notify.Success:
		return style.Fg(color.Green)(icon.Get(icon.Success) + " " + n.Text)
	case notify.Warning:
		return style.Fg(color.Yellow)(icon.Get(icon.Warn) + " " + n.Text)
	case notify.Failure:
		return style.Fg(color.Red)(icon.Get(icon.Fail) + " " + n.Text)
	default:
		return style.Faint(n.Text)
	}
}
