package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/prism-vault/prism/color"
	"github.com/prism-vault/prism/engine"
	"github.com/prism-vault/prism/internal/ui"
	"github.com/prism-vault/prism/settings"
	"github.com/prism-vault/prism/theme"
	"github.com/prism-vault/prism/util"
)

// previewWidth is the width of the swatch pane next to the lists.
const previewWidth = 36

// statefulBubble is the browser model.
type statefulBubble struct {
	state         state
	statesHistory []state
	busy          bool

	keymap *statefulKeymap

	spinnerC spinner.Model
	themesC  list.Model
	schemesC list.Model
	helpC    help.Model

	engine        *engine.Engine
	notifications *ui.Notifier
	notifier      *ui.Model

	selection  settings.Selection
	shouldSync bool

	preview    *theme.Resolved
	previewKey string

	progressStatus string
	lastError      error

	width, height int
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering the current state unless it is transient.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if b.state != loadingState {
		b.statesHistory = append(b.statesHistory, b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if n := len(b.statesHistory); n > 0 {
		b.setState(b.statesHistory[n-1])
		b.statesHistory = b.statesHistory[:n-1]
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx - previewWidth
	listHeight := height - yy

	b.themesC.SetSize(listWidth, listHeight)
	b.themesC.Help.Width = listWidth

	b.schemesC.SetSize(listWidth, listHeight)
	b.schemesC.Help.Width = listWidth

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func newBubble(e *engine.Engine, notifications *ui.Notifier, options *Options) *statefulBubble {
	bubble := statefulBubble{
		keymap:        newStatefulKeymap(),
		engine:        e,
		notifications: notifications,
		notifier:      &ui.Model{},
		shouldSync:    options.Sync,
	}

	makeList := func(title string, description bool, titleColor lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.ShowDescription = description
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(color.HiPurple).
			Foreground(color.HiPurple).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(color.White)
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = lipgloss.NewStyle().Foreground(color.Black).Background(titleColor).Padding(0, 1)
		listC.Styles.NoItems = paddingStyle
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetShowPagination(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(color.HiPurple)

	bubble.themesC = makeList("Themes", true, color.HiPurple)
	bubble.themesC.SetStatusBarItemName("theme", "themes")

	bubble.schemesC = makeList("Color Overrides", false, color.HiYellow)
	bubble.schemesC.SetStatusBarItemName("override", "overrides")

	bubble.setState(loadingState)
	bubble.resize(util.TerminalWidth(80), 24)

	return &bubble
}
