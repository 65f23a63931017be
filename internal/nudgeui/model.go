package nudgeui

import (
	"io"
	"log"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	"github.com/wesen/nudgebud/internal/pages"
	"github.com/wesen/nudgebud/internal/tokens"
	"github.com/wesen/nudgebud/pkg/flowlayout"
)

// Options configures a preview session.
type Options struct {
	Theme     tokens.Theme
	Spacing   flowlayout.Spacing
	Padding   int // horizontal screen inset in cells
	PickLimit int
	StartPage int
	Logger    *log.Logger // nil discards
}

// Model is the main application state.
type Model struct {
	Width, Height  int
	MouseX, MouseY int

	Pages []pages.Page
	Page  int
	Focus int // focused chip on the current page, -1 for none

	Wireframe bool
	Status    string
	StatusErr bool

	// Add-chip modal state
	AddOpen  bool
	AddInput textinput.Model

	theme   tokens.Theme
	styles  styles
	spacing flowlayout.Spacing
	padding int
	keys    keyMap
	help    help.Model
	log     *log.Logger
}

// NewModel creates the preview positioned on opts.StartPage.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if opts.Theme.Tokens == (tokens.Tokens{}) {
		opts.Theme.Tokens = tokens.Default()
	}

	m := Model{
		Pages:   pages.All(opts.PickLimit),
		theme:   opts.Theme,
		spacing: opts.Spacing,
		padding: max(opts.Padding, 0),
		keys:    defaultKeyMap(),
		help:    help.New(),
		log:     logger,
	}
	m.styles = newStyles(m.theme)
	m.help.Styles = m.styles.help
	m = m.goToPage(opts.StartPage)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Theme returns the active theme.
func (m Model) Theme() tokens.Theme {
	return m.theme
}

func (m Model) page() pages.Page {
	return m.Pages[m.Page]
}

// goToPage clamps i to the page range and focuses the first chip.
func (m Model) goToPage(i int) Model {
	m.Page = min(max(i, 0), len(m.Pages)-1)
	m.Focus = -1
	if g := m.page().Chips; g != nil && g.Len() > 0 {
		m.Focus = 0
	}
	return m
}

func (m Model) setTheme(th tokens.Theme) Model {
	m.theme = th
	m.styles = newStyles(th)
	m.help.Styles = m.styles.help
	return m
}

func (m Model) info(msg string) Model {
	m.Status, m.StatusErr = msg, false
	return m
}

func (m Model) fail(err error) Model {
	m.Status, m.StatusErr = err.Error(), true
	m.log.Printf("page=%s error=%q", m.page().ID, err)
	return m
}
