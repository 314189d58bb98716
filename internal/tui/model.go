package tui

import (
	"math/rand/v2"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/ideaslot/internal/idea"
	"github.com/alexisbeaulieu97/ideaslot/internal/links"
	"github.com/alexisbeaulieu97/ideaslot/internal/logger"
	"github.com/alexisbeaulieu97/ideaslot/internal/theme"
	"github.com/alexisbeaulieu97/ideaslot/internal/tui/confetti"
)

// Options wires the model to its collaborators.
type Options struct {
	Generator    *idea.Generator
	Theme        *theme.Manager
	Presentation *Presentation
	Opener       links.Opener
	Clipboard    func(string) error
	Rand         confetti.Rand
	SupportURL   string
	ProfileURL   string
	Confetti     bool
	Logger       *logger.Logger
	Now          func() time.Time
}

// Model is the Bubble Tea view-model of one session.
type Model struct {
	gen   *idea.Generator
	theme *theme.Manager
	pres  *Presentation
	log   *logger.Logger

	opener     links.Opener
	clipboard  func(string) error
	rand       confetti.Rand
	supportURL string
	profileURL string
	now        func() time.Time

	keys keyMap
	help help.Model

	// Celebration rendering.
	confettiEnabled bool
	field           *confetti.Field
	celebratedAt    time.Time

	// Transient status line.
	status      string
	statusIsErr bool
	statusID    int

	showAbout bool
	quitting  bool

	width  int
	height int
}

// NewModel creates a Model. Generator and Theme are required.
func NewModel(opts Options) Model {
	if opts.Presentation == nil {
		opts.Presentation = NewPresentation()
	}
	if opts.Opener == nil {
		opts.Opener = links.Browser{}
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.SupportURL == "" {
		opts.SupportURL = links.SupportURL
	}
	if opts.ProfileURL == "" {
		opts.ProfileURL = links.ProfileURL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	m := Model{
		gen:             opts.Generator,
		theme:           opts.Theme,
		pres:            opts.Presentation,
		log:             opts.Logger.With("component", "tui"),
		opener:          opts.Opener,
		clipboard:       opts.Clipboard,
		rand:            opts.Rand,
		supportURL:      opts.SupportURL,
		profileURL:      opts.ProfileURL,
		now:             opts.Now,
		keys:            defaultKeyMap(),
		help:            help.New(),
		confettiEnabled: opts.Confetti,
		width:           80,
		height:          24,
	}
	m.keys.setLockEnabled(m.gen.HasGeneratedOnce())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Generator exposes the underlying state machine.
func (m Model) Generator() *idea.Generator {
	return m.gen
}

// Celebrating reports whether the confetti layer is currently drawn.
func (m Model) Celebrating() bool {
	return m.field != nil
}

// Status returns the transient status line.
func (m Model) Status() string {
	return m.status
}

// ShowingAbout reports whether the about overlay is open.
func (m Model) ShowingAbout() bool {
	return m.showAbout
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusID++
	m.status = text
	m.statusIsErr = isErr
	return clearStatusCmd(m.statusID)
}

// particleCount scales the burst to the terminal area.
func (m Model) particleCount() int {
	return min(max(m.width*m.height/6, 40), 1000)
}
