package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/ideaslot/internal/theme"
)

// palette holds the colours of one theme.
type palette struct {
	background lipgloss.Color
	text       lipgloss.Color
	muted      lipgloss.Color
	highlight  lipgloss.Color
	buttonBg   lipgloss.Color
	buttonText lipgloss.Color
	border     lipgloss.Color
	shadow     lipgloss.Color
	errorText  lipgloss.Color
}

var (
	lightPalette = palette{
		background: lipgloss.Color("#ffffff"),
		text:       lipgloss.Color("#171717"),
		muted:      lipgloss.Color("#737373"),
		highlight:  lipgloss.Color("#e5e5e5"),
		buttonBg:   lipgloss.Color("#fde047"),
		buttonText: lipgloss.Color("#171717"),
		border:     lipgloss.Color("#171717"),
		shadow:     lipgloss.Color("#a3a3a3"),
		errorText:  lipgloss.Color("#dc2626"),
	}

	darkPalette = palette{
		background: lipgloss.Color("#0a0a0a"),
		text:       lipgloss.Color("#ededed"),
		muted:      lipgloss.Color("#a3a3a3"),
		highlight:  lipgloss.Color("#262626"),
		buttonBg:   lipgloss.Color("#7c3aed"),
		buttonText: lipgloss.Color("#fafafa"),
		border:     lipgloss.Color("#ededed"),
		shadow:     lipgloss.Color("#525252"),
		errorText:  lipgloss.Color("#f87171"),
	}
)

// styles is the full set of lipgloss styles derived from a palette.
type styles struct {
	colors palette

	word       lipgloss.Style
	lockedWord lipgloss.Style
	joiner     lipgloss.Style
	hint       lipgloss.Style
	lockedHint lipgloss.Style
	button     lipgloss.Style
	toggle     lipgloss.Style
	status     lipgloss.Style
	errStatus  lipgloss.Style
	footer     lipgloss.Style
	credit     lipgloss.Style
	about      lipgloss.Style
}

func newStyles(mode theme.Mode) styles {
	p := lightPalette
	if mode == theme.Dark {
		p = darkPalette
	}

	base := lipgloss.NewStyle().Foreground(p.text).Background(p.background)

	return styles{
		colors: p,

		word: base,
		lockedWord: base.
			Bold(true).
			Underline(true),
		joiner: base,
		hint: base.
			Foreground(p.muted),
		lockedHint: base.
			Foreground(p.text).
			Bold(true),
		button: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.buttonText).
			Background(p.buttonBg).
			Padding(1, 4).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.border).
			BorderBackground(p.background),
		toggle: base.
			PaddingRight(2),
		status: base.
			Foreground(p.muted).
			Italic(true),
		errStatus: base.
			Foreground(p.errorText).
			Bold(true),
		footer: base.
			Foreground(p.muted),
		credit: base.
			Foreground(p.muted).
			PaddingRight(2),
		about: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(1, 2),
	}
}
