package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/ideaslot/internal/links"
	"github.com/alexisbeaulieu97/ideaslot/internal/tui/confetti"
)

const statusTTL = 3 * time.Second

// frameCmd schedules the next confetti frame.
func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/confetti.FPS, func(t time.Time) tea.Msg {
		return frameMsg{at: t}
	})
}

// openLinkCmd opens url off the event loop.
func openLinkCmd(opener links.Opener, url string) tea.Cmd {
	return func() tea.Msg {
		return linkOpenedMsg{url: url, err: opener.Open(url)}
	}
}

// copyCmd writes text to the clipboard off the event loop.
func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{text: text, err: write(text)}
	}
}

// clearStatusCmd expires the status line with id after statusTTL.
func clearStatusCmd(id int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
