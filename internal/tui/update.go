package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/ideaslot/internal/idea"
	"github.com/alexisbeaulieu97/ideaslot/internal/schedule"
	"github.com/alexisbeaulieu97/ideaslot/internal/tui/confetti"
)

// Update handles Bubble Tea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case schedule.Fire:
		// Deferred generator callbacks always run here, on the event loop.
		msg.Run()
		m.syncCelebration()
		return m, nil

	case frameMsg:
		if m.field == nil {
			return m, nil
		}
		m.syncCelebration()
		if m.field == nil {
			return m, nil
		}
		m.field.Step()
		return m, frameCmd()

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
			m.statusIsErr = false
		}
		return m, nil

	case linkOpenedMsg:
		if msg.err != nil {
			m.log.Warn(msg.err, "outbound link failed")
			cmd := m.setStatus("Could not open "+msg.url, true)
			return m, cmd
		}
		cmd := m.setStatus("Opened "+msg.url, false)
		return m, cmd

	case copiedMsg:
		if msg.err != nil {
			m.log.Warn(msg.err, "clipboard write failed")
			cmd := m.setStatus("Clipboard unavailable", true)
			return m, cmd
		}
		cmd := m.setStatus("Copied “"+msg.text+"”", false)
		return m, cmd

	case tea.QuitMsg:
		m.shutdown()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.shutdown()
		return m, tea.Quit
	}

	if m.showAbout {
		switch {
		case key.Matches(msg, m.keys.About), msg.Type == tea.KeyEsc:
			m.showAbout = false
		case key.Matches(msg, m.keys.Theme):
			m.theme.Toggle()
		}
		return m, nil
	}

	if slot, ok := m.lockSlotFor(msg); ok {
		m.gen.ToggleLock(slot)
		cmd := m.afterStateChange()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Primary):
		action := m.gen.Press()
		m.log.Debug("primary action: " + action.String())
		cmd := m.afterStateChange()
		if action == idea.ActionConvert {
			return m, tea.Batch(cmd, openLinkCmd(m.opener, m.gen.ConvertURL()))
		}
		return m, cmd

	case key.Matches(msg, m.keys.Theme):
		mode := m.theme.Toggle()
		m.log.Debug("theme toggled to " + mode.String())
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m, copyCmd(m.clipboard, m.gen.Sentence().String())

	case key.Matches(msg, m.keys.Support):
		return m, openLinkCmd(m.opener, m.supportURL)

	case key.Matches(msg, m.keys.Profile):
		return m, openLinkCmd(m.opener, m.profileURL)

	case key.Matches(msg, m.keys.About):
		m.showAbout = true
		return m, nil
	}

	return m, nil
}

// lockSlotFor maps lock keys to slots. Lock keys are matched even while their
// bindings are hidden so the generator decides whether locking applies.
func (m Model) lockSlotFor(msg tea.KeyMsg) (idea.Slot, bool) {
	pressed := msg.String()
	switch {
	case slices.Contains(m.keys.LockSubject.Keys(), pressed):
		return idea.Subject, true
	case slices.Contains(m.keys.LockForm.Keys(), pressed):
		return idea.Form, true
	case slices.Contains(m.keys.LockAudience.Keys(), pressed):
		return idea.Audience, true
	}
	return 0, false
}

// afterStateChange refreshes derived UI state and starts the confetti when a
// new celebration began.
func (m *Model) afterStateChange() tea.Cmd {
	snap := m.gen.Snapshot()
	m.keys.setLockEnabled(snap.HasGeneratedOnce)

	c := snap.Celebration
	if !c.Active || c.StartedAt.Equal(m.celebratedAt) {
		return nil
	}
	m.celebratedAt = c.StartedAt
	if !m.confettiEnabled {
		return nil
	}

	startFrames := m.field == nil
	m.field = confetti.New(m.width, m.height, m.particleCount(), m.rand)
	if startFrames {
		return frameCmd()
	}
	return nil
}

// syncCelebration drops the confetti layer once the celebration has ended or
// every particle has fallen out of view.
func (m *Model) syncCelebration() {
	if m.field == nil {
		return
	}
	if !m.gen.Celebration().Active || m.field.Done() {
		m.field = nil
	}
}

func (m *Model) shutdown() {
	if m.quitting {
		return
	}
	m.quitting = true
	m.gen.Close()
	m.log.Info("session closed")
}
