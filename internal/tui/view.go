package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/ideaslot/internal/idea"
)

const creditName = "Wiktor Sienkiewicz"

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.pres.current()
	snap := m.gen.Snapshot()

	top := m.renderTopBar(st)
	footer := m.renderFooter(st)
	helpView := m.help.View(m.keys)

	var body string
	if m.showAbout {
		body = st.about.Render(renderAbout(m.pres.Mode(), m.width, m.supportURL, m.profileURL))
	} else {
		body = m.renderMain(st, snap)
	}

	middleHeight := max(m.height-lipgloss.Height(top)-lipgloss.Height(footer)-lipgloss.Height(helpView), 1)
	middle := lipgloss.Place(m.width, middleHeight, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(st.colors.background))

	screen := lipgloss.JoinVertical(lipgloss.Left, top, middle, footer, helpView)
	if m.field != nil {
		screen = m.field.Overlay(screen)
	}
	return screen
}

func (m Model) renderTopBar(st styles) string {
	toggle := st.toggle.Render(m.pres.Mode().Icon())
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toggle,
		lipgloss.WithWhitespaceBackground(st.colors.background))
}

func (m Model) renderMain(st styles, snap idea.Snapshot) string {
	sections := []string{renderSentence(st, snap)}

	if snap.HasGeneratedOnce {
		sections = append(sections, renderLockHints(st, snap))
	}

	sections = append(sections, "", st.button.Render(m.gen.PrimaryLabel()))

	if m.status != "" {
		style := st.status
		if m.statusIsErr {
			style = st.errStatus
		}
		sections = append(sections, "", style.Render(m.status))
	}

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

// renderSentence draws "<subject> <form> for <audience>". Locked words are
// emphasised; before the first roll the audience is emphasised too.
func renderSentence(st styles, snap idea.Snapshot) string {
	word := func(slot idea.Slot) string {
		state := snap.Slots[slot]
		emphasise := state.Locked || (slot == idea.Audience && !snap.HasGeneratedOnce)
		if emphasise {
			return st.lockedWord.Render(state.Value)
		}
		return st.word.Render(state.Value)
	}

	return word(idea.Subject) + st.joiner.Render(" ") + word(idea.Form) + st.joiner.Render(" for ") + word(idea.Audience)
}

func renderLockHints(st styles, snap idea.Snapshot) string {
	hints := make([]string, 0, len(idea.Slots))
	for i, slot := range idea.Slots {
		label := "Lock"
		style := st.hint
		if snap.Slots[slot].Locked {
			label = "Unlock"
			style = st.lockedHint
		}
		hints = append(hints, style.Render(fmt.Sprintf("[%d] %s %s", i+1, label, slot)))
	}
	return strings.Join(hints, st.hint.Render("   "))
}

func (m Model) renderFooter(st styles) string {
	coin := st.footer.Render("I'm broke. Consider throwing a coin. [k]")
	credit := st.credit.Render(fmt.Sprintf("%s © %d [x]", creditName, m.now().Year()))

	bg := lipgloss.WithWhitespaceBackground(st.colors.background)
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, coin, bg),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Right, credit, bg),
	)
}
