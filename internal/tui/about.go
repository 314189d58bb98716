package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/alexisbeaulieu97/ideaslot/internal/theme"
)

const aboutMarkdown = `# ideaslot

Press **enter** to gamble a fresh business idea.

Once you have rolled at least once, lock the words you like with
**1**, **2** and **3** (or **s**, **f**, **a**). Locked words survive the
next roll. Lock all three and you have found your calling.

| key | action |
|-----|--------|
| enter | gamble, or say thanks once everything is locked |
| t | switch between light and dark |
| c | copy the idea |
| k | I'm broke. Consider throwing a coin |
| x | say hi to the author |

Support: %s

Author: %s
`

// renderAbout renders the about overlay as markdown, styled to match mode.
func renderAbout(mode theme.Mode, width int, supportURL, profileURL string) string {
	body := fmt.Sprintf(aboutMarkdown, supportURL, profileURL)

	// glamour ships standard styles named after the two modes.
	style := mode.String()

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width-8, 20)),
	)
	if err != nil {
		return body
	}
	out, err := r.Render(body)
	if err != nil {
		return body
	}
	return strings.TrimRight(out, "\n")
}
