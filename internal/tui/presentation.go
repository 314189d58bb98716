package tui

import (
	"sync"

	"github.com/alexisbeaulieu97/ideaslot/internal/theme"
)

// Presentation is the theme.Sink of the terminal UI: the data-theme
// attribute selects the palette every view is drawn with.
type Presentation struct {
	mu     sync.RWMutex
	mode   theme.Mode
	styles styles
}

// NewPresentation starts in light mode.
func NewPresentation() *Presentation {
	return &Presentation{mode: theme.Light, styles: newStyles(theme.Light)}
}

// SetAttribute implements theme.Sink. Unknown attributes and values are
// ignored.
func (p *Presentation) SetAttribute(name, value string) {
	if name != theme.Attribute {
		return
	}
	mode, err := theme.ParseMode(value)
	if err != nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = mode
	p.styles = newStyles(mode)
}

// Mode returns the mode currently applied.
func (p *Presentation) Mode() theme.Mode {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.mode
}

func (p *Presentation) current() styles {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.styles
}
