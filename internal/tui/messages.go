package tui

import "time"

// frameMsg advances the confetti animation.
type frameMsg struct {
	at time.Time
}

// clearStatusMsg clears the status line if it is still the one with id.
type clearStatusMsg struct {
	id int
}

// linkOpenedMsg reports the outcome of opening an outbound link.
type linkOpenedMsg struct {
	url string
	err error
}

// copiedMsg reports the outcome of a clipboard copy.
type copiedMsg struct {
	text string
	err  error
}
