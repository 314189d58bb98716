// Package links opens the fixed outbound URLs.
package links

import (
	"fmt"
	"io"
	"sync"

	"github.com/pkg/browser"
)

const (
	// SupportURL is the donation page opened by the primary action once every
	// slot is locked, and by the footer link.
	SupportURL = "https://ko-fi.com/wiktorsienkiewicz"
	// ProfileURL is the author's profile opened by the credit link.
	ProfileURL = "https://x.com/wiksien"
)

// Opener opens a URL in a new browsing context.
type Opener interface {
	Open(url string) error
}

// Browser opens URLs with the system browser. Launcher output is discarded so
// it cannot draw over the terminal UI.
type Browser struct{}

var browserOnce sync.Once

// Open launches url in the default browser.
func (Browser) Open(url string) error {
	browserOnce.Do(func() {
		browser.Stdout = io.Discard
		browser.Stderr = io.Discard
	})
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

// Recorder remembers opened URLs instead of launching anything.
type Recorder struct {
	mu     sync.Mutex
	Opened []string
	Err    error
}

// Open records url and returns r.Err.
func (r *Recorder) Open(url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Opened = append(r.Opened, url)
	return r.Err
}

// Count returns how many URLs were opened.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Opened)
}
