// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Yet another (braille) spinner.

package progress

import (
	"sync"
	"time"
)

// spinner is yet another blindingly simple spinner; just enough to liven up
// the percentage display, no bells, no frills. It starts spinning right away
// when created and keeps advancing its phase in the background until told to
// Stop.
type spinner struct {
	phases []string
	done   chan struct{}
	once   sync.Once
	mu     sync.Mutex
	phase  int
}

// newSpinner returns a new spinner advancing through its phases at the
// specified interval; call Stop to halt it and release its background
// resources.
func newSpinner(interval time.Duration) *spinner {
	s := &spinner{
		done: make(chan struct{}),
	}
	for _, r := range "⠉⠘⠰⠤⠆⠃" {
		s.phases = append(s.phases, string(r)+" ")
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.mu.Lock()
				s.phase = (s.phase + 1) % len(s.phases)
				s.mu.Unlock()
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Spinner returns the spinner string for the current phase.
func (s *spinner) Spinner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phases[s.phase]
}

// Stop the spinner and release the background resources. Stopping more than
// once is fine.
func (s *spinner) Stop() {
	s.once.Do(func() { close(s.done) })
}
