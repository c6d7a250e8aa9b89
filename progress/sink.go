// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gosuri/uilive"
	"github.com/muesli/termenv"
)

// The default capacity of the event channel shared by all probe runners.
// Deliberately small: the sink only ever counts events, so there is no point
// in queueing up many of them, and producers drop events instead of blocking
// on a full channel anyway.
const defaultChanCapacity = 10

var percentStyle = termenv.Style{}.Bold()

// Sink is the single consumer of the event channel shared by all probe
// runners of one run. It counts the events trickling in and renders a
// monotonically advancing completion percentage in place, overwriting the
// same terminal line on each update.
type Sink struct {
	expected int           // estimated total number of events for the run.
	capacity int           // event channel capacity.
	interval time.Duration // spinner phase interval.
	out      io.Writer     // terminal (or terminal-ish) destination.
	events   <-chan Event  // sole receiving side of the shared channel.

	mu   sync.Mutex
	seen int
}

// SinkOption can be passed to New when creating new Sink objects.
type SinkOption func(*Sink)

// New returns a new [Sink] expecting in total the specified number of
// events, together with the event channel the probe runners are to feed.
// The caller keeps the only reference to the channel's sending side and is
// responsible for eventually closing it; see [Sink.Run] for the shutdown
// story.
//
// The estimate is just that: probe processes may emit more or fewer lines
// than estimated, so the rendered percentage is approximate and nothing must
// be built on it reaching exactly 100.
func New(expected int, options ...SinkOption) (*Sink, chan Event) {
	sink := &Sink{
		expected: expected,
		capacity: defaultChanCapacity,
		interval: 100 * time.Millisecond,
		out:      io.Discard,
	}
	for _, opt := range options {
		opt(sink)
	}
	events := make(chan Event, sink.capacity)
	sink.events = events
	return sink, events
}

// WithWriter renders the progress display to the specified writer instead of
// silently discarding it. Pass a terminal here; the in-place overwriting
// uses ANSI cursor movement.
func WithWriter(w io.Writer) SinkOption {
	return func(s *Sink) {
		s.out = w
	}
}

// WithCapacity sets the event channel capacity.
func WithCapacity(capacity int) SinkOption {
	return func(s *Sink) {
		s.capacity = capacity
	}
}

// WithSpinnerInterval sets the interval at which the spinner adornment of
// the percentage display advances.
func WithSpinnerInterval(interval time.Duration) SinkOption {
	return func(s *Sink) {
		s.interval = interval
	}
}

// Run consumes events until the expected total has been reached, the event
// channel has been closed, or the context has been cancelled, whichever
// happens first. It renders the completion percentage after every consumed
// event and a final time before returning. Run does not return before one of
// its stop conditions occurs, so callers typically run it in a goroutine of
// its own and cancel it (or close the event channel) once all probe runners
// have finished.
func (s *Sink) Run(ctx context.Context) {
	// Dunno what uilive's background updating mode using Start() is good
	// for? It may trigger anytime with the rendering into the buffer not yet
	// complete, thus making the terminal output very flickery. So we avoid
	// Start() and instead trigger an explicit flush to the terminal after
	// having completed the rendering.
	term := uilive.New()
	term.Out = s.out
	spin := newSpinner(s.interval)
	defer func() {
		spin.Stop()
		s.render(term, spin)
	}()
	for {
		if s.Seen() >= s.expected {
			return
		}
		select {
		case _, ok := <-s.events:
			if !ok {
				return
			}
			s.mu.Lock()
			s.seen++
			s.mu.Unlock()
			s.render(term, spin)
		case <-ctx.Done():
			return
		}
	}
}

// Seen returns the number of events consumed so far.
func (s *Sink) Seen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen
}

// Percent returns the current completion percentage, clamped to 100: the
// expected total is only an estimate and chatty probes can overshoot it.
func (s *Sink) Percent() float64 {
	if s.expected <= 0 {
		return 100.0
	}
	percent := float64(s.Seen()) / float64(s.expected) * 100.0
	if percent > 100.0 {
		return 100.0
	}
	return percent
}

// render writes the current percentage (plus spinner eye-candy) and flushes
// it to the terminal, overwriting the previous rendering.
func (s *Sink) render(term *uilive.Writer, spin *spinner) {
	fmt.Fprintf(term, "%s\n",
		percentStyle.Styled(fmt.Sprintf("%s%5.1f%%", spin.Spinner(), s.Percent())))
	_ = term.Flush()
}

// ExpectedTotal estimates the overall number of output lines for a run
// probing the specified number of targets with the specified per-target echo
// count. The “+3” accounts for the non-echo lines every probe process is
// expected to also emit (header plus the two summary lines); it is a
// heuristic, not a guarantee.
func ExpectedTotal(count, targets int) int {
	return (count + 3) * targets
}
