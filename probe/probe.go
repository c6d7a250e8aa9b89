// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package probe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/siemens/pingfleet/parse"
	"github.com/siemens/pingfleet/progress"
	"github.com/siemens/pingfleet/types"

	log "github.com/sirupsen/logrus"
)

// DefaultCommand is the probe invocation template, with the echo count and
// the target substituted in. The command is run through the host's command
// interpreter, so anything reachable via “sh -c” will do as long as it emits
// the usual line-oriented diagnostics on stdout and exits zero on success.
const DefaultCommand = "ping -c %d %s"

// Runner owns the probe of exactly one target: it launches the external
// probe process, streams its stdout line by line, forwards every raw line
// (best-effort) into the shared progress channel, classifies the lines, and
// builds the target's [types.Report] from the classified ones. Runners do
// not share any mutable state with each other; many of them can (and
// usually do) run concurrently against the same progress channel.
type Runner struct {
	target  string // the target host identifier to probe.
	count   int    // number of echo requests per probe.
	timeout int    // timeout in seconds; carried, but see below.
	command string // invocation template, see DefaultCommand.
}

// RunnerOption can be passed to New when creating new Runner objects.
type RunnerOption func(*Runner)

// New returns a new [Runner] probing the specified target. The new runner
// defaults to 10 echo requests using the system ping; it can be configured
// during creation using several options:
//   - [WithCount]
//   - [WithTimeout]
//   - [WithCommand]
func New(target string, options ...RunnerOption) *Runner {
	runner := &Runner{
		target:  target,
		count:   10,
		timeout: 10,
		command: DefaultCommand,
	}
	for _, opt := range options {
		opt(runner)
	}
	return runner
}

// WithCount sets the number of echo requests the probe process is asked to
// send.
func WithCount(count int) RunnerOption {
	return func(r *Runner) {
		r.count = count
	}
}

// WithTimeout sets the per-target timeout in seconds. The value is carried
// as configuration but currently not bound into the probe invocation, and no
// deadline is enforced on the probe process either: a hung probe hangs its
// runner.
func WithTimeout(timeout int) RunnerOption {
	return func(r *Runner) {
		r.timeout = timeout
	}
}

// WithCommand replaces the probe invocation template, which must contain a
// “%d” verb for the echo count followed by a “%s” verb for the target.
// Mostly useful for substituting a canned script in tests.
func WithCommand(command string) RunnerOption {
	return func(r *Runner) {
		r.command = command
	}
}

// Target returns the target host identifier this runner probes.
func (r *Runner) Target() string { return r.target }

// Run launches the probe process and does not return before that process has
// terminated (streaming and classifying its output along the way), so
// callers typically run it in a goroutine of its own.
//
// Every output line is forwarded into the events channel as a tagged
// [progress.Event], but only best-effort: when the channel is full (or
// nobody is draining it quickly enough) the event is dropped rather than
// ever blocking the probe. Report building is completely independent of
// event delivery.
//
// Run succeeds with the target's completed report if the probe process
// exited zero – even a target that never answered still yields a report,
// just with empty replies and absent statistics. It fails with a
// [*LaunchError], [*ExecError], or [*StreamError] otherwise.
//
// A quick context check is done before launching; once the probe process is
// off the leash, however, it cannot be cancelled anymore.
func (r *Runner) Run(ctx context.Context, events chan<- progress.Event) (*types.Report, error) {
	select {
	case <-ctx.Done():
		return nil, &LaunchError{Target: r.target, Err: ctx.Err()}
	default:
	}
	cmd := exec.Command("sh", "-c", fmt.Sprintf(r.command, r.count, r.target))
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &LaunchError{Target: r.target, Err: err}
	}
	if err := cmd.Start(); err != nil {
		return nil, &LaunchError{Target: r.target, Err: err}
	}
	log.WithFields(log.Fields{
		"target": r.target,
		"state":  types.Probing,
	}).Debug("probe launched")
	report := &types.Report{
		Destination: r.target,
		Replies:     []types.EchoReply{},
	}
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Text()
		select {
		case events <- progress.Event{Target: r.target, Line: line}:
		default:
			// Never stall the probe for the sake of a percentage display.
		}
		switch stats := parse.Classify(line).(type) {
		case types.EchoReply:
			report.Replies = append(report.Replies, stats)
		case types.PacketStats:
			report.Packets = &stats
		case types.RoundTripStats:
			report.Trips = &stats
		}
	}
	scanerr := scanner.Err()
	if err := cmd.Wait(); err != nil {
		var exiterr *exec.ExitError
		if errors.As(err, &exiterr) {
			return nil, &ExecError{Target: r.target, ExitCode: exiterr.ExitCode()}
		}
		return nil, &StreamError{Target: r.target, Err: err}
	}
	if scanerr != nil {
		return nil, &StreamError{Target: r.target, Err: scanerr}
	}
	log.WithFields(log.Fields{
		"target": r.target,
		"state":  types.Done,
	}).Debug("probe finished")
	return report, nil
}
