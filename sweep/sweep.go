// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/siemens/pingfleet/probe"
	"github.com/siemens/pingfleet/progress"
	"github.com/siemens/pingfleet/resolve"
	"github.com/siemens/pingfleet/types"

	log "github.com/sirupsen/logrus"
)

// Config are the (validated) inputs for one full run. A Config is read-only
// for the lifetime of its run.
type Config struct {
	// Targets is the ordered list of target host identifiers to probe;
	// duplicates are permitted and get probed separately.
	Targets []string
	// Count is the number of echo requests per target; defaults to 10.
	Count int
	// Timeout in seconds; defaults to 10. Carried as configuration but
	// currently not bound into the probe invocations, see
	// [probe.WithTimeout].
	Timeout int
	// Resolve enables the preflight lookup annotating each report with the
	// addresses its target resolves to.
	Resolve bool
	// Workers limits the preflight lookup pool (never the probes, which all
	// run at once); defaults to 5.
	Workers int
	// ProgressWriter is the terminal to render live progress to; leave nil
	// to not render any progress.
	ProgressWriter io.Writer
	// SpinnerInterval optionally adjusts the progress spinner.
	SpinnerInterval time.Duration
	// Command optionally replaces the probe invocation template, see
	// [probe.WithCommand].
	Command string
}

// outcome is what a single probe runner goroutine leaves behind for the
// joining collector.
type outcome struct {
	report *types.Report
	err    error
}

// Run probes all configured targets concurrently and returns their reports
// in run-start order. It owns the complete lifecycle of one run: it starts
// one probe runner goroutine per target (all feeding one shared event
// channel) plus a single progress sink draining that channel, joins the
// runners in the order they were started, then unconditionally tears the
// sink down – the sink may well not have reached its estimated total – and
// assembles the final report collection.
//
// A failing target is logged and omitted from the returned collection; it
// never cancels its sibling probes and never aborts the run. Run only
// returns an error for a broken preflight resolver setup, never for probe
// failures.
func Run(ctx context.Context, cfg Config) ([]*types.Report, error) {
	if cfg.Count <= 0 {
		cfg.Count = 10
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 5
	}

	var annotations map[string][]string
	if cfg.Resolve {
		resolver, err := resolve.New(cfg.Workers)
		if err != nil {
			return nil, err
		}
		annotations = resolver.Annotate(ctx, cfg.Targets)
		resolver.StopWait()
	}

	sinkopts := []progress.SinkOption{}
	if cfg.ProgressWriter != nil {
		sinkopts = append(sinkopts, progress.WithWriter(cfg.ProgressWriter))
	}
	if cfg.SpinnerInterval > 0 {
		sinkopts = append(sinkopts, progress.WithSpinnerInterval(cfg.SpinnerInterval))
	}
	sink, events := progress.New(
		progress.ExpectedTotal(cfg.Count, len(cfg.Targets)), sinkopts...)
	sinkctx, stopsink := context.WithCancel(context.Background())
	defer stopsink()
	sinkdone := make(chan struct{})
	go func() {
		defer close(sinkdone)
		sink.Run(sinkctx)
	}()

	runneropts := []probe.RunnerOption{
		probe.WithCount(cfg.Count),
		probe.WithTimeout(cfg.Timeout),
	}
	if cfg.Command != "" {
		runneropts = append(runneropts, probe.WithCommand(cfg.Command))
	}
	outcomes := make([]outcome, len(cfg.Targets))
	var wg sync.WaitGroup
	for idx, target := range cfg.Targets {
		idx, target := idx, target
		wg.Add(1)
		go func() {
			defer wg.Done()
			report, err := probe.New(target, runneropts...).Run(ctx, events)
			outcomes[idx] = outcome{report: report, err: err}
		}()
	}
	wg.Wait()
	// All producers have left the building, so the event channel can be
	// safely closed; together with cancelling the sink context this stops
	// the sink whether it ever reaches its (estimated) total or not.
	close(events)
	stopsink()
	<-sinkdone

	reports := make([]*types.Report, 0, len(cfg.Targets))
	for _, outcome := range outcomes {
		if outcome.err != nil {
			log.WithField("state", types.Failed).
				WithError(outcome.err).Error("probe failed")
			continue
		}
		report := outcome.report
		if addrs, ok := annotations[report.Destination]; ok {
			report.Addresses = addrs
		}
		reports = append(reports, report)
	}
	return reports, nil
}
