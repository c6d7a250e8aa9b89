// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/siemens/pingfleet/sweep"

	"golang.org/x/term"
)

// ProbeAndReport probes all configured targets concurrently while rendering
// aggregate progress in place, and finally prints the per-target reports.
// Live progress only makes sense on an interactive terminal; when stdout is
// piped somewhere (or --quiet was given) the probes still count their events,
// but nothing gets rendered in between.
func ProbeAndReport(ctx context.Context) error {
	var progressOut io.Writer
	if !*quiet && term.IsTerminal(int(os.Stdout.Fd())) {
		progressOut = os.Stdout
	}
	reports, err := sweep.Run(ctx, sweep.Config{
		Targets:         *targets,
		Count:           int(*count),
		Timeout:         int(*timeoutSecs),
		Resolve:         *resolveNames,
		Workers:         int(*workerNumber),
		ProgressWriter:  progressOut,
		SpinnerInterval: *spinnerInterval,
	})
	if err != nil {
		return fmt.Errorf("cannot probe targets: %w", err)
	}
	fmt.Println()
	return renderReports(os.Stdout, reports, *jsonOutput)
}
