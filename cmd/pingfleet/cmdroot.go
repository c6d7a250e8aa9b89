// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"
)

var (
	targets         *[]string
	count           *uint
	timeoutSecs     *uint
	workerNumber    *uint
	spinnerInterval *time.Duration
	resolveNames    *bool
	jsonOutput      *bool
	quiet           *bool
	debug           *bool
)

func newRootCmd() (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:     "pingfleet [flags] --targets host,...",
		Short:   "pingfleet probes the reachability of a whole fleet of hosts concurrently",
		Version: "0.9",
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if len(*targets) == 0 {
				return fmt.Errorf("--targets must name at least one host")
			}
			if *count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}
			if *timeoutSecs < 1 {
				return fmt.Errorf("--timeout must be at least 1s")
			}
			if *workerNumber < 1 || *workerNumber > 10 {
				return fmt.Errorf("--workers out of range [1..10]")
			}
			if *spinnerInterval < 10*time.Millisecond {
				return fmt.Errorf("--spinner must be at least 10ms")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if *debug {
				log.SetLevel(log.DebugLevel)
				log.Debug("debug logging enabled")
			}
			return ProbeAndReport(context.Background())
		},
	}
	// Sets up the flags.
	targets = rootCmd.PersistentFlags().StringSlice(
		"targets", nil, "comma-separated list of target hosts to probe")
	_ = rootCmd.MarkPersistentFlagRequired("targets")
	count = rootCmd.PersistentFlags().UintP(
		"count", "c", 10, "number of echo requests per target")
	timeoutSecs = rootCmd.PersistentFlags().Uint(
		"timeout", 10, "probe timeout in seconds (accepted, but not enforced on probes)")
	resolveNames = rootCmd.PersistentFlags().Bool(
		"resolve", false, "annotate reports with the addresses the targets resolve to")
	jsonOutput = rootCmd.PersistentFlags().Bool(
		"json", false, "render the final reports as JSON")
	quiet = rootCmd.PersistentFlags().BoolP(
		"quiet", "q", false, "suppress the live progress display")
	debug = rootCmd.PersistentFlags().Bool(
		"debug", false, "enable debugging output")
	workerNumber = rootCmd.PersistentFlags().Uint(
		"workers", 5, "number of preflight resolver workers")
	spinnerInterval = rootCmd.PersistentFlags().Duration(
		"spinner", 100*time.Millisecond, "spinner interval")
	return
}
