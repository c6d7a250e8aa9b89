// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package sweep orchestrates one full probe run across all configured targets:
it fans out into one [probe.Runner] goroutine per target (deliberately
without any concurrency cap), funnels their raw output lines through a single
[progress.Sink], joins the runners in start order, and finally hands back the
ordered collection of per-target reports.

	          +-------+   (1 goroutine/target)
	Config -->| sweep |-->[]*types.Report (run-start order, failures omitted)
	          +-------+

Failure isolation is the whole point of the design: a target whose probe
cannot be launched, or whose probe process exits non-zero, is logged and
turned into an omission at the join point, never into a signal that would
abort sibling probes or forfeit the partial result collection.
*/
package sweep
