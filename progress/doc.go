// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package progress implements the aggregation point for the raw output lines of
all concurrently running probes: a bounded [Event] channel fed (best-effort)
by every probe runner and drained by a single [Sink] that renders a live,
monotonically advancing completion percentage in place.

	                 +------+
	ch Event (N:1)-->| Sink +-->“⠘  42.3%”
	                 +------+

The percentage is an estimate computed against [ExpectedTotal] and only ever
serves the human in front of the terminal; probe reports are built completely
independently of this package, so a slow – or absent – sink can never stall a
probe.

# Acknowledgements

The in-place terminal updating leverages [gosuri/uilive].

[gosuri/uilive]: https://github.com/gosuri/uilive
*/
package progress
