// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package probe runs a single target's reachability probe by shelling out to
the system ping (or whatever probe command was configured) and turning its
line-oriented stdout chatter into a structured [types.Report].

	         +--------+-->ch progress.Event (raw lines, best-effort)
	target-->| Runner |
	         +--------+-->*types.Report (or error)

A [Runner] deliberately treats the probe as an opaque external process: it
neither crafts ICMP packets itself nor interprets anything beyond the text
lines on the process' stdout and its exit status. Per-target failures are
returned as typed errors ([LaunchError], [ExecError], [StreamError]) so that
an orchestrator can log and skip a misbehaving target without affecting its
siblings.
*/
package probe
