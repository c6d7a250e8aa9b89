// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package types defines pingfleet's information model. Which is rather simple
and mainly revolves around [Report] – the complete structured result for one
probed target – together with its constituent parts [EchoReply],
[PacketStats], and [RoundTripStats], as well as the [ProbeState] lifecycle of
a target.

Reports are deliberately plain value carriers: they are built incrementally
by exactly one probe runner goroutine and handed off to the orchestrator only
after that runner has finished, so no locking is needed anywhere in this
package. Consumers – the terminal renderer as well as the JSON output – only
ever see completed, effectively immutable reports. The JSON field tags are
part of the tool's output contract.
*/
package types
