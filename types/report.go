// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

// EchoReply is a single successful round-trip observation, as reported by one
// echo line of a probe's output. EchoReply values are immutable once parsed
// and get appended to their target's [Report] in arrival order.
type EchoReply struct {
	Bytes int     `json:"bytes"`    // payload size reported for this reply
	Seq   int     `json:"icmp_seq"` // ICMP sequence number
	TTL   int     `json:"ttl"`      // remaining time-to-live
	Time  float64 `json:"time"`     // round-trip time in milliseconds
}

// PacketStats summarizes the sent/received/loss counters for one target's
// full run. There is at most one PacketStats per [Report], set when the
// probe's summary line is seen.
type PacketStats struct {
	Transmitted int     `json:"transmitted"`
	Received    int     `json:"received"`
	LossPercent float64 `json:"loss_percent"`
}

// RoundTripStats aggregates the round-trip timing of one target's full run,
// all values in milliseconds. There is at most one RoundTripStats per
// [Report], set when the probe's timing line is seen. The fourth statistic is
// labelled either “stddev” or “mdev” depending on the probe flavor; both end
// up in StdDev.
type RoundTripStats struct {
	Min    float64 `json:"min"`
	Avg    float64 `json:"avg"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"stddev"`
}

// Report is the complete structured result for one target: its echo replies
// in arrival order, plus the optional summary statistics. A Report is built
// incrementally by exactly one probe runner and must be treated as immutable
// once that runner has handed it off.
type Report struct {
	// Destination is the target host identifier this report belongs to, in
	// the exact spelling it was configured with.
	Destination string `json:"destination"`
	// Addresses optionally lists the IP addresses the destination resolved
	// to during an (optional) preflight lookup. Purely informational: the
	// probe process does its own name resolution.
	Addresses []string `json:"addresses,omitempty"`
	// Replies lists the successful round trips in the order their lines
	// arrived from the probe process.
	Replies []EchoReply `json:"replies"`
	// Packets is the sent/received/loss summary, if the probe emitted one.
	Packets *PacketStats `json:"packets,omitempty"`
	// Trips is the round-trip timing summary, if the probe emitted one.
	Trips *RoundTripStats `json:"trips,omitempty"`
}
