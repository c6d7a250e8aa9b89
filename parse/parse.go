// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package parse

import (
	"regexp"
	"strconv"

	"github.com/siemens/pingfleet/types"
)

// The classification patterns, compiled once and reused for every line of
// every probe. The echo reply pattern requires all five fields (including the
// otherwise unused source address, which anchors the match); summary and
// round-trip matching each support two textual flavors, as emitted by the BSD
// and the iputils ping families.
var (
	echoReplyPattern = regexp.MustCompile(
		`(\d+) bytes from (.+?): icmp_seq=(\d+) ttl=(\d+) time=([0-9.]+) ms$`)

	packetStatsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+) packets transmitted, (\d+) packets received, ([0-9.]+)% packet loss$`),
		regexp.MustCompile(`(\d+) packets transmitted, (\d+) received, ([0-9.]+)% packet loss, time (\d+)ms`),
	}

	roundTripPatterns = []*regexp.Regexp{
		regexp.MustCompile(`min/avg/max/stddev = ([0-9.]+)/([0-9.]+)/([0-9.]+)/([0-9.]+) ms$`),
		regexp.MustCompile(`min/avg/max/mdev = ([0-9.]+)/([0-9.]+)/([0-9.]+)/([0-9.]+) ms$`),
	}
)

// EchoReplyLine matches a single echo reply line, such as
//
//	64 bytes from 10.0.0.1: icmp_seq=1 ttl=57 time=10.3 ms
//
// and returns the extracted observation. All five fields are mandatory: a
// line missing any of them, or with a captured field failing numeric
// conversion, is simply no echo reply line.
func EchoReplyLine(line string) (types.EchoReply, bool) {
	m := echoReplyPattern.FindStringSubmatch(line)
	if m == nil {
		return types.EchoReply{}, false
	}
	bytes, err := strconv.Atoi(m[1])
	if err != nil {
		return types.EchoReply{}, false
	}
	seq, err := strconv.Atoi(m[3])
	if err != nil {
		return types.EchoReply{}, false
	}
	ttl, err := strconv.Atoi(m[4])
	if err != nil {
		return types.EchoReply{}, false
	}
	elapsed, err := strconv.ParseFloat(m[5], 64)
	if err != nil {
		return types.EchoReply{}, false
	}
	return types.EchoReply{
		Bytes: bytes,
		Seq:   seq,
		TTL:   ttl,
		Time:  elapsed,
	}, true
}

// PacketStatsLine matches a packet summary line in either of its two
// flavors,
//
//	3 packets transmitted, 3 packets received, 0.0% packet loss
//	3 packets transmitted, 3 received, 0% packet loss, time 2003ms
//
// and returns transmitted count, received count, and loss percentage. Any
// trailing fields beyond these three are ignored.
func PacketStatsLine(line string) (types.PacketStats, bool) {
	for _, pattern := range packetStatsPatterns {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		transmitted, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		received, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		loss, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			continue
		}
		return types.PacketStats{
			Transmitted: transmitted,
			Received:    received,
			LossPercent: loss,
		}, true
	}
	return types.PacketStats{}, false
}

// RoundTripStatsLine matches a round-trip timing summary line with either a
// “stddev” or an “mdev” label for the fourth statistic,
//
//	round-trip min/avg/max/stddev = 1.0/2.0/3.0/0.8 ms
//	rtt min/avg/max/mdev = 1.0/2.0/3.0/0.8 ms
//
// and returns the four timing values; both labels map to StdDev.
func RoundTripStatsLine(line string) (types.RoundTripStats, bool) {
	for _, pattern := range roundTripPatterns {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		min, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		avg, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		max, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			continue
		}
		stddev, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			continue
		}
		return types.RoundTripStats{
			Min:    min,
			Avg:    avg,
			Max:    max,
			StdDev: stddev,
		}, true
	}
	return types.RoundTripStats{}, false
}

// Classify inspects one line of probe output, trying the known patterns in
// fixed priority order: echo reply first, then the packet summary flavors,
// then the round-trip summary flavors. It returns the first successful match
// as one of [types.EchoReply], [types.PacketStats], or [types.RoundTripStats],
// or nil if the line matches none of them. Unrecognized lines are not an
// error; probes emit plenty of them (headers, resolution notices, and so on).
func Classify(line string) any {
	if reply, ok := EchoReplyLine(line); ok {
		return reply
	}
	if packets, ok := PacketStatsLine(line); ok {
		return packets
	}
	if trips, ok := RoundTripStatsLine(line); ok {
		return trips
	}
	return nil
}
