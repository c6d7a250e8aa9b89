// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package parse

import (
	"github.com/siemens/pingfleet/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("line classifier", func() {

	It("extracts all echo reply fields", func() {
		line := "64 bytes from 10.0.0.1: icmp_seq=3 ttl=57 time=10.3 ms"
		Expect(Classify(line)).To(Equal(types.EchoReply{
			Bytes: 64,
			Seq:   3,
			TTL:   57,
			Time:  10.3,
		}))
	})

	It("classifies deterministically", func() {
		line := "64 bytes from ping.test (10.0.0.1): icmp_seq=1 ttl=64 time=0.5 ms"
		first := Classify(line)
		Expect(first).To(BeAssignableToTypeOf(types.EchoReply{}))
		Expect(Classify(line)).To(Equal(first))
	})

	It("rejects echo replies missing a mandatory field", func() {
		Expect(Classify("64 bytes from 10.0.0.1: icmp_seq=1 time=10.3 ms")).To(BeNil())
		Expect(Classify("bytes from 10.0.0.1: icmp_seq=1 ttl=57 time=10.3 ms")).To(BeNil())
	})

	DescribeTable("treats both packet summary flavors alike",
		func(line string) {
			Expect(Classify(line)).To(Equal(types.PacketStats{
				Transmitted: 3,
				Received:    3,
				LossPercent: 0.0,
			}))
		},
		Entry("without total time", "3 packets transmitted, 3 packets received, 0.0% packet loss"),
		Entry("with total time", "3 packets transmitted, 3 received, 0% packet loss, time 2003ms"),
	)

	DescribeTable("maps both round-trip labels onto the same four fields",
		func(line string) {
			Expect(Classify(line)).To(Equal(types.RoundTripStats{
				Min:    1.0,
				Avg:    2.0,
				Max:    3.0,
				StdDev: 0.8,
			}))
		},
		Entry("stddev label", "round-trip min/avg/max/stddev = 1.0/2.0/3.0/0.8 ms"),
		Entry("mdev label", "rtt min/avg/max/mdev = 1.0/2.0/3.0/0.8 ms"),
	)

	It("extracts lossy packet summaries", func() {
		Expect(Classify("10 packets transmitted, 7 packets received, 30.0% packet loss")).
			To(Equal(types.PacketStats{
				Transmitted: 10,
				Received:    7,
				LossPercent: 30.0,
			}))
	})

	It("leaves unrecognized lines alone, without erroring", func() {
		for _, line := range []string{
			"",
			"PING 10.0.0.1 (10.0.0.1): 56 data bytes",
			"--- 10.0.0.1 ping statistics ---",
			"Request timeout for icmp_seq 4",
			"utter garbage",
		} {
			Expect(Classify(line)).To(BeNil(), "line %q", line)
		}
	})

	It("falls through on numeric conversion failure instead of erroring", func() {
		// the dots-only “number” satisfies the character class, but not
		// strconv; the line must end up unrecognized rather than panicking or
		// half-populating anything.
		Expect(Classify("rtt min/avg/max/mdev = .../2.0/3.0/0.8 ms")).To(BeNil())
	})

})
