// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gleak"
	. "github.com/thediveo/success"
)

// wellBehavedProbe scripts a probe that reports every echo answered; the
// count and target template verbs are consumed the same way the real
// invocation consumes them.
const wellBehavedProbe = `c=%d; t=%s
echo "PING $t ($t): 56 data bytes"
i=1
while [ $i -le $c ]; do
	echo "64 bytes from $t: icmp_seq=$i ttl=64 time=0.5 ms"
	i=$((i+1))
done
echo "$c packets transmitted, $c packets received, 0.0%% packet loss"
echo "round-trip min/avg/max/stddev = 0.4/0.5/0.6/0.1 ms"`

// flakyFleetProbe scripts a fleet where any target named “unlucky” fails
// with exit status 2 after some initial chatter, while all other targets
// behave.
const flakyFleetProbe = `c=%d; t=%s
echo "PING $t ($t): 56 data bytes"
if [ "$t" = "unlucky" ]; then
	exit 2
fi
echo "64 bytes from $t: icmp_seq=1 ttl=64 time=0.5 ms"
echo "1 packets transmitted, 1 packets received, 0.0%% packet loss"`

// unevenProbe scripts two targets with noticeably different amounts of
// output, so their lines interleave arbitrarily in the progress stream.
const unevenProbe = `c=%d; t=%s
if [ "$t" = "chatty" ]; then n=13; else n=5; fi
i=1
while [ $i -le $n ]; do
	echo "64 bytes from $t: icmp_seq=$i ttl=64 time=1.0 ms"
	i=$((i+1))
done`

var _ = Describe("sweep orchestrator", func() {

	BeforeEach(func() {
		goodgos := Goroutines()
		DeferCleanup(func() {
			Eventually(Goroutines).WithTimeout(3 * time.Second).WithPolling(250 * time.Millisecond).
				ShouldNot(HaveLeaked(goodgos))
		})
	})

	It("produces one report per target, in run-start order", func(ctx context.Context) {
		targets := []string{"alpha", "beta", "gamma"}
		reports := Successful(Run(ctx, Config{
			Targets: targets,
			Count:   2,
			Command: wellBehavedProbe,
		}))
		Expect(reports).To(HaveLen(3))
		for idx, report := range reports {
			Expect(report.Destination).To(Equal(targets[idx]))
			Expect(report.Replies).To(HaveLen(2))
			Expect(report.Packets).NotTo(BeNil())
			Expect(report.Trips).NotTo(BeNil())
		}
	})

	It("probes duplicate targets separately", func(ctx context.Context) {
		reports := Successful(Run(ctx, Config{
			Targets: []string{"twin", "twin"},
			Count:   1,
			Command: wellBehavedProbe,
		}))
		Expect(reports).To(HaveLen(2))
		Expect(reports[0].Destination).To(Equal("twin"))
		Expect(reports[1].Destination).To(Equal("twin"))
	})

	It("omits failed targets without aborting their siblings", func(ctx context.Context) {
		reports := Successful(Run(ctx, Config{
			Targets: []string{"alpha", "unlucky", "gamma"},
			Count:   1,
			Command: flakyFleetProbe,
		}))
		Expect(reports).To(HaveLen(2))
		Expect(reports[0].Destination).To(Equal("alpha"))
		Expect(reports[1].Destination).To(Equal("gamma"))
	})

	It("completes a run in which every probe fails", func(ctx context.Context) {
		reports := Successful(Run(ctx, Config{
			Targets: []string{"unlucky", "unlucky"},
			Count:   1,
			Command: flakyFleetProbe,
		}))
		Expect(reports).To(BeEmpty())
	})

	It("joins targets regardless of how their output interleaves", func(ctx context.Context) {
		reports := Successful(Run(ctx, Config{
			Targets: []string{"chatty", "terse"},
			Count:   1,
			Command: unevenProbe,
		}))
		Expect(reports).To(HaveLen(2))
		Expect(reports[0].Replies).To(HaveLen(13))
		Expect(reports[1].Replies).To(HaveLen(5))
	})

})
