// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package resolve

import (
	"context"
	"net"
	"sync/atomic"
	"time"

	"github.com/miekg/dns"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("preflight resolver", func() {

	var server *dns.Server
	var serverAddr string
	var queries atomic.Int64

	BeforeEach(func() {
		// A local stub resolver that only ever knows “ping.test”, counting
		// the queries it sees so the tests can assert on cache hits.
		queries.Store(0)
		pc := Successful(net.ListenPacket("udp", "127.0.0.1:0"))
		serverAddr = pc.LocalAddr().String()
		server = &dns.Server{
			PacketConn: pc,
			Handler: dns.HandlerFunc(func(w dns.ResponseWriter, req *dns.Msg) {
				queries.Add(1)
				reply := new(dns.Msg)
				reply.SetReply(req)
				if len(req.Question) == 1 &&
					req.Question[0].Name == "ping.test." &&
					req.Question[0].Qtype == dns.TypeA {
					reply.Answer = append(reply.Answer,
						Successful(dns.NewRR("ping.test. 60 IN A 192.0.2.1")))
				}
				_ = w.WriteMsg(reply)
			}),
		}
		go func() { _ = server.ActivateAndServe() }()
		DeferCleanup(func() { _ = server.Shutdown() })
	})

	It("annotates resolvable targets and silently skips the rest", func(ctx context.Context) {
		resolver := Successful(New(2, WithServer(serverAddr)))
		defer resolver.StopWait()
		annotations := resolver.Annotate(ctx, []string{"ping.test", "nada.test"})
		Expect(annotations).To(HaveLen(1))
		Expect(annotations["ping.test"]).To(ConsistOf("192.0.2.1"))
		Expect(annotations).NotTo(HaveKey("nada.test"))
	})

	It("serves duplicate lookups from cache", func(ctx context.Context) {
		resolver := Successful(New(1, WithServer(serverAddr),
			WithCacheTTL(time.Minute)))
		defer resolver.StopWait()

		first := make(chan []string, 1)
		resolver.ResolveName(ctx, "ping.test", func(addrs []string, err error) {
			defer GinkgoRecover()
			Expect(err).NotTo(HaveOccurred())
			first <- addrs
		})
		Eventually(first).WithTimeout(5 * time.Second).Should(
			Receive(ConsistOf("192.0.2.1")))
		asked := queries.Load()
		Expect(asked).To(BeNumerically(">=", 1))

		second := make(chan []string, 1)
		resolver.ResolveName(ctx, "ping.test", func(addrs []string, err error) {
			defer GinkgoRecover()
			Expect(err).NotTo(HaveOccurred())
			second <- addrs
		})
		Eventually(second).WithTimeout(5 * time.Second).Should(
			Receive(ConsistOf("192.0.2.1")))
		Expect(queries.Load()).To(Equal(asked))
	})

	It("queries a duplicated target only once per annotation run", func(ctx context.Context) {
		resolver := Successful(New(3, WithServer(serverAddr)))
		defer resolver.StopWait()
		annotations := resolver.Annotate(ctx,
			[]string{"ping.test", "ping.test", "ping.test"})
		Expect(annotations).To(HaveLen(1))
		Expect(queries.Load()).To(Equal(int64(2))) // one A, one AAAA
	})

	It("handles multiple stops", func() {
		resolver := Successful(New(1, WithServer(serverAddr)))
		for i := 0; i < 2; i++ {
			done := make(chan struct{})
			go func() {
				defer GinkgoRecover()
				defer close(done)
				resolver.StopWait()
			}()
			Eventually(done).WithTimeout(time.Second).Should(BeClosed())
		}
	})

})
