// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package resolve

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/jellydator/ttlcache/v3"
	"github.com/miekg/dns"
	log "github.com/sirupsen/logrus"
)

// resolvConf is where the system resolver configuration is expected, unless
// a resolver address gets explicitly configured.
const resolvConf = "/etc/resolv.conf"

// Resolver is a (goroutine-limited) pool of workers answering A/AAAA lookups
// against the system resolver. Lookup results are cached for a while, so
// duplicate targets within a run don't hammer the resolver with duplicate
// queries.
type Resolver struct {
	workers  *workerpool.WorkerPool
	clnt     *dns.Client
	server   string // resolver address in host:port format.
	cache    *ttlcache.Cache[string, []string]
	stopOnce sync.Once
}

// ResolverOption can be passed to New when creating new Resolver objects.
type ResolverOption func(*Resolver)

// New returns a new [Resolver] with a maximum worker pool of the specified
// size, talking to the system resolver from /etc/resolv.conf unless told
// otherwise. Lookup results are cached for 30s by default.
//
// The resolver can be configured during creation using several options:
//   - [WithServer]
//   - [WithClient]
//   - [WithCacheTTL]
func New(size int, options ...ResolverOption) (*Resolver, error) {
	resolver := &Resolver{
		workers: workerpool.New(size),
		clnt:    &dns.Client{},
	}
	cachettl := 30 * time.Second
	for _, opt := range options {
		opt(resolver)
	}
	if resolver.server == "" {
		conf, err := dns.ClientConfigFromFile(resolvConf)
		if err != nil {
			return nil, fmt.Errorf("cannot determine system resolver: %w", err)
		}
		if len(conf.Servers) == 0 {
			return nil, fmt.Errorf("no nameservers configured in %s", resolvConf)
		}
		resolver.server = conf.Servers[0] + ":" + conf.Port
	}
	if resolver.cache == nil {
		resolver.cache = ttlcache.New[string, []string](
			ttlcache.WithTTL[string, []string](cachettl))
	}
	go resolver.cache.Start()
	return resolver, nil
}

// WithServer sets the resolver address (in host:port format) to query,
// instead of the system resolver.
func WithServer(addr string) ResolverOption {
	return func(r *Resolver) {
		r.server = addr
	}
}

// WithClient sets the DNS client to use for the queries, in case the stock
// UDP client doesn't cut it.
func WithClient(clnt *dns.Client) ResolverOption {
	return func(r *Resolver) {
		r.clnt = clnt
	}
}

// WithCacheTTL sets how long lookup results are served from cache before a
// name gets queried anew.
func WithCacheTTL(ttl time.Duration) ResolverOption {
	return func(r *Resolver) {
		r.cache = ttlcache.New[string, []string](
			ttlcache.WithTTL[string, []string](ttl))
	}
}

// ResolveName submits an A/AAAA lookup for the specified name and passes the
// resolved addresses (in textual format), or a resolution error, to the
// specified callback function fn. fn is called exactly once, from a worker
// goroutine, after both the A and AAAA queries have completed or the context
// has been cancelled. Recently resolved names are served from cache without
// querying at all.
func (r *Resolver) ResolveName(ctx context.Context, name string, fn func([]string, error)) {
	r.workers.Submit(func() {
		var addrs []string
		var err error
		defer func() { fn(addrs, err) }()

		if item := r.cache.Get(name); item != nil {
			addrs = item.Value()
			return
		}
		nadanothing := true
		for _, addrType := range []uint16{dns.TypeA, dns.TypeAAAA} {
			select {
			case <-ctx.Done():
				err = ctx.Err()
				return
			default:
			}
			msg := dns.Msg{
				MsgHdr: dns.MsgHdr{Id: dns.Id()},
			}
			msg.SetQuestion(dns.Fqdn(name), addrType)
			var reply *dns.Msg
			reply, _, err = r.clnt.ExchangeContext(ctx, &msg, r.server)
			if err != nil {
				return
			}
			for _, rr := range reply.Answer {
				if addrRR, ok := rr.(*dns.A); ok {
					nadanothing = false
					addrs = append(addrs, addrRR.A.String())
					continue
				}
				if addrRR, ok := rr.(*dns.AAAA); ok {
					nadanothing = false
					addrs = append(addrs, addrRR.AAAA.String())
				}
			}
		}
		if nadanothing {
			err = fmt.Errorf("query for %q yields no answers", name)
			return
		}
		r.cache.Set(name, addrs, ttlcache.DefaultTTL)
	})
}

// Annotate resolves all (distinct) targets of a run and returns a map from
// target to its resolved addresses. Targets that fail to resolve are simply
// absent from the map: the annotation is purely informational and resolution
// failure must never block a probe, as the probe process does its own name
// resolution anyway.
func (r *Resolver) Annotate(ctx context.Context, targets []string) map[string][]string {
	addrs := map[string][]string{}
	var mu sync.Mutex
	var wg sync.WaitGroup
	seen := map[string]struct{}{}
	for _, target := range targets {
		if _, ok := seen[target]; ok {
			continue
		}
		seen[target] = struct{}{}
		target := target
		wg.Add(1)
		r.ResolveName(ctx, target, func(resolved []string, err error) {
			defer wg.Done()
			if err != nil {
				log.WithField("target", target).WithError(err).
					Debug("preflight resolution failed")
				return
			}
			mu.Lock()
			addrs[target] = resolved
			mu.Unlock()
		})
	}
	wg.Wait()
	return addrs
}

// StopWait waits for all enqueued lookups to finish and then shuts the pool
// and its cache down.
func (r *Resolver) StopWait() {
	r.stopOnce.Do(func() {
		r.workers.StopWait()
		r.cache.Stop()
	})
}
