// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package resolve implements an optional preflight step annotating the targets
of a run with the IP addresses their names resolve to. The annotations end up
in the final reports for the human reading them; they are never fed into the
probes themselves, which do their own name resolution.

A [Resolver] is a goroutine-limited worker pool (we don't want to hammer the
resolver with one query burst per target of a potentially long target list),
with recently resolved names served from an expiring cache so duplicate
targets cost only one query.

# Acknowledgements

Under its hood, [Resolver] leverages [gammazero/workerpool] as the limiting
goroutine pool and [jellydator/ttlcache] for result caching.

[gammazero/workerpool]: https://github.com/gammazero/workerpool
[jellydator/ttlcache]: https://github.com/jellydator/ttlcache
*/
package resolve
