// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package parse classifies single lines of probe output into the pingfleet
information model: echo replies, packet summaries, and round-trip summaries.
Everything else is “unrecognized”, which deliberately is not an error: probe
processes intersperse their useful lines with headers and other chatter.

Classification is pure and deterministic – the same line always yields the
same result – and cheap to call per line, as all patterns are compiled
exactly once at package initialization. A captured field that fails numeric
conversion invalidates only that pattern's match, with classification falling
through to the remaining patterns.
*/
package parse
