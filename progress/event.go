// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package progress

// Event is one raw line of probe output, tagged with the target it
// originated from. Events are transient: the sink consumes them solely for
// completion estimation and then forgets them. In particular, the sink never
// attributes events to specific targets; the Target tag exists for debug
// logging only.
type Event struct {
	Target string // target host identifier the line originated from
	Line   string // the raw, unparsed output line
}
