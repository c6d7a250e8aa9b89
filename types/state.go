// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import "fmt"

// ProbeState indicates where a target currently is in its probing lifecycle,
// such as pending, probing, et cetera.
type ProbeState int

// The probing lifecycle states of a target.
const (
	Pending ProbeState = iota // target configured, probe not yet started.
	Probing                   // probe process running, lines streaming in.
	Done                      // probe process exited successfully, report complete.
	Failed                    // probe process could not be started or exited non-zero.
)

// String returns the clear-text representation of a ProbeState value.
func (s ProbeState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Probing:
		return "probing"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("ProbeState(%d)", s)
}

// IsTerminal returns true once a target's probe has either completed or
// failed for good.
func (s ProbeState) IsTerminal() bool {
	switch s {
	case Done, Failed:
		return true
	default:
		return false
	}
}
