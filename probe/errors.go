// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package probe

import "fmt"

// LaunchError reports that a probe process could not be started at all, or
// that its output stream could not be attached. The target in question never
// got probed.
type LaunchError struct {
	Target string // the target whose probe failed to launch.
	Err    error  // the underlying cause.
}

// Error returns the clear-text representation of a LaunchError.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot launch probe for %s: %v", e.Target, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LaunchError) Unwrap() error { return e.Err }

// ExecError reports that a probe process ran, but signalled failure by
// exiting with a non-zero status.
type ExecError struct {
	Target   string // the target whose probe failed.
	ExitCode int    // the process exit status.
}

// Error returns the clear-text representation of an ExecError.
func (e *ExecError) Error() string {
	return fmt.Sprintf("probe for %s failed with exit code %d", e.Target, e.ExitCode)
}

// StreamError reports an I/O failure while reading a probe process' output
// lines, such as a broken pipe.
type StreamError struct {
	Target string // the target whose probe output broke off.
	Err    error  // the underlying cause.
}

// Error returns the clear-text representation of a StreamError.
func (e *StreamError) Error() string {
	return fmt.Sprintf("reading probe output for %s: %v", e.Target, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StreamError) Unwrap() error { return e.Err }
