// Package machine maps electric machine geometry and material properties to
// the derived dimensions and lumped masses used by the modal solvers.
//
// The model is deliberately trusting: no unit checking, no bounds checking.
// A tooth wider than the slot pitch yields a negative slot width, which
// flows through to a negative winding mass. Guarding against malformed
// designs is the caller's job.
package machine
