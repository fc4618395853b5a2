// Package outcome provides Outcome[T, E], a two-case result whose failure
// channel E is typically a closed union from package oneof.
//
// NarrowErr applies one narrowing to the failure channel and leaves the
// success channel alone, so a caller picks between three cases with a single
// match: the original success, the one failure it handles, or the remaining
// failures as a strictly smaller union to return upward.
//
// Highlights:
// - Success/Failure: construct an Outcome
// - NarrowErr: split one failure kind off the failure channel
// - Recover: fold a handled failure back into the two-case form
// - Map/Then/MapFailure: transform either channel
// - Finally: reduce to a concrete value via success/failure handlers
//
// Every Outcome carries an id that survives all of the above, so a failure can
// be traced through the layers that narrowed it.
package outcome
