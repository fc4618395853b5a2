// Package chain provides a fluent wrapper around outcome.Outcome for layered
// failure handling. Each Handle step narrows one failure kind off the failure
// channel and recovers from it, so the failure type of the chain shrinks by
// one member per step until it is a bare value.
//
// Key operations:
// - Start/FromValue: begin a chain from an Outcome or a value
// - Then/Map: continue on success
// - Handle: recover from one failure kind, keep the rest
// - Ensure: run side effects on success without changing the outcome
// - Finally: collapse the chain into a final value via handlers
package chain
