// Package solo contains single-message stages built from plain functions.
// Each handled message is processed immediately and buffered until polled,
// in arrival order.
//
// Highlights:
// - Map: transform messages in both directions
// - Try: transform with a fallible function; failures are answered at the front
// - Validate: pass valid messages through, reject the rest at the front
// - Identity: pass everything through unchanged
package solo
