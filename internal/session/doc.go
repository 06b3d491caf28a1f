// Package session orchestrates one run of the capture-recognize-dispatch
// loop.
//
// The loop is a small state machine: acquire a frame (Idle), render the
// preview and wait briefly for a trigger (Previewing), on the capture
// trigger run crop, binarize, recognize, extract, dispatch (Capturing), and
// on the quit trigger or frame-source exhaustion release every resource and
// stop (Terminating). Failures inside a capture attempt are contained to
// that attempt; only frame-source failure ends the session, and even that
// ends it cleanly.
//
// Everything runs on one goroutine. Recognition and speech block the loop
// for their duration, an accepted tradeoff for a single-operator,
// request-driven tool.
package session
