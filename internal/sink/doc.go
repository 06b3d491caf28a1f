// Package sink fans recognized words out to downstream destinations.
//
// Two sinks exist: a serial-attached microcontroller that receives each
// word as newline-terminated lowercase ASCII, and a speech synthesizer
// that speaks the word aloud. Either may be unavailable (missing hardware,
// missing engine binary, a link that closed mid-session) without affecting
// the other or the capture loop itself.
//
// Dispatch performs the fan-out: one independent delivery attempt per
// configured sink, no short-circuiting, and a Report of per-sink outcomes
// for logging and testing.
package sink
