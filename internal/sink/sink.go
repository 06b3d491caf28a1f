package sink

// Sink is a downstream destination for recognized words.
//
// A sink that fails to initialize still satisfies this interface; it simply
// reports itself unavailable. That keeps the dispatch path uniform: the
// dispatcher never needs to know why a sink is absent, only that it is.
type Sink interface {
	// Name identifies the sink in logs and dispatch reports.
	Name() string

	// Available reports whether a delivery attempt is worth making.
	// Availability is determined at startup and can change at runtime
	// (a serial link can close mid-session).
	Available() bool

	// Deliver sends one word to the destination. Implementations may block
	// until delivery completes (speech is spoken synchronously); serial
	// writes are bounded and fire-and-forget.
	Deliver(word string) error

	// Close releases the sink's resources. Safe to call on an unavailable
	// sink.
	Close() error
}
