package pipe

// Front is the half of a stage facing the outer side (usually the I/O).
type Front[FI, FO any] interface {
	// HandleFrontInput buffers a message arriving at the front boundary
	HandleFrontInput(message FI)
	// PollFrontOutput removes and returns the next message ready to leave
	// through the front boundary. ok is false when nothing is ready.
	PollFrontOutput() (message FO, ok bool)
}

// Back is the half of a stage facing the inner side (usually business logic
// or the next stage).
type Back[BI, BO any] interface {
	// HandleBackInput buffers a message arriving at the back boundary
	HandleBackInput(message BI)
	// PollBackOutput removes and returns the next message ready to leave
	// through the back boundary. ok is false when nothing is ready.
	PollBackOutput() (message BO, ok bool)
}

// Stage is a sans-I/O component with two boundaries. Implementations buffer
// and transform messages only: every call returns after bounded local work,
// never blocks and never fails. Polling an empty stage has no side effects.
//
// A stage must not produce unbounded output from a single handled message,
// otherwise a fused poll never returns.
//
// Stages are not safe for concurrent use.
type Stage[FI, FO, BI, BO any] interface {
	Front[FI, FO]
	Back[BI, BO]
}
