package sink

// Outcome classifies a single delivery attempt in a dispatch report.
type Outcome string

const (
	// OutcomeDelivered means the sink accepted the word.
	OutcomeDelivered Outcome = "delivered"

	// OutcomeSkipped means the sink was unavailable and was not invoked.
	OutcomeSkipped Outcome = "skipped-unavailable"

	// OutcomeFailed means the sink was invoked and the transport errored.
	OutcomeFailed Outcome = "failed"
)

// Delivery records the result of one sink's delivery attempt.
type Delivery struct {
	Sink    string  `json:"sink"`
	Outcome Outcome `json:"outcome"`
	Error   string  `json:"error,omitempty"`
}

// Report describes the result of fanning one word out to the configured
// sinks. It is purely observational, for logging and testing; it carries no
// control-flow effect on the session loop.
type Report struct {
	// Word is the token that was dispatched. Empty means no valid token
	// was extracted and no sink was invoked.
	Word string `json:"word"`

	// Deliveries holds one entry per configured sink, in configuration
	// order. Empty when Word is empty.
	Deliveries []Delivery `json:"deliveries"`
}

// NoToken reports whether this dispatch carried no valid token.
func (r *Report) NoToken() bool {
	return r.Word == ""
}

// Dispatch fans a word out to every configured sink.
//
// An empty word invokes no sink at all. Otherwise each sink gets exactly
// one independent delivery attempt: an unavailable sink is skipped, a
// failing sink is recorded as failed, and neither prevents the attempt on
// any other sink. Dispatch itself never fails.
func Dispatch(word string, sinks []Sink) *Report {
	report := &Report{Word: word}
	if word == "" {
		return report
	}

	for _, s := range sinks {
		if !s.Available() {
			report.Deliveries = append(report.Deliveries, Delivery{
				Sink:    s.Name(),
				Outcome: OutcomeSkipped,
			})
			continue
		}

		if err := s.Deliver(word); err != nil {
			report.Deliveries = append(report.Deliveries, Delivery{
				Sink:    s.Name(),
				Outcome: OutcomeFailed,
				Error:   err.Error(),
			})
			continue
		}

		report.Deliveries = append(report.Deliveries, Delivery{
			Sink:    s.Name(),
			Outcome: OutcomeDelivered,
		})
	}

	return report
}
