package sink

import (
	"errors"
	"testing"
)

// fakeSink records delivery attempts for dispatch tests.
type fakeSink struct {
	name      string
	available bool
	failWith  error
	delivered []string
	closed    int
}

func (f *fakeSink) Name() string { return f.name }
func (f *fakeSink) Available() bool { return f.available }
func (f *fakeSink) Close() error { f.closed++; return nil }
func (f *fakeSink) Deliver(word string) error {
	f.delivered = append(f.delivered, word)
	return f.failWith
}

func TestDispatch_FanOut(t *testing.T) {
	a := &fakeSink{name: "serial", available: true}
	b := &fakeSink{name: "speech", available: false}

	report := Dispatch("cat", []Sink{a, b})

	if report.Word != "cat" {
		t.Errorf("report word: got %q, want %q", report.Word, "cat")
	}
	if len(report.Deliveries) != 2 {
		t.Fatalf("deliveries: got %d, want 2", len(report.Deliveries))
	}
	if report.Deliveries[0].Outcome != OutcomeDelivered {
		t.Errorf("available sink: got %s, want %s", report.Deliveries[0].Outcome, OutcomeDelivered)
	}
	if report.Deliveries[1].Outcome != OutcomeSkipped {
		t.Errorf("unavailable sink: got %s, want %s", report.Deliveries[1].Outcome, OutcomeSkipped)
	}
	if len(b.delivered) != 0 {
		t.Errorf("unavailable sink was invoked %d times", len(b.delivered))
	}
}

func TestDispatch_FailureDoesNotShortCircuit(t *testing.T) {
	failing := &fakeSink{name: "serial", available: true, failWith: errors.New("link down")}
	healthy := &fakeSink{name: "speech", available: true}

	report := Dispatch("door", []Sink{failing, healthy})

	if report.Deliveries[0].Outcome != OutcomeFailed {
		t.Errorf("failing sink: got %s, want %s", report.Deliveries[0].Outcome, OutcomeFailed)
	}
	if report.Deliveries[0].Error == "" {
		t.Error("failed delivery should record the error")
	}
	if report.Deliveries[1].Outcome != OutcomeDelivered {
		t.Errorf("healthy sink: got %s, want %s", report.Deliveries[1].Outcome, OutcomeDelivered)
	}
	if got := healthy.delivered; len(got) != 1 || got[0] != "door" {
		t.Errorf("healthy sink deliveries: got %v, want [door]", got)
	}
}

func TestDispatch_EmptyToken(t *testing.T) {
	configs := [][]Sink{
		nil,
		{&fakeSink{name: "serial", available: true}},
		{
			&fakeSink{name: "serial", available: true},
			&fakeSink{name: "speech", available: false},
		},
	}

	for _, sinks := range configs {
		report := Dispatch("", sinks)

		if !report.NoToken() {
			t.Error("report should record the missing token")
		}
		if len(report.Deliveries) != 0 {
			t.Errorf("deliveries: got %d, want 0", len(report.Deliveries))
		}
		for _, s := range sinks {
			if n := len(s.(*fakeSink).delivered); n != 0 {
				t.Errorf("sink %s invoked %d times for empty token", s.Name(), n)
			}
		}
	}
}

func TestDispatch_AllUnavailable(t *testing.T) {
	a := &fakeSink{name: "serial"}
	b := &fakeSink{name: "speech"}

	report := Dispatch("cat", []Sink{a, b})

	for _, d := range report.Deliveries {
		if d.Outcome != OutcomeSkipped {
			t.Errorf("sink %s: got %s, want %s", d.Sink, d.Outcome, OutcomeSkipped)
		}
	}
	if len(a.delivered)+len(b.delivered) != 0 {
		t.Error("no unavailable sink should be invoked")
	}
}

func TestDispatch_NoSinks(t *testing.T) {
	report := Dispatch("cat", nil)

	if report.NoToken() {
		t.Error("a non-empty token is not a missing token")
	}
	if len(report.Deliveries) != 0 {
		t.Errorf("deliveries: got %d, want 0", len(report.Deliveries))
	}
}
