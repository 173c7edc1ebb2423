package audit

import (
	"testing"
	"time"
)

type channelRecorder struct {
	events chan Event
}

func (c *channelRecorder) Record(ev Event) error {
	c.events <- ev
	return nil
}

func TestDispatcherDeliversEvents(t *testing.T) {
	rec := &channelRecorder{events: make(chan Event, 1)}
	d := NewDispatcher(rec)

	d.Dispatch(Event{
		Action:   "booking_created",
		Entity:   "booking",
		Email:    "a@x.com",
		EntityID: "abc123",
	})

	select {
	case ev := <-rec.events:
		if ev.Action != "booking_created" {
			t.Errorf("action: got %q", ev.Action)
		}
		if ev.Email != "a@x.com" {
			t.Errorf("email: got %q", ev.Email)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event never reached the recorder")
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	// Recorder blocks forever, so the queue fills up; Dispatch must stay
	// non-blocking.
	rec := &channelRecorder{events: make(chan Event)}
	d := NewDispatcher(rec)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 500; i++ {
			d.Dispatch(Event{Action: "booking_created"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}
}
