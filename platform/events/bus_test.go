package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"emsinet_landing_backend/platform/logger"
)

type testEvent struct {
	BaseEvent
	name string
}

func (e testEvent) EventName() string { return e.name }

func TestInMemoryBus_PublishReachesSubscribers(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	received := make(chan Event, 1)
	bus.Subscribe("thing.happened", HandlerFunc(func(ctx context.Context, event Event) error {
		received <- event
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "thing.happened"})

	select {
	case event := <-received:
		if event.EventName() != "thing.happened" {
			t.Fatalf("unexpected event %q", event.EventName())
		}
	case <-time.After(time.Second):
		t.Fatal("handler never received the event")
	}
}

func TestInMemoryBus_UnrelatedEventsNotDelivered(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	received := make(chan Event, 1)
	bus.Subscribe("wanted", HandlerFunc(func(ctx context.Context, event Event) error {
		received <- event
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "other"})

	select {
	case <-received:
		t.Fatal("handler received an event it did not subscribe to")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestInMemoryBus_PublishSyncReturnsFirstError(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	first := errors.New("first")
	bus.Subscribe("e", HandlerFunc(func(ctx context.Context, event Event) error { return first }))
	bus.Subscribe("e", HandlerFunc(func(ctx context.Context, event Event) error { return errors.New("second") }))

	err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "e"})
	if err != first {
		t.Fatalf("expected first handler error, got %v", err)
	}
}

func TestInMemoryBus_PanickingHandlerDoesNotCrashPublisher(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	done := make(chan struct{})
	bus.Subscribe("e", HandlerFunc(func(ctx context.Context, event Event) error {
		defer close(done)
		panic("boom")
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "e"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler never ran")
	}
}
