package domain

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func nextEvent(t *testing.T, sub *Subscription) ChangeEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ev, err := sub.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	return ev
}

func TestPublishDeliversToCurrentSubscribers(t *testing.T) {
	bus := NewChangeBus()
	a := bus.Subscribe("demo")
	b := bus.Subscribe("demo")
	other := bus.Subscribe("other")
	defer a.Cancel()
	defer b.Cancel()
	defer other.Cancel()

	px := NewPixel(3, 4, "#FFFFFF", "u1")
	if n := bus.Publish("demo", px); n != 2 {
		t.Fatalf("delivered = %d, want 2", n)
	}
	for _, sub := range []*Subscription{a, b} {
		ev := nextEvent(t, sub)
		got, ok := ev.Pixel()
		if !ok || got != px {
			t.Fatalf("event = %v, want pixel %v", ev, px)
		}
	}
	if pending := other.Drain(); len(pending) != 0 {
		t.Fatalf("other room received %d events", len(pending))
	}
}

func TestLateSubscriberMissesEarlierPublish(t *testing.T) {
	bus := NewChangeBus()
	keep := bus.Subscribe("demo")
	defer keep.Cancel()

	bus.Publish("demo", NewPixel(0, 0, "#000000", "u1"))
	late := bus.Subscribe("demo")
	defer late.Cancel()

	if pending := late.Drain(); len(pending) != 0 {
		t.Fatalf("late subscriber received %d events", len(pending))
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	bus := NewChangeBus()
	sub := bus.Subscribe("demo")
	bus.Publish("demo", NewPixel(0, 0, "#000000", "u1"))
	sub.Cancel()
	sub.Cancel()

	bus.Publish("demo", NewPixel(1, 1, "#000000", "u1"))
	if _, err := sub.Next(context.Background()); !errors.Is(err, ErrSubscriptionClosed) {
		t.Fatalf("next after cancel = %v, want ErrSubscriptionClosed", err)
	}
	if n := bus.SubscriberCount("demo"); n != 0 {
		t.Fatalf("subscriber count = %d, want 0", n)
	}
	if stats := bus.GetStats(); stats.ActiveRooms != 0 || stats.ActiveSubscriptions != 0 {
		t.Fatalf("stats = %+v, want empty", stats)
	}
}

func TestPublishBatchIsOneEvent(t *testing.T) {
	bus := NewChangeBus()
	sub := bus.Subscribe("demo")
	defer sub.Cancel()

	pixels := []Pixel{NewPixel(0, 0, "#000000", "u1"), NewPixel(1, 0, "#FFFFFF", "u1")}
	bus.PublishBatch("demo", pixels)
	pixels[0].Color = "#E50000"

	ev := nextEvent(t, sub)
	if ev.Type != EventBatch || len(ev.Pixels) != 2 {
		t.Fatalf("event = %v, want batch of 2", ev)
	}
	if ev.Pixels[0].Color != "#000000" {
		t.Fatal("batch event aliases caller slice")
	}
	if pending := sub.Drain(); len(pending) != 0 {
		t.Fatalf("extra events: %d", len(pending))
	}
}

func TestCloseRoomDrainsThenEnds(t *testing.T) {
	bus := NewChangeBus()
	sub := bus.Subscribe("demo")
	bus.Publish("demo", NewPixel(0, 0, "#000000", "u1"))
	if n := bus.CloseRoom("demo"); n != 1 {
		t.Fatalf("closed = %d, want 1", n)
	}

	nextEvent(t, sub)
	if _, err := sub.Next(context.Background()); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("next = %v, want ErrRoomNotFound", err)
	}
	sub.Cancel()
}

func TestMaxPendingTerminatesSlowSubscriber(t *testing.T) {
	bus := NewChangeBus(WithMaxPending(2))
	slow := bus.Subscribe("demo")
	for i := 0; i < 3; i++ {
		bus.Publish("demo", NewPixel(i, 0, "#000000", "u1"))
	}
	if _, err := slow.Next(context.Background()); !errors.Is(err, ErrSubscriberOverflow) {
		t.Fatalf("next = %v, want ErrSubscriberOverflow", err)
	}
	if n := bus.SubscriberCount("demo"); n != 0 {
		t.Fatalf("subscriber count = %d, want 0", n)
	}
	if stats := bus.GetStats(); stats.TotalDropped != 1 {
		t.Fatalf("dropped = %d, want 1", stats.TotalDropped)
	}
}

func TestNextHonoursContext(t *testing.T) {
	bus := NewChangeBus()
	sub := bus.Subscribe("demo")
	defer sub.Cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := sub.Next(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("next = %v, want deadline exceeded", err)
	}
}

func TestEventsIterator(t *testing.T) {
	bus := NewChangeBus()
	sub := bus.Subscribe("demo")
	defer sub.Cancel()

	for i := 0; i < 3; i++ {
		bus.Publish("demo", NewPixel(i, 0, "#000000", "u1"))
	}
	var xs []int
	for ev := range sub.Events(context.Background()) {
		p, _ := ev.Pixel()
		xs = append(xs, p.X)
		if len(xs) == 3 {
			break
		}
	}
	if len(xs) != 3 || xs[0] != 0 || xs[2] != 2 {
		t.Fatalf("xs = %v, want [0 1 2]", xs)
	}
}

func TestConcurrentPublishSubscribe(t *testing.T) {
	bus := NewChangeBus()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				sub := bus.Subscribe("demo")
				sub.Cancel()
			}
		}()
		go func(x int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bus.Publish("demo", NewPixel(x, j, "#000000", "u1"))
			}
		}(i)
	}
	wg.Wait()
	if stats := bus.GetStats(); stats.ActiveSubscriptions != 0 {
		t.Fatalf("active subscriptions = %d, want 0", stats.ActiveSubscriptions)
	}
}
