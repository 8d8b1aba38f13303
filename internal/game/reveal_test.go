package game

import (
	"sync"
	"testing"
	"time"
)

func TestSchedulerEmitsInOrderThenSummary(t *testing.T) {
	events := []RevealEvent{
		{Index: 0, PlayerID: "a", Correct: true},
		{Index: 1, PlayerID: "b", Correct: false},
		{Index: 2, PlayerID: "c", Correct: true},
		{Index: 3, PlayerID: "d", Correct: true},
	}

	sc := NewScheduler()
	got := make(chan RevealEvent, len(events))
	done := make(chan struct{})
	sc.Start(events, time.Millisecond, func(ev RevealEvent) {
		got <- ev
	}, func() {
		close(done)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("summary never fired")
	}

	if len(got) != len(events) {
		t.Fatalf("expected %d reveals before summary, got %d", len(events), len(got))
	}
	for i := range events {
		ev := <-got
		if ev.Index != i {
			t.Fatalf("expected index %d, got %d", i, ev.Index)
		}
	}
}

func TestSchedulerCancelStopsEmission(t *testing.T) {
	events := []RevealEvent{
		{Index: 0, PlayerID: "a"},
		{Index: 1, PlayerID: "b"},
		{Index: 2, PlayerID: "c"},
		{Index: 3, PlayerID: "d"},
	}

	sc := NewScheduler()
	first := make(chan RevealEvent, len(events))
	var mu sync.Mutex
	summaryFired := false
	sc.Start(events, 50*time.Millisecond, func(ev RevealEvent) {
		first <- ev
	}, func() {
		mu.Lock()
		summaryFired = true
		mu.Unlock()
	})

	// Wait for the t=0 event, then cancel mid-schedule.
	select {
	case <-first:
	case <-time.After(2 * time.Second):
		t.Fatal("first event never fired")
	}
	sc.Cancel()

	// Give the stale goroutine time to hit its generation check.
	time.Sleep(250 * time.Millisecond)

	if len(first) == len(events)-1 {
		t.Fatal("cancelled schedule emitted every event")
	}
	mu.Lock()
	fired := summaryFired
	mu.Unlock()
	if fired {
		t.Fatal("cancelled schedule fired its summary")
	}
}

func TestSchedulerNewScheduleSupersedesOld(t *testing.T) {
	old := []RevealEvent{
		{Index: 0, PlayerID: "old"},
		{Index: 1, PlayerID: "old"},
		{Index: 2, PlayerID: "old"},
		{Index: 3, PlayerID: "old"},
	}
	replacement := []RevealEvent{
		{Index: 0, PlayerID: "new"},
		{Index: 1, PlayerID: "new"},
	}

	sc := NewScheduler()
	var mu sync.Mutex
	var oldCount, newCount, summaries int
	firstOld := make(chan struct{}, 1)
	sc.Start(old, 50*time.Millisecond, func(ev RevealEvent) {
		mu.Lock()
		oldCount++
		mu.Unlock()
		select {
		case firstOld <- struct{}{}:
		default:
		}
	}, func() {
		mu.Lock()
		summaries++
		mu.Unlock()
	})

	select {
	case <-firstOld:
	case <-time.After(2 * time.Second):
		t.Fatal("old schedule never started")
	}

	newDone := make(chan struct{})
	sc.Start(replacement, time.Millisecond, func(ev RevealEvent) {
		if ev.PlayerID != "new" {
			t.Errorf("old event leaked into new schedule: %+v", ev)
		}
		mu.Lock()
		newCount++
		mu.Unlock()
	}, func() {
		close(newDone)
	})

	select {
	case <-newDone:
	case <-time.After(2 * time.Second):
		t.Fatal("new schedule never finished")
	}
	// Let any stale old-generation callbacks reach their token check.
	time.Sleep(250 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if newCount != len(replacement) {
		t.Fatalf("expected %d new reveals, got %d", len(replacement), newCount)
	}
	if oldCount >= len(old) {
		t.Fatalf("superseded schedule kept emitting: %d events", oldCount)
	}
	if summaries != 1 {
		t.Fatalf("expected exactly the new summary, got %d", summaries)
	}
}
