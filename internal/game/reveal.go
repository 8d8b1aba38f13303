package game

import (
	"sync"
	"time"
)

// Scheduler drives the timed disclosure of reveal events. Only one
// schedule is live at a time: starting a new one bumps the generation
// counter so callbacks from a superseded schedule no-op instead of
// double-applying events.
type Scheduler struct {
	mu  sync.Mutex
	gen uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Start emits the events strictly in order at t=0, interval,
// 2*interval, ... and calls onSummary one interval after the last
// event. It supersedes any in-flight schedule.
func (sc *Scheduler) Start(events []RevealEvent, interval time.Duration, onReveal func(RevealEvent), onSummary func()) {
	sc.mu.Lock()
	sc.gen++
	gen := sc.gen
	sc.mu.Unlock()

	go sc.run(gen, events, interval, onReveal, onSummary)
}

// Cancel invalidates the in-flight schedule, if any.
func (sc *Scheduler) Cancel() {
	sc.mu.Lock()
	sc.gen++
	sc.mu.Unlock()
}

func (sc *Scheduler) run(gen uint64, events []RevealEvent, interval time.Duration, onReveal func(RevealEvent), onSummary func()) {
	for i, ev := range events {
		if i > 0 {
			time.Sleep(interval)
		}
		if !sc.live(gen) {
			return
		}
		if onReveal != nil {
			onReveal(ev)
		}
	}
	time.Sleep(interval)
	if !sc.live(gen) {
		return
	}
	if onSummary != nil {
		onSummary()
	}
}

func (sc *Scheduler) live(gen uint64) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.gen == gen
}
