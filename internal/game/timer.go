package game

import (
	"sync"
	"time"
)

// MaxCountdownSeconds caps the discussion countdown at 59 minutes.
const MaxCountdownSeconds = 59 * 60

// Countdown is the discussion-phase timer: whole-second ticks,
// pausable, adjustable only while stopped. The tick period is
// injectable so tests do not wait in real time.
type Countdown struct {
	mu        sync.Mutex
	gen       uint64
	initial   int
	remaining int
	running   bool
	tick      time.Duration
	onTick    func(remaining int)
	onDone    func()
}

func NewCountdown(seconds int, tick time.Duration, onTick func(int), onDone func()) *Countdown {
	if seconds < 0 {
		seconds = 0
	}
	if seconds > MaxCountdownSeconds {
		seconds = MaxCountdownSeconds
	}
	return &Countdown{
		initial:   seconds,
		remaining: seconds,
		tick:      tick,
		onTick:    onTick,
		onDone:    onDone,
	}
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Start begins ticking. A no-op when already running or expired.
func (c *Countdown) Start() {
	c.mu.Lock()
	if c.running || c.remaining <= 0 {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	go c.loop(gen)
}

func (c *Countdown) loop(gen uint64) {
	for {
		time.Sleep(c.tick)
		c.mu.Lock()
		if c.gen != gen || !c.running {
			c.mu.Unlock()
			return
		}
		c.remaining--
		remaining := c.remaining
		done := remaining <= 0
		if done {
			c.running = false
		}
		c.mu.Unlock()

		if c.onTick != nil {
			c.onTick(remaining)
		}
		if done {
			if c.onDone != nil {
				c.onDone()
			}
			return
		}
	}
}

// Pause stops ticking without losing the remaining time.
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	c.gen++
}

// Reset stops the timer and restores the initial duration.
func (c *Countdown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	c.gen++
	c.remaining = c.initial
}

// Adjust shifts the remaining time by delta seconds, clamped to
// [0, MaxCountdownSeconds]. Rejected while the timer is running.
func (c *Countdown) Adjust(delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return ErrTimerRunning
	}
	c.remaining += delta
	if c.remaining < 0 {
		c.remaining = 0
	}
	if c.remaining > MaxCountdownSeconds {
		c.remaining = MaxCountdownSeconds
	}
	return nil
}
