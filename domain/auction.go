package domain

import "time"

// Auction is the countdown window of a room.
// A zero EndsAt means the window was never started.
type Auction struct {
	Title  string
	EndsAt time.Time
}

func (a Auction) Started() bool {
	return !a.EndsAt.IsZero()
}

func (a Auction) Running(now time.Time) bool {
	return a.Started() && now.Before(a.EndsAt)
}

func (a Auction) Ended(now time.Time) bool {
	return a.Started() && !now.Before(a.EndsAt)
}

// Remaining is the time left in the window, zero once ended or never started.
func (a Auction) Remaining(now time.Time) time.Duration {
	if !a.Running(now) {
		return 0
	}
	return a.EndsAt.Sub(now)
}

// Start (re)opens the window for d from now, flooring d to one second.
// Calling Start while running overrides the previous window; the same
// entry point serves start, restart and add/remove-time operations.
func (a *Auction) Start(now time.Time, d time.Duration, title string) {
	if d < time.Second {
		d = time.Second
	}
	if title != "" {
		a.Title = title
	}
	a.EndsAt = now.Add(d)
}
