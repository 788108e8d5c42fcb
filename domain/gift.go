package domain

// Gift is one normalized event from the live feed.
//
// A streak is a burst of repeated identical gifts from one contributor.
// Only the terminal event of a streak carries the true cumulative
// RepeatCount, so an open streak must never reach the ledger.
type Gift struct {
	ContributorID string
	Nickname      string
	Avatar        string
	UnitValue     int64
	RepeatCount   int
	IsStreak      bool
	StreakEnded   bool
}

// OpenStreak reports whether the event belongs to a streak still in progress.
func (g Gift) OpenStreak() bool {
	return g.IsStreak && !g.StreakEnded
}

// EffectiveValue is the amount actually credited to the contributor.
// A missing repeat count means a single gift.
func (g Gift) EffectiveValue() int64 {
	count := g.RepeatCount
	if count < 1 {
		count = 1
	}
	return g.UnitValue * int64(count)
}

// DisplayName resolves the identity used as the ledger key.
func (g Gift) DisplayName() string {
	if g.Nickname != "" {
		return g.Nickname
	}
	if g.ContributorID != "" {
		return g.ContributorID
	}
	return "anonymous"
}
