package domain

import "sort"

// Contributor is one cumulative entry in a room's ledger.
type Contributor struct {
	User   string
	Total  int64
	Avatar string

	seq int // first-seen order, used as the tie-break
}

// Ledger accumulates contributor totals for a single room.
// Pure accumulation: totals never decrease outside of Reset.
//
// The ledger is not goroutine safe on its own; the owning Room
// serializes every mutation and read.
type Ledger struct {
	entries map[string]*Contributor
	nextSeq int
	total   int64
}

func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string]*Contributor)}
}

// Apply credits value to the contributor, creating the entry if absent.
// Values <= 0 are no-ops. A non-empty avatar replaces the stored one.
func (l *Ledger) Apply(user, avatar string, value int64) bool {
	if value <= 0 || user == "" {
		return false
	}
	entry, ok := l.entries[user]
	if !ok {
		entry = &Contributor{User: user, seq: l.nextSeq}
		l.nextSeq++
		l.entries[user] = entry
	}
	entry.Total += value
	if avatar != "" {
		entry.Avatar = avatar
	}
	l.total += value
	return true
}

// TopN returns up to n contributors, descending by total,
// ties broken by first-seen order for a stable ranking.
func (l *Ledger) TopN(n int) []Contributor {
	ranked := make([]Contributor, 0, len(l.entries))
	for _, entry := range l.entries {
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		return ranked[i].seq < ranked[j].seq
	})
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Total is the aggregate of every applied value.
func (l *Ledger) Total() int64 { return l.total }

// Size is the number of distinct contributors.
func (l *Ledger) Size() int { return len(l.entries) }

// Reset clears all entries and the aggregate total.
// Called on auction (re)start and on target-account switch.
func (l *Ledger) Reset() {
	l.entries = make(map[string]*Contributor)
	l.nextSeq = 0
	l.total = 0
}
