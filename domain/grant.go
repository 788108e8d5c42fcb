package domain

import "time"

type GrantStatus string

const (
	GrantActive   GrantStatus = "active"
	GrantExpired  GrantStatus = "expired"
	GrantRevoked  GrantStatus = "revoked"
	GrantDisabled GrantStatus = "disabled"
)

type GrantKind string

const (
	// KindKey is an opaque redeemable key minted by an administrator.
	KindKey GrantKind = "key"
	// KindAccount ties the grant to a normalized account identifier.
	KindAccount GrantKind = "account"
)

// GrantMonth is the commercial month used for grant durations.
const GrantMonth = 30 * 24 * time.Hour

// Grant is a time-bounded access credential. Every field must survive a
// round-trip through the store exactly.
type Grant struct {
	ID          string      `json:"id"`
	Kind        GrantKind   `json:"kind"`
	Status      GrantStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	ExpiresAt   time.Time   `json:"expires_at"`
	ActivatedAt *time.Time  `json:"activated_at,omitempty"`
	LastUsedAt  *time.Time  `json:"last_used_at,omitempty"`
	Uses        uint64      `json:"uses"`
	Notes       string      `json:"notes,omitempty"`
}

func NewGrant(id string, kind GrantKind, now time.Time, months int) Grant {
	if months < 1 {
		months = 1
	}
	return Grant{
		ID:        id,
		Kind:      kind,
		Status:    GrantActive,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(months) * GrantMonth),
	}
}

// ExpireIfDue performs the lazy active -> expired transition.
// Returns true when the status actually changed.
func (g *Grant) ExpireIfDue(now time.Time) bool {
	if g.Status != GrantActive {
		return false
	}
	if now.Before(g.ExpiresAt) {
		return false
	}
	g.Status = GrantExpired
	return true
}

// Extend pushes the expiry out by whole months, counted from the later of
// the current expiry and now. An expired grant comes back to life.
func (g *Grant) Extend(now time.Time, months int) {
	if months < 1 {
		months = 1
	}
	base := g.ExpiresAt
	if now.After(base) {
		base = now
	}
	g.ExpiresAt = base.Add(time.Duration(months) * GrantMonth)
	if g.Status == GrantExpired {
		g.Status = GrantActive
	}
}

// Touch records a successful verification. The first one activates the grant.
func (g *Grant) Touch(now time.Time) {
	if g.ActivatedAt == nil {
		at := now
		g.ActivatedAt = &at
	}
	used := now
	g.LastUsedAt = &used
	g.Uses++
}

// Remaining is the time left before expiry, never negative.
func (g *Grant) Remaining(now time.Time) time.Duration {
	if now.After(g.ExpiresAt) {
		return 0
	}
	return g.ExpiresAt.Sub(now)
}

// DaysRemaining is the whole days left before expiry.
func (g *Grant) DaysRemaining(now time.Time) int {
	return int(g.Remaining(now) / (24 * time.Hour))
}
