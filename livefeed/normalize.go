package livefeed

import "auction-lab/domain"

// Normalize converts a loose upstream payload into a strict domain.Gift.
//
// Upstream connectors emit duck-typed maps with inconsistent field sets
// across versions. Missing fields default to safe no-op values: a gift
// that cannot be priced normalizes to zero value and is dropped later by
// the ledger, never crashing the adapter.
//
// Streak detection: recent connectors carry explicit isStreak/streakEnded
// flags, which are authoritative. Older ones only expose the legacy
// giftType==1 + repeatEnd pair, kept here as a fallback.
func Normalize(payload map[string]any) domain.Gift {
	gift := domain.Gift{
		ContributorID: str(payload, "uniqueId"),
		Nickname:      str(payload, "nickname"),
		Avatar:        str(payload, "profilePictureUrl"),
		UnitValue:     integer(payload, "diamondCount"),
		RepeatCount:   int(integer(payload, "repeatCount")),
	}
	if gift.UnitValue == 0 {
		// Some connector versions nest the price under gift.diamondCount.
		if nested, ok := payload["gift"].(map[string]any); ok {
			gift.UnitValue = integer(nested, "diamondCount")
		}
	}

	if _, ok := payload["isStreak"]; ok {
		gift.IsStreak = boolean(payload, "isStreak")
		gift.StreakEnded = boolean(payload, "streakEnded")
		return gift
	}
	// Legacy heuristic: giftType 1 marks streakable gifts, repeatEnd the terminal event.
	gift.IsStreak = integer(payload, "giftType") == 1
	gift.StreakEnded = boolean(payload, "repeatEnd")
	return gift
}

func str(payload map[string]any, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}

func integer(payload map[string]any, key string) int64 {
	switch v := payload[key].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}

func boolean(payload map[string]any, key string) bool {
	if v, ok := payload[key].(bool); ok {
		return v
	}
	return false
}
