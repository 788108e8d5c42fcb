package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGift_OpenStreak(t *testing.T) {
	req := require.New(t)

	req.True(Gift{IsStreak: true}.OpenStreak())
	req.False(Gift{IsStreak: true, StreakEnded: true}.OpenStreak())
	req.False(Gift{}.OpenStreak())
}

func TestGift_EffectiveValue(t *testing.T) {
	t.Run("should multiply unit value by repeat count", func(t *testing.T) {
		req := require.New(t)
		g := Gift{UnitValue: 5, RepeatCount: 10}
		req.Equal(int64(50), g.EffectiveValue())
	})

	t.Run("should treat missing repeat count as one", func(t *testing.T) {
		req := require.New(t)
		req.Equal(int64(7), Gift{UnitValue: 7}.EffectiveValue())
		req.Equal(int64(7), Gift{UnitValue: 7, RepeatCount: -3}.EffectiveValue())
	})
}

func TestGift_DisplayName(t *testing.T) {
	req := require.New(t)

	req.Equal("Alice", Gift{ContributorID: "u1", Nickname: "Alice"}.DisplayName())
	req.Equal("u1", Gift{ContributorID: "u1"}.DisplayName())
	req.Equal("anonymous", Gift{}.DisplayName())
}
