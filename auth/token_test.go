package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := []byte("test-secret")

	t.Run("should round trip subject and roles", func(t *testing.T) {
		req := require.New(t)

		token, err := GenerateToken(secret, "operator", []string{RoleAdmin, "viewer"}, time.Hour)
		req.NoError(err)
		req.NotEmpty(token)

		claims, err := ValidateToken(secret, token)
		req.NoError(err)
		req.Equal("operator", claims.Subject)
		req.True(claims.HasRole(RoleAdmin))
		req.True(claims.HasRole("viewer"))
		req.False(claims.HasRole("root"))
		req.Equal("auction-lab", claims.Issuer)
	})

	t.Run("should reject a token signed with another secret", func(t *testing.T) {
		req := require.New(t)

		token, err := GenerateToken([]byte("other-secret"), "operator", []string{RoleAdmin}, time.Hour)
		req.NoError(err)

		_, err = ValidateToken(secret, token)
		req.Error(err)
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		req := require.New(t)

		token, err := GenerateToken(secret, "operator", []string{RoleAdmin}, -time.Minute)
		req.NoError(err)

		_, err = ValidateToken(secret, token)
		req.Error(err)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		req := require.New(t)

		_, err := ValidateToken(secret, "not-a-token")
		req.Error(err)
	})
}
