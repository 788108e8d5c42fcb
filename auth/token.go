package auth

import (
	"auction-lab/errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin gates every privileged entitlement operation.
const RoleAdmin = "admin"

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	Subject string   `json:"subject"`
	Roles   []string `json:"roles"`
	jwt.RegisteredClaims
}

// HasRole reports whether the token carries the given role.
func (c *CustomClaims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// GenerateToken creates a signed JWT for a subject. The secret comes from
// configuration; it is never baked into the binary.
func GenerateToken(secret []byte, subject string, roles []string, tokenDuration time.Duration) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		Subject: subject,
		Roles:   roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "auction-lab",
		},
	}

	// HS256: HMAC with SHA256, symmetric secret shared with nobody.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return signed, nil
}

// ValidateToken parses and validates the signature and expiration of a JWT string.
func ValidateToken(secret []byte, tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
