package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"careerlog-backend/apperr"
)

// Token constants shared with the desktop client.
const (
	Issuer   = "job-tracker-api"
	Audience = "desktop-client"
	Scope    = "user"
)

// Claims are the JWT claims carried by every issued token.
type Claims struct {
	Email string `json:"email"`
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HMAC-signed tokens with a fixed lifespan.
// It is stateless: there is no revocation, a stolen token stays valid until
// its natural expiry.
type TokenManager struct {
	secret   []byte
	method   jwt.SigningMethod
	lifespan time.Duration
}

// NewTokenManager creates a token manager. algorithm must be an HMAC
// algorithm name (HS256, HS384 or HS512).
func NewTokenManager(secret, algorithm string, expiryHours int) (*TokenManager, error) {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported JWT algorithm: %s", algorithm)
	}

	return &TokenManager{
		secret:   []byte(secret),
		method:   method,
		lifespan: time.Duration(expiryHours) * time.Hour,
	}, nil
}

// Issue creates a signed token for the given user.
func (m *TokenManager) Issue(userID, email string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(m.lifespan)

	claims := &Claims{
		Email: email,
		Scope: Scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    Issuer,
			Audience:  jwt.ClaimStrings{Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(m.method, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Verify validates the signature, issuer, audience and expiry of a token and
// returns its claims. Any mismatch yields an AUTH_TOKEN_INVALID error.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithIssuer(Issuer),
		jwt.WithAudience(Audience),
		jwt.WithValidMethods([]string{m.method.Alg()}),
	)
	if err != nil || !token.Valid {
		return nil, apperr.InvalidToken("Invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, apperr.InvalidToken("Invalid or expired token")
	}

	return claims, nil
}
