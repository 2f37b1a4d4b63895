package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/account-service/internal/config"
)

// ErrInvalidToken covers malformed, tampered, wrong-secret and expired
// tokens. Callers never learn which check failed.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and validates the access/refresh token pair. The two
// kinds are signed with independent secrets: a refresh token never verifies
// as an access token and vice versa.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenManager builds a manager from auth configuration.
func NewTokenManager(cfg config.AuthConfig) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		accessTTL:     cfg.AccessTokenTTL(),
		refreshTTL:    cfg.RefreshTokenTTL(),
	}
}

// Claims describes the identity payload carried by both token kinds.
type Claims struct {
	AccountID   string `json:"accountId"`
	DisplayName string `json:"displayName"`
	jwt.RegisteredClaims
}

// IssueTokenPair signs an access token and a refresh token for the account.
func (tm *TokenManager) IssueTokenPair(accountID, displayName string) (string, string, error) {
	access, err := tm.sign(accountID, displayName, tm.accessSecret, tm.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err := tm.sign(accountID, displayName, tm.refreshSecret, tm.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// IssueAccessToken signs only a new access token. Used by the refresh
// exchange, which mints from a refresh token's claims without re-verifying
// credentials.
func (tm *TokenManager) IssueAccessToken(accountID, displayName string) (string, error) {
	return tm.sign(accountID, displayName, tm.accessSecret, tm.accessTTL)
}

// ParseAccessToken validates a bearer token against the access secret.
func (tm *TokenManager) ParseAccessToken(tokenStr string) (*Claims, error) {
	return tm.parse(tokenStr, tm.accessSecret)
}

// ParseRefreshToken validates a token against the refresh secret.
func (tm *TokenManager) ParseRefreshToken(tokenStr string) (*Claims, error) {
	return tm.parse(tokenStr, tm.refreshSecret)
}

func (tm *TokenManager) sign(accountID, displayName string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		AccountID:   accountID,
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// parse is the single verification path shared by both token kinds; only the
// expected secret differs.
func (tm *TokenManager) parse(tokenStr string, secret []byte) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
