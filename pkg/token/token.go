// Package token issues and verifies the JWTs used for API authentication.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/caresetu/caresetu_backend/config"
)

// Claims is the payload carried by access and refresh tokens.
type Claims struct {
	UserID    uuid.UUID `json:"uid"`
	Role      string    `json:"role"`
	SessionID string    `json:"sid"`
	TokenType string    `json:"typ"` // "access" or "refresh"
	jwt.RegisteredClaims
}

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Manager signs and verifies tokens with a shared HMAC secret.
type Manager struct {
	secret     []byte
	issuer     string
	audience   string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewManager(cfg config.JWTConfig) (*Manager, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("jwt secret key is not configured")
	}
	accessTTL := time.Duration(cfg.AccessTTLMinutes) * time.Minute
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	refreshTTL := time.Duration(cfg.RefreshTTLDays) * 24 * time.Hour
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &Manager{
		secret:     []byte(cfg.SecretKey),
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// IssueAccess creates a signed access token for the given user.
func (m *Manager) IssueAccess(userID uuid.UUID, role, sessionID string) (string, error) {
	return m.issue(userID, role, sessionID, TypeAccess, m.accessTTL)
}

// IssueRefresh creates a signed refresh token for the given user.
func (m *Manager) IssueRefresh(userID uuid.UUID, role, sessionID string) (string, error) {
	return m.issue(userID, role, sessionID, TypeRefresh, m.refreshTTL)
}

func (m *Manager) issue(userID uuid.UUID, role, sessionID, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		Role:      role,
		SessionID: sessionID,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a signed token and validates signature, expiry, issuer
// and audience. It returns the claims on success.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	var claims Claims
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if m.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(m.issuer))
	}
	if m.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(m.audience))
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, parserOpts...)
	if err != nil {
		if isTokenError(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !tok.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

// VerifyAccess is Verify plus a token-type check.
func (m *Manager) VerifyAccess(tokenStr string) (*Claims, error) {
	claims, err := m.Verify(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TypeAccess {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

// VerifyRefresh is Verify plus a token-type check.
func (m *Manager) VerifyRefresh(tokenStr string) (*Claims, error) {
	claims, err := m.Verify(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TypeRefresh {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

// AccessTTL reports how long issued access tokens stay valid.
func (m *Manager) AccessTTL() time.Duration { return m.accessTTL }
