// Package auth issues and checks the bearer tokens and password hashes used
// by the teacher accounts.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/errdefs"
)

const issuer = "rubric-gradebook"

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Token is a signed access token together with what went into it.
type Token struct {
	Raw       string
	ID        string
	TeacherID uuid.UUID
	Email     string
	ExpiresAt time.Time
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *TokenManager) Issue(teacherID uuid.UUID, email string) (*Token, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	now := m.now()
	expiresAt := now.Add(m.ttl)

	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.String(),
			Issuer:    issuer,
			Subject:   teacherID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Token{
		Raw:       raw,
		ID:        claims.ID,
		TeacherID: teacherID,
		Email:     email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Parse verifies the signature, issuer and expiry of raw. Any failure is
// reported as errdefs.ErrAuthentication.
func (m *TokenManager) Parse(raw string) (*Token, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(token *jwt.Token) (any, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("token expired: %w", errdefs.ErrAuthentication)
		}
		return nil, fmt.Errorf("invalid token: %w", errdefs.ErrAuthentication)
	}

	teacherID, err := uuid.Parse(claims.Subject)
	if err != nil || claims.ID == "" {
		return nil, fmt.Errorf("invalid token subject: %w", errdefs.ErrAuthentication)
	}

	return &Token{
		Raw:       raw,
		ID:        claims.ID,
		TeacherID: teacherID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
