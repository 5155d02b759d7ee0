// Package token issues and verifies the signed bearer credentials used by the
// API: short-form access tokens carrying the subject identity, and refresh
// tokens carrying an additional unique token id (jti) as a hook for future
// revocation. Tokens are not persisted server-side; validity is determined
// purely by signature and expiry.
package token

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the access-token payload: the owning user id plus the
// registered time claims.
type AccessClaims struct {
	UserID string `json:"id"`
	gojwt.RegisteredClaims
}

// RefreshClaims is the refresh-token payload. The jti lives in
// RegisteredClaims.ID.
type RefreshClaims struct {
	UserID string `json:"userId"`
	gojwt.RegisteredClaims
}

// Pair bundles the access and refresh tokens issued together.
type Pair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Service signs and parses JWT tokens with HS256.
type Service struct {
	cfg Config
}

// NewService creates a token service from configuration.
func NewService(cfg Config) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{cfg: cfg}, nil
}

// GenerateAccessToken signs an access token for the given user id.
func (s *Service) GenerateAccessToken(userID string) (string, error) {
	now := time.Now()
	claims := &AccessClaims{
		UserID: userID,
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.cfg.AccessTokenTTL)),
		},
	}
	return s.sign(claims, s.cfg.AccessSecret)
}

// GenerateRefreshToken signs a refresh token for the given user id and jti.
func (s *Service) GenerateRefreshToken(userID, jti string) (string, error) {
	now := time.Now()
	claims := &RefreshClaims{
		UserID: userID,
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        jti,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.cfg.RefreshTokenTTL)),
		},
	}
	return s.sign(claims, s.cfg.RefreshSecret)
}

// GenerateTokens issues an access/refresh pair for one login or registration.
func (s *Service) GenerateTokens(userID, jti string) (Pair, error) {
	access, err := s.GenerateAccessToken(userID)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := s.GenerateRefreshToken(userID, jti)
	if err != nil {
		return Pair{}, err
	}
	return Pair{AccessToken: access, RefreshToken: refresh}, nil
}

// ParseAccessToken validates signature and expiry against the access secret
// and returns the decoded claims.
func (s *Service) ParseAccessToken(raw string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := s.parse(raw, claims, s.cfg.AccessSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

// ParseRefreshToken validates signature and expiry against the refresh secret
// and returns the decoded claims.
func (s *Service) ParseRefreshToken(raw string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := s.parse(raw, claims, s.cfg.RefreshSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *Service) sign(claims gojwt.Claims, secret string) (string, error) {
	t := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

func (s *Service) parse(raw string, claims gojwt.Claims, secret string) error {
	keyFunc := func(t *gojwt.Token) (interface{}, error) {
		if t.Method.Alg() != gojwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("token: unexpected signing method: %s", t.Method.Alg())
		}
		return []byte(secret), nil
	}

	parsed, err := gojwt.ParseWithClaims(raw, claims, keyFunc,
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return fmt.Errorf("token: parse: %w", err)
	}
	if !parsed.Valid {
		return errors.New("token: invalid token")
	}
	return nil
}

// IsExpired reports whether the parse error was caused by token expiry rather
// than a bad signature.
func IsExpired(err error) bool {
	return errors.Is(err, gojwt.ErrTokenExpired)
}
