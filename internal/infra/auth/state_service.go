// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"io"
	"time"

	"calbridge/config"
	"calbridge/internal/domain/service"
	"calbridge/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

const (
	stateTokenType = "oauth_state"
	stateKeyInfo   = "calbridge oauth state"
	stateKeySize   = 32
)

// stateClaims binds the user that started the consent round trip.
type stateClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// jwtStateService signs state parameters as short-lived HS256 JWTs.
type jwtStateService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewStateService returns a signing state service. Without oauth.stateSecret the signing key
// is derived from encryption.key, so callbacks stay bound to the caller's key by default.
// Only a config carrying neither yields a service that issues no state.
func NewStateService(cfg *config.Config) (service.StateService, error) {
	if cfg.OAuth.StateSecret != "" {
		return newJWTStateService([]byte(cfg.OAuth.StateSecret), cfg.OAuth.StateTTL, time.Now), nil
	}

	if cfg.Encryption.Key == "" {
		return disabledStateService{}, nil
	}

	secret, err := deriveStateKey(cfg.Encryption.Key, cfg.Encryption.Salt)
	if err != nil {
		return nil, err
	}

	return newJWTStateService(secret, cfg.OAuth.StateTTL, time.Now), nil
}

// deriveStateKey expands the credential key material into a separate HMAC key for state tokens.
func deriveStateKey(keyMaterial, salt string) ([]byte, error) {
	secret := make([]byte, stateKeySize)
	reader := hkdf.New(sha256.New, []byte(keyMaterial), []byte(salt), []byte(stateKeyInfo))
	if _, err := io.ReadFull(reader, secret); err != nil {
		return nil, errors.Wrap(err, "derive state signing key")
	}

	return secret, nil
}

func newJWTStateService(secret []byte, ttl time.Duration, now func() time.Time) *jwtStateService {
	if ttl <= 0 {
		ttl = config.DefaultStateTTL
	}

	return &jwtStateService{
		secret: secret,
		ttl:    ttl,
		now:    now,
	}
}

// Issue signs userID into a state token valid for the configured TTL.
func (s *jwtStateService) Issue(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("state requires a user id")
	}

	issuedAt := s.now()
	claims := stateClaims{
		Type: stateTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign state token")
	}

	return signed, nil
}

// Parse validates the signature and expiry and returns the bound user id.
func (s *jwtStateService) Parse(state string) (string, error) {
	claims := &stateClaims{}

	_, err := jwt.ParseWithClaims(state, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", errors.Wrap(service.ErrInvalidState, err.Error())
	}

	if claims.Type != stateTokenType || claims.Subject == "" {
		return "", errors.Wrap(service.ErrInvalidState, "unexpected state claims")
	}

	return claims.Subject, nil
}

// disabledStateService issues no state. Callbacks then key the session by email.
type disabledStateService struct{}

func (disabledStateService) Issue(string) (string, error) {
	return "", nil
}

func (disabledStateService) Parse(string) (string, error) {
	return "", errors.Wrap(service.ErrInvalidState, "state binding is disabled")
}
