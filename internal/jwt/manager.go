package jwt

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"maps"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oshokin/utilkit/internal/datetime"
	"github.com/oshokin/utilkit/internal/logger"
)

const (
	// AlgorithmHS256 is HMAC with SHA-256, the default algorithm.
	AlgorithmHS256 = "HS256"
	// AlgorithmHS384 is HMAC with SHA-384.
	AlgorithmHS384 = "HS384"
	// AlgorithmHS512 is HMAC with SHA-512.
	AlgorithmHS512 = "HS512"

	// DefaultRefreshExpiresIn is the lifetime of tokens issued by RefreshToken when none is given.
	DefaultRefreshExpiresIn = 15 * time.Minute

	// DefaultSecretLength is the number of random bytes in a generated secret.
	DefaultSecretLength = 32

	// refreshFailedMessage is reported when a valid refresh token cannot be re-signed.
	refreshFailedMessage = "Something went wrong, cannot create token"
)

// Registered claims that RefreshToken drops before re-signing.
const (
	claimIssuedAt  = "iat"
	claimExpiresAt = "exp"
	claimNotBefore = "nbf"
	claimIssuer    = "iss"
	claimSubject   = "sub"
	claimAudience  = "aud"
)

// Claims is a decoded token payload.
type Claims map[string]any

// SignOptions controls the registered claims and algorithm of signed tokens.
// Zero fields are left out of the token.
type SignOptions struct {
	// ExpiresIn sets "exp" relative to the signing time.
	ExpiresIn time.Duration
	// NotBefore sets "nbf" relative to the signing time.
	NotBefore time.Duration
	// Issuer sets "iss".
	Issuer string
	// Subject sets "sub".
	Subject string
	// Audience sets "aud".
	Audience []string
	// Algorithm is one of AlgorithmHS256, AlgorithmHS384 or AlgorithmHS512. Empty means HS256.
	Algorithm string
}

// RefreshResult is the outcome of HandleRefreshRequest.
type RefreshResult struct {
	Success bool   `json:"success" yaml:"success"`
	Token   string `json:"token"   yaml:"token"`
	Error   string `json:"error"   yaml:"error"`
}

// Manager signs and verifies tokens with a single secret and default options.
type Manager struct {
	// secret is the HMAC key.
	secret []byte
	// options are the defaults merged under per-call options.
	options SignOptions
	// clock supplies the signing and validation time.
	clock datetime.Clock
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock makes the manager read the current time from clock.
func WithClock(clock datetime.Clock) Option {
	return func(m *Manager) {
		if clock != nil {
			m.clock = clock
		}
	}
}

// NewManager creates a Manager. It fails with ErrMissingSecret when secret is empty
// and with ErrUnsupportedAlgorithm when options name an unknown algorithm.
func NewManager(secret string, options SignOptions, opts ...Option) (*Manager, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	if _, err := signingMethod(options.Algorithm); err != nil {
		return nil, err
	}

	m := &Manager{
		secret:  []byte(secret),
		options: options,
		clock:   datetime.SystemClock{},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// GenerateSecret returns a random hex-encoded secret of the given number of bytes.
func GenerateSecret(length int) (string, error) {
	if length <= 0 {
		length = DefaultSecretLength
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// Sign signs claims. Options given here override the manager defaults field by field.
// The registered claims derived from options replace those present in claims.
func (m *Manager) Sign(claims Claims, options ...SignOptions) (string, error) {
	merged := m.options
	for _, override := range options {
		merged = merged.merge(override)
	}

	method, err := signingMethod(merged.Algorithm)
	if err != nil {
		return "", err
	}

	registered := merged.registered()

	payload := make(jwt.MapClaims, len(claims)+len(registered))
	maps.Copy(payload, claims)

	now := m.clock.Now()
	payload[claimIssuedAt] = now.Unix()

	if merged.ExpiresIn > 0 {
		payload[claimExpiresAt] = now.Add(merged.ExpiresIn).Unix()
	}

	if merged.NotBefore > 0 {
		payload[claimNotBefore] = now.Add(merged.NotBefore).Unix()
	}

	maps.Copy(payload, registered)

	signed, err := jwt.NewWithClaims(method, payload).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the signature and time-based claims of token against secret.
// The secret is given explicitly so tokens issued by other keys can be checked.
func (m *Manager) Verify(token, secret string) error {
	_, err := m.parse(token, []byte(secret))

	return err
}

// DecodePayload returns the claims of token without verifying it.
func (m *Manager) DecodePayload(token string) (Claims, error) {
	return DecodePayload(token)
}

// DecodePayload returns the claims of token without verifying it. No secret is involved.
func DecodePayload(token string) (Claims, error) {
	claims := jwt.MapClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	return Claims(claims), nil
}

// ValidateRefreshToken verifies token with the manager secret and returns its claims.
func (m *Manager) ValidateRefreshToken(token string) (Claims, error) {
	return m.parse(token, m.secret)
}

// RefreshToken verifies a refresh token and issues a new token carrying the same claims,
// minus iat, exp and nbf, valid for expiresIn (DefaultRefreshExpiresIn when zero).
func (m *Manager) RefreshToken(token string, expiresIn time.Duration) (string, error) {
	claims, err := m.ValidateRefreshToken(token)
	if err != nil {
		return "", err
	}

	delete(claims, claimIssuedAt)
	delete(claims, claimExpiresAt)
	delete(claims, claimNotBefore)

	if expiresIn <= 0 {
		expiresIn = DefaultRefreshExpiresIn
	}

	return m.Sign(claims, SignOptions{
		ExpiresIn: expiresIn,
		Algorithm: m.options.Algorithm,
	})
}

// HandleRefreshRequest exchanges a refresh token for a new token and reports the outcome
// in a form suitable for returning to API clients. Failures are logged.
func (m *Manager) HandleRefreshRequest(ctx context.Context, token string, expiresIn time.Duration) RefreshResult {
	if _, err := m.ValidateRefreshToken(token); err != nil {
		logger.Errorf(ctx, "Refresh token rejected: %v", err)

		return RefreshResult{Error: ErrMalformedToken.Error()}
	}

	newToken, err := m.RefreshToken(token, expiresIn)
	if err != nil {
		logger.Errorf(ctx, "Failed to refresh token: %v", err)

		return RefreshResult{Error: refreshFailedMessage}
	}

	return RefreshResult{
		Success: true,
		Token:   newToken,
	}
}

func (m *Manager) parse(token string, secret []byte) (Claims, error) {
	claims := jwt.MapClaims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{AlgorithmHS256, AlgorithmHS384, AlgorithmHS512}),
		jwt.WithTimeFunc(m.clock.Now),
	)

	_, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return Claims(claims), nil
}

// merge returns o with the non-zero fields of override applied.
func (o SignOptions) merge(override SignOptions) SignOptions {
	if override.ExpiresIn != 0 {
		o.ExpiresIn = override.ExpiresIn
	}

	if override.NotBefore != 0 {
		o.NotBefore = override.NotBefore
	}

	if override.Issuer != "" {
		o.Issuer = override.Issuer
	}

	if override.Subject != "" {
		o.Subject = override.Subject
	}

	if len(override.Audience) > 0 {
		o.Audience = override.Audience
	}

	if override.Algorithm != "" {
		o.Algorithm = override.Algorithm
	}

	return o
}

// registered returns the string-valued registered claims set by o.
func (o SignOptions) registered() jwt.MapClaims {
	result := jwt.MapClaims{}

	if o.Issuer != "" {
		result[claimIssuer] = o.Issuer
	}

	if o.Subject != "" {
		result[claimSubject] = o.Subject
	}

	switch len(o.Audience) {
	case 0:
	case 1:
		result[claimAudience] = o.Audience[0]
	default:
		result[claimAudience] = o.Audience
	}

	return result
}

func signingMethod(algorithm string) (jwt.SigningMethod, error) {
	switch algorithm {
	case "", AlgorithmHS256:
		return jwt.SigningMethodHS256, nil
	case AlgorithmHS384:
		return jwt.SigningMethodHS384, nil
	case AlgorithmHS512:
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
}
