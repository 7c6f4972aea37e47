package jwt

import "errors"

var (
	// ErrMissingSecret indicates that the manager was created without a signing secret.
	ErrMissingSecret = errors.New("missing secret key")

	// ErrUnsupportedAlgorithm indicates an algorithm other than HS256, HS384 or HS512.
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")

	// ErrMalformedToken indicates that the token could not be decoded.
	ErrMalformedToken = errors.New("JWT malformed")

	// ErrInvalidToken indicates that the token failed signature or claim validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidExpiry indicates an expiry that ParseExpiry does not understand.
	ErrInvalidExpiry = errors.New("invalid expiry")
)
