// Package jwt signs, verifies and refreshes HMAC-signed JSON Web Tokens.
// It wraps github.com/golang-jwt/jwt/v5 with default signing options,
// refresh-token rotation and human-friendly expiry parsing ("15m", "7d").
package jwt
