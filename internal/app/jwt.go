package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/utilkit/internal/config"
	"github.com/oshokin/utilkit/internal/constants"
	"github.com/oshokin/utilkit/internal/jwt"
	"github.com/oshokin/utilkit/internal/logger"
)

// JWTSignParams holds the options of the jwt sign command.
type JWTSignParams struct {
	// Claims are string claims given as key=value pairs.
	Claims []string
	// ClaimsJSON is a JSON object merged under Claims.
	ClaimsJSON string
	// Subject sets "sub".
	Subject string
	// Audience sets "aud".
	Audience []string
	// ExpiresIn overrides jwt_expires_in, e.g. "1h" or "7d".
	ExpiresIn string
	// NotBefore delays the token validity, e.g. "5m".
	NotBefore string
	// Algorithm is HS256, HS384 or HS512.
	Algorithm string
}

// JWTVerifyResult is printed by the jwt verify command.
type JWTVerifyResult struct {
	Valid  bool       `json:"valid"            yaml:"valid"`
	Claims jwt.Claims `json:"claims,omitempty" yaml:"claims,omitempty"`
	Error  string     `json:"error,omitempty"  yaml:"error,omitempty"`
}

// newJWTManager creates a manager from the jwt_* settings.
func newJWTManager(cfg *config.Config) (*jwt.Manager, error) {
	return jwt.NewManager(cfg.JWTSecret, jwt.SignOptions{
		ExpiresIn: cfg.ParsedJWTExpiresIn,
		Issuer:    cfg.JWTIssuer,
	})
}

// ExecuteJWTSignCommand signs the given claims and prints the token.
func ExecuteJWTSignCommand(ctx context.Context, cfg *config.Config, params JWTSignParams, w io.Writer) error {
	manager, err := newJWTManager(cfg)
	if err != nil {
		return err
	}

	claims := jwt.Claims{}

	if params.ClaimsJSON != "" {
		if err = json.Unmarshal([]byte(params.ClaimsJSON), &claims); err != nil {
			return fmt.Errorf("failed to parse claims JSON: %w", err)
		}
	}

	stringClaims, err := parseKeyValues(params.Claims)
	if err != nil {
		return err
	}

	for key, val := range stringClaims {
		claims[key] = val
	}

	options := jwt.SignOptions{
		Subject:   params.Subject,
		Audience:  params.Audience,
		Algorithm: params.Algorithm,
	}

	if params.ExpiresIn != "" {
		if options.ExpiresIn, err = jwt.ParseExpiry(params.ExpiresIn); err != nil {
			return err
		}
	}

	if params.NotBefore != "" {
		if options.NotBefore, err = jwt.ParseExpiry(params.NotBefore); err != nil {
			return err
		}
	}

	token, err := manager.Sign(claims, options)
	if err != nil {
		return err
	}

	logger.Debugf(ctx, "Signed token with %d custom claims", len(claims))

	return writeLine(w, token)
}

// ExecuteJWTVerifyCommand checks a token against secret, or jwt_secret when secret is empty,
// and prints the outcome. An invalid token is reported in the output and as the returned error.
func ExecuteJWTVerifyCommand(
	ctx context.Context,
	cfg *config.Config,
	token, secret string,
	format OutputFormat,
	w io.Writer,
) error {
	manager, err := newJWTManager(cfg)
	if err != nil {
		return err
	}

	if secret == "" {
		secret = cfg.JWTSecret
	}

	result := JWTVerifyResult{Valid: true}

	verifyErr := manager.Verify(token, secret)
	if verifyErr != nil {
		logger.Debugf(ctx, "Token rejected: %v", verifyErr)

		result = JWTVerifyResult{Error: verifyErr.Error()}
	} else if result.Claims, err = manager.DecodePayload(token); err != nil {
		return err
	}

	if err = writeResult(w, format, result); err != nil {
		return err
	}

	return verifyErr
}

// ExecuteJWTDecodeCommand prints the claims of a token without verifying it.
// It needs no secret.
func ExecuteJWTDecodeCommand(_ context.Context, token string, format OutputFormat, w io.Writer) error {
	claims, err := jwt.DecodePayload(token)
	if err != nil {
		return err
	}

	return writeResult(w, format, claims)
}

// ExecuteJWTRefreshCommand exchanges a refresh token for a new token valid for jwt_refresh_expires_in.
func ExecuteJWTRefreshCommand(
	ctx context.Context,
	cfg *config.Config,
	token string,
	format OutputFormat,
	w io.Writer,
) error {
	manager, err := newJWTManager(cfg)
	if err != nil {
		return err
	}

	result := manager.HandleRefreshRequest(ctx, token, cfg.ParsedJWTRefreshExpiresIn)

	if err = writeResult(w, format, result); err != nil {
		return err
	}

	if !result.Success {
		return fmt.Errorf("%w: %s", ErrRefreshFailed, result.Error)
	}

	return nil
}

// ExecuteJWTInitSecretCommand generates a random secret and stores it as jwt_secret in the config file.
// An existing secret is kept unless force is set. The secret itself is never printed,
// and the config file is made readable by its owner only.
func ExecuteJWTInitSecretCommand(ctx context.Context, cfg *config.Config, length int, force bool) error {
	if cfg.JWTSecret != "" && !force {
		return ErrSecretAlreadySet
	}

	secret, err := jwt.GenerateSecret(length)
	if err != nil {
		return err
	}

	if err = config.SaveValue(config.KeyJWTSecret, secret); err != nil {
		return err
	}

	cfg.JWTSecret = secret

	configFile := config.FilePath()

	if err = os.Chmod(configFile, constants.SecretFilePermissions); err != nil {
		logger.Warnf(ctx, "Failed to restrict permissions of %s: %v", configFile, err)
	}

	logger.Infof(ctx, "JWT secret saved to %s", configFile)

	return nil
}
