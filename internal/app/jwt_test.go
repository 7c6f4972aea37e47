package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/utilkit/internal/config"
	"github.com/oshokin/utilkit/internal/constants"
	"github.com/oshokin/utilkit/internal/jwt"
)

func testJWTConfig() *config.Config {
	return &config.Config{
		JWTSecret:                 "app-secret",
		JWTIssuer:                 "utilkit",
		ParsedJWTExpiresIn:        time.Hour,
		ParsedJWTRefreshExpiresIn: 24 * time.Hour,
	}
}

// signTestToken signs a token through the command and returns it.
func signTestToken(t *testing.T, cfg *config.Config, params JWTSignParams) string {
	t.Helper()

	var out bytes.Buffer

	require.NoError(t, ExecuteJWTSignCommand(context.Background(), cfg, params, &out))

	return strings.TrimSpace(out.String())
}

// TestExecuteJWTSignCommand tests claim merging and registered claims.
func TestExecuteJWTSignCommand(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()

	token := signTestToken(t, cfg, JWTSignParams{
		Claims:     []string{"user=ant", "role=admin"},
		ClaimsJSON: `{"role": "guest", "scopes": ["read"]}`,
		Subject:    "42",
		Audience:   []string{"api", "web"},
		ExpiresIn:  "2d",
	})

	claims, err := jwt.DecodePayload(token)
	require.NoError(t, err)

	assert.Equal(t, "ant", claims["user"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, []any{"read"}, claims["scopes"])
	assert.Equal(t, "42", claims["sub"])
	assert.Equal(t, "utilkit", claims["iss"])
	assert.Equal(t, []any{"api", "web"}, claims["aud"])

	iat, ok := claims["iat"].(float64)
	require.True(t, ok)

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)

	assert.InDelta(t, (48 * time.Hour).Seconds(), exp-iat, 0)
}

// TestExecuteJWTSignCommand_Errors tests rejected input.
func TestExecuteJWTSignCommand_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		cfg           func() *config.Config
		params        JWTSignParams
		expectedError error
		errorMsg      string
	}{
		{
			name: "missing secret",
			cfg: func() *config.Config {
				cfg := testJWTConfig()
				cfg.JWTSecret = ""

				return cfg
			},
			expectedError: jwt.ErrMissingSecret,
		},
		{
			name:          "bad claim",
			cfg:           testJWTConfig,
			params:        JWTSignParams{Claims: []string{"novalue"}},
			expectedError: ErrInvalidKeyValue,
		},
		{
			name:     "bad claims JSON",
			cfg:      testJWTConfig,
			params:   JWTSignParams{ClaimsJSON: `[1, 2]`},
			errorMsg: "failed to parse claims JSON",
		},
		{
			name:          "bad expiry",
			cfg:           testJWTConfig,
			params:        JWTSignParams{ExpiresIn: "forever"},
			expectedError: jwt.ErrInvalidExpiry,
		},
		{
			name:          "bad algorithm",
			cfg:           testJWTConfig,
			params:        JWTSignParams{Algorithm: "RS256"},
			expectedError: jwt.ErrUnsupportedAlgorithm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ExecuteJWTSignCommand(context.Background(), tt.cfg(), tt.params, &bytes.Buffer{})

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

// TestExecuteJWTVerifyCommand tests valid and rejected tokens.
func TestExecuteJWTVerifyCommand(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	token := signTestToken(t, cfg, JWTSignParams{Claims: []string{"user=bee"}})

	var out bytes.Buffer

	require.NoError(t, ExecuteJWTVerifyCommand(context.Background(), cfg, token, "", OutputFormatJSON, &out))

	var result JWTVerifyResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.True(t, result.Valid)
	assert.Equal(t, "bee", result.Claims["user"])
	assert.Empty(t, result.Error)

	out.Reset()

	err := ExecuteJWTVerifyCommand(context.Background(), cfg, token, "other-secret", OutputFormatYAML, &out)
	require.ErrorIs(t, err, jwt.ErrInvalidToken)
	assert.Contains(t, out.String(), "valid: false")
	assert.Contains(t, out.String(), "error: ")
	assert.NotContains(t, out.String(), "claims:")
}

// TestExecuteJWTDecodeCommand tests decoding without a secret.
func TestExecuteJWTDecodeCommand(t *testing.T) {
	t.Parallel()

	token := signTestToken(t, testJWTConfig(), JWTSignParams{Subject: "7"})

	var out bytes.Buffer

	require.NoError(t, ExecuteJWTDecodeCommand(context.Background(), token, OutputFormatYAML, &out))
	assert.Contains(t, out.String(), "sub: \"7\"\n")
	assert.Contains(t, out.String(), "iss: utilkit\n")

	err := ExecuteJWTDecodeCommand(context.Background(), "garbage", OutputFormatYAML, &out)
	require.ErrorIs(t, err, jwt.ErrMalformedToken)
}

// TestExecuteJWTRefreshCommand tests exchanging a refresh token.
func TestExecuteJWTRefreshCommand(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	refresh := signTestToken(t, cfg, JWTSignParams{Claims: []string{"user=cat"}})

	var out bytes.Buffer

	require.NoError(t, ExecuteJWTRefreshCommand(context.Background(), cfg, refresh, OutputFormatJSON, &out))

	var result jwt.RefreshResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	require.True(t, result.Success)

	claims, err := jwt.DecodePayload(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "cat", claims["user"])

	iat, ok := claims["iat"].(float64)
	require.True(t, ok)

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)

	assert.InDelta(t, cfg.ParsedJWTRefreshExpiresIn.Seconds(), exp-iat, 0)

	out.Reset()

	err = ExecuteJWTRefreshCommand(context.Background(), cfg, "bad token", OutputFormatYAML, &out)
	require.ErrorIs(t, err, ErrRefreshFailed)
	assert.Contains(t, out.String(), "success: false")
}

// TestExecuteJWTInitSecretCommand tests storing a generated secret in the config file.
//
//nolint:paralleltest // SaveValue uses the global viper instance.
func TestExecuteJWTInitSecretCommand(t *testing.T) {
	viper.Reset()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("page_limit: 5\n"), constants.DefaultFilePermissions))

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)
	require.Empty(t, cfg.JWTSecret)

	require.NoError(t, ExecuteJWTInitSecretCommand(context.Background(), cfg, 16, false))

	firstSecret := cfg.JWTSecret
	assert.Len(t, firstSecret, 32)

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "page_limit: 5")
	assert.Contains(t, string(content), firstSecret)

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, constants.SecretFilePermissions, info.Mode().Perm())

	err = ExecuteJWTInitSecretCommand(context.Background(), cfg, 16, false)
	require.ErrorIs(t, err, ErrSecretAlreadySet)
	assert.Equal(t, firstSecret, cfg.JWTSecret)

	require.NoError(t, ExecuteJWTInitSecretCommand(context.Background(), cfg, 0, true))
	assert.NotEqual(t, firstSecret, cfg.JWTSecret)
	assert.Len(t, cfg.JWTSecret, 2*jwt.DefaultSecretLength)
}
