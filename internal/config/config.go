package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/utilkit/internal/constants"
	"github.com/oshokin/utilkit/internal/jwt"
	"github.com/oshokin/utilkit/internal/logger"
	"github.com/oshokin/utilkit/internal/version"
)

// Config holds all configuration settings.
type Config struct {
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// HTTPTimeout is the default per-request timeout (e.g., "10s").
	HTTPTimeout string `mapstructure:"http_timeout"`
	// HTTPUserAgent is the User-Agent sent when a request does not set one.
	HTTPUserAgent string `mapstructure:"http_user_agent"`
	// HTTPMaxLogLength caps logged request/response dumps (e.g., "1MB", "64KiB").
	HTTPMaxLogLength string `mapstructure:"http_max_log_length"`
	// HTTPCacheSize is the number of GET responses kept in memory. Zero disables caching.
	HTTPCacheSize int `mapstructure:"http_cache_size"`
	// HTTPCacheTTL is how long a cached GET response stays fresh (e.g., "5m").
	HTTPCacheTTL string `mapstructure:"http_cache_ttl"`
	// RetryAttemptsCount is the number of attempts for requests failing with 429 or 5xx.
	RetryAttemptsCount int64 `mapstructure:"retry_attempts_count"`
	// MinRetryPause is the minimum pause duration before retrying.
	MinRetryPause string `mapstructure:"min_retry_pause"`
	// MaxRetryPause is the maximum pause duration before retrying.
	MaxRetryPause string `mapstructure:"max_retry_pause"`
	// JWTSecret is the HMAC secret for signing tokens.
	JWTSecret string `mapstructure:"jwt_secret"`
	// JWTExpiresIn is the default lifetime of signed tokens (e.g., "15m", "7d").
	JWTExpiresIn string `mapstructure:"jwt_expires_in"`
	// JWTIssuer is the default "iss" claim.
	JWTIssuer string `mapstructure:"jwt_issuer"`
	// JWTRefreshExpiresIn is the lifetime of tokens issued on refresh.
	JWTRefreshExpiresIn string `mapstructure:"jwt_refresh_expires_in"`
	// PageLimit is the default page size of the paginate command.
	PageLimit int `mapstructure:"page_limit"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedHTTPTimeout is the parsed request timeout.
	ParsedHTTPTimeout time.Duration
	// ParsedHTTPMaxLogLength is the parsed dump size limit in bytes.
	ParsedHTTPMaxLogLength uint64
	// ParsedHTTPCacheTTL is the parsed cache entry lifetime.
	ParsedHTTPCacheTTL time.Duration
	// ParsedMinRetryPause is the parsed minimum retry pause duration.
	ParsedMinRetryPause time.Duration
	// ParsedMaxRetryPause is the parsed maximum retry pause duration.
	ParsedMaxRetryPause time.Duration
	// ParsedJWTExpiresIn is the parsed token lifetime.
	ParsedJWTExpiresIn time.Duration
	// ParsedJWTRefreshExpiresIn is the parsed refreshed token lifetime.
	ParsedJWTRefreshExpiresIn time.Duration
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".utilkit.yaml"

	// EnvPrefix prefixes environment overrides, e.g. UTILKIT_LOG_LEVEL.
	EnvPrefix = "UTILKIT"

	// DefaultMaxLogLength is the default maximum size (in bytes) of a logged HTTP dump.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// DefaultHTTPTimeout is the default per-request timeout.
	DefaultHTTPTimeout = 10 * time.Second

	// DefaultHTTPCacheSize is the default number of cached GET responses.
	DefaultHTTPCacheSize = 128

	// DefaultPageLimit is the default page size of the paginate command.
	DefaultPageLimit = 10
)

// Configuration keys.
const (
	KeyLogLevel            = "log_level"
	KeyHTTPTimeout         = "http_timeout"
	KeyHTTPUserAgent       = "http_user_agent"
	KeyHTTPMaxLogLength    = "http_max_log_length"
	KeyHTTPCacheSize       = "http_cache_size"
	KeyHTTPCacheTTL        = "http_cache_ttl"
	KeyRetryAttemptsCount  = "retry_attempts_count"
	KeyMinRetryPause       = "min_retry_pause"
	KeyMaxRetryPause       = "max_retry_pause"
	KeyJWTSecret           = "jwt_secret"
	KeyJWTExpiresIn        = "jwt_expires_in"
	KeyJWTIssuer           = "jwt_issuer"
	KeyJWTRefreshExpiresIn = "jwt_refresh_expires_in"
	KeyPageLimit           = "page_limit"
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidHTTPTimeout indicates that the HTTP timeout is invalid.
	ErrInvalidHTTPTimeout = errors.New("http_timeout must be positive")
	// ErrInvalidCacheSize indicates that the HTTP cache size is invalid.
	ErrInvalidCacheSize = errors.New("http_cache_size cannot be negative")
	// ErrInvalidCacheTTL indicates that the HTTP cache TTL is invalid.
	ErrInvalidCacheTTL = errors.New("http_cache_ttl must be positive")
	// ErrInvalidRetryAttempts indicates that the retry attempts count is invalid.
	ErrInvalidRetryAttempts = errors.New("retry attempts count must a positive integer")
	// ErrInvalidMinRetryPause indicates that the min retry pause duration is invalid.
	ErrInvalidMinRetryPause = errors.New("min_retry_pause must be positive")
	// ErrInvalidMaxRetryPause indicates that the max retry pause duration is invalid.
	ErrInvalidMaxRetryPause = errors.New("max_retry_pause must be positive")
	// ErrInvalidPageLimit indicates that the default page limit is invalid.
	ErrInvalidPageLimit = errors.New("page_limit must be a positive integer")
)

// DefaultUserAgent returns the User-Agent used when none is configured.
func DefaultUserAgent() string {
	return "utilkit/" + version.Short()
}

// SetDefaults registers default values for every key and enables environment overrides.
func SetDefaults() {
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyHTTPTimeout, DefaultHTTPTimeout.String())
	viper.SetDefault(KeyHTTPUserAgent, DefaultUserAgent())
	viper.SetDefault(KeyHTTPMaxLogLength, humanize.IBytes(DefaultMaxLogLength))
	viper.SetDefault(KeyHTTPCacheSize, DefaultHTTPCacheSize)
	viper.SetDefault(KeyHTTPCacheTTL, "5m")
	viper.SetDefault(KeyRetryAttemptsCount, 3)
	viper.SetDefault(KeyMinRetryPause, "500ms")
	viper.SetDefault(KeyMaxRetryPause, "2s")
	viper.SetDefault(KeyJWTSecret, "")
	viper.SetDefault(KeyJWTExpiresIn, "15m")
	viper.SetDefault(KeyJWTIssuer, "utilkit")
	viper.SetDefault(KeyJWTRefreshExpiresIn, "7d")
	viper.SetDefault(KeyPageLimit, DefaultPageLimit)

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()
}

// LoadConfig loads configuration settings from a YAML file, defaults and the environment.
// An empty configFilename means DefaultConfigFilename, which may be absent;
// an explicitly named file must exist.
func LoadConfig(configFilename string) (*Config, error) {
	isDefaultFile := configFilename == ""
	if isDefaultFile {
		configFilename = DefaultConfigFilename
	}

	SetDefaults()
	viper.SetConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		if !isDefaultFile || !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
//
//nolint:funlen,cyclop // Validation functions naturally have high complexity and length due to sequential checks.
func ValidateConfig(cfg *Config) error {
	var err error

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	if cfg.ParsedHTTPTimeout, err = parsePositiveDuration(cfg.HTTPTimeout, ErrInvalidHTTPTimeout); err != nil {
		return err
	}

	if strings.TrimSpace(cfg.HTTPUserAgent) == "" {
		cfg.HTTPUserAgent = DefaultUserAgent()
	}

	cfg.ParsedHTTPMaxLogLength = DefaultMaxLogLength

	if maxLogLength := strings.TrimSpace(cfg.HTTPMaxLogLength); maxLogLength != "" {
		cfg.ParsedHTTPMaxLogLength, err = humanize.ParseBytes(maxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse http max log length: %w", err)
		}
	}

	if cfg.HTTPCacheSize < 0 {
		return ErrInvalidCacheSize
	}

	if cfg.HTTPCacheSize > 0 {
		if cfg.ParsedHTTPCacheTTL, err = parsePositiveDuration(cfg.HTTPCacheTTL, ErrInvalidCacheTTL); err != nil {
			return err
		}
	}

	if cfg.RetryAttemptsCount <= 0 {
		return ErrInvalidRetryAttempts
	}

	if cfg.ParsedMinRetryPause, err = parsePositiveDuration(cfg.MinRetryPause, ErrInvalidMinRetryPause); err != nil {
		return err
	}

	if cfg.ParsedMaxRetryPause, err = parsePositiveDuration(cfg.MaxRetryPause, ErrInvalidMaxRetryPause); err != nil {
		return err
	}

	if cfg.ParsedJWTExpiresIn, err = jwt.ParseExpiry(cfg.JWTExpiresIn); err != nil {
		return fmt.Errorf("failed to parse jwt expires in: %w", err)
	}

	if cfg.ParsedJWTRefreshExpiresIn, err = jwt.ParseExpiry(cfg.JWTRefreshExpiresIn); err != nil {
		return fmt.Errorf("failed to parse jwt refresh expires in: %w", err)
	}

	if cfg.PageLimit <= 0 {
		return ErrInvalidPageLimit
	}

	return nil
}

// parsePositiveDuration parses value and reports errNotPositive for zero or negative durations.
func parsePositiveDuration(value string, errNotPositive error) (time.Duration, error) {
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errNotPositive, err)
	}

	if parsed <= 0 {
		return 0, errNotPositive
	}

	return parsed, nil
}

// SaveValue sets key to value in the config file while preserving the original format and order.
// A key missing from the file is appended. A missing file is created by viper.
func SaveValue(key, value string) error {
	configFile := FilePath()

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, key, value, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err = setValueInNode(&node, key, value); err != nil {
		return err
	}

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	viper.Set(key, value)

	return nil
}

// FilePath returns the path of the loaded config file, or the default file name.
func FilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile, key, value string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// File doesn't exist, create it with viper.
	viper.Set(key, value)

	if err = viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// ErrNotMapping indicates that the config file's root is not a YAML mapping.
var ErrNotMapping = errors.New("config file root is not a mapping")

// setValueInNode sets key in the root mapping of the YAML document, keeping the value's style.
func setValueInNode(node *yaml.Node, key, value string) error {
	// An empty file parses to a zero node.
	if node.Kind == 0 {
		node.Kind = yaml.DocumentNode
	}

	if len(node.Content) == 0 {
		node.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
	}

	// The root node is a document node, content[0] is the actual map.
	mapNode := node.Content[0]
	if mapNode.Kind != yaml.MappingNode {
		return ErrNotMapping
	}

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value != key {
			continue
		}

		valueNode := mapNode.Content[i+1]
		valueNode.Kind = yaml.ScalarNode
		valueNode.Tag = "!!str"
		valueNode.Value = value

		// Ensure it's quoted if it contains special characters.
		if valueNode.Style == 0 {
			valueNode.Style = yaml.DoubleQuotedStyle
		}

		return nil
	}

	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: yaml.DoubleQuotedStyle},
	)

	return nil
}
