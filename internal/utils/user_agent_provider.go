package utils

//go:generate $MOCKGEN -source=user_agent_provider.go -destination=mocks/user_agent_provider_mock.go

// UserAgentProvider supplies the User-Agent header of outgoing requests.
type UserAgentProvider interface {
	// GetUserAgent returns the value to send.
	GetUserAgent() string
}

// StaticUserAgent is a UserAgentProvider that always returns the same value.
type StaticUserAgent string

// GetUserAgent implements UserAgentProvider.
func (s StaticUserAgent) GetUserAgent() string {
	return string(s)
}
