package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_utils "github.com/oshokin/utilkit/internal/utils/mocks"
)

// TestStaticUserAgent tests that the static provider returns its own value.
func TestStaticUserAgent(t *testing.T) {
	t.Parallel()

	for _, userAgent := range []string{"", "utilkit/0.1.0", "Mozilla/5.0 (X11; Linux x86_64)"} {
		var provider UserAgentProvider = StaticUserAgent(userAgent)

		assert.Equal(t, userAgent, provider.GetUserAgent())
	}
}

// TestUserAgentProvider_Mock tests that the generated mock satisfies the interface.
func TestUserAgentProvider_Mock(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	provider := mock_utils.NewMockUserAgentProvider(ctrl)
	provider.EXPECT().GetUserAgent().Return("mocked/1.0").Times(2)

	var _ UserAgentProvider = provider

	assert.Equal(t, "mocked/1.0", provider.GetUserAgent())
	assert.Equal(t, "mocked/1.0", provider.GetUserAgent())
}
