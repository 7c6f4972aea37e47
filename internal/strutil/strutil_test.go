package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCasing tests Capitalize, TitleCase and PascalCase.
func TestCasing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input              string
		expectedCapitalize string
		expectedTitle      string
		expectedPascal     string
	}{
		{
			input:              "hello world",
			expectedCapitalize: "Hello world",
			expectedTitle:      "Hello World",
			expectedPascal:     "HelloWorld",
		},
		{
			input:              "snake_case-and  SPACES",
			expectedCapitalize: "Snake_case-and  SPACES",
			expectedTitle:      "Snake Case And Spaces",
			expectedPascal:     "SnakeCaseAndSpaces",
		},
		{
			input:              "__ünïcode__wörds",
			expectedCapitalize: "__ünïcode__wörds",
			expectedTitle:      "Ünïcode Wörds",
			expectedPascal:     "ÜnïcodeWörds",
		},
		{
			input:              "",
			expectedCapitalize: "",
			expectedTitle:      "",
			expectedPascal:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expectedCapitalize, Capitalize(tt.input))
			assert.Equal(t, tt.expectedTitle, TitleCase(tt.input))
			assert.Equal(t, tt.expectedPascal, PascalCase(tt.input))
		})
	}
}

// TestTruncate tests rune-aware truncation.
func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello...", Truncate("hello world", 5))
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "при...", Truncate("привет", 3))
	assert.Equal(t, "...", Truncate("abc", -1))
	assert.Empty(t, Truncate("", 0))
}

// TestIsAlpha tests letter-only checks.
func TestIsAlpha(t *testing.T) {
	t.Parallel()

	assert.True(t, IsAlpha("Hello", false))
	assert.False(t, IsAlpha("Hello World", false))
	assert.True(t, IsAlpha("Hello World", true))
	assert.False(t, IsAlpha("Hello1", true))
	assert.False(t, IsAlpha("", true))
}

// TestSlugify tests slug generation.
func TestSlugify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello-world-2024", Slugify("  Hello, World! 2024 "))
	assert.Equal(t, "a-b", Slugify("a__b"))
	assert.Empty(t, Slugify("!!!"))
}

// TestValidators tests the email, URL and phone checks.
func TestValidators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		check    func(string) bool
		input    string
		expected bool
	}{
		{name: "email", check: IsEmail, input: "ant@example.com", expected: true},
		{name: "email without tld", check: IsEmail, input: "ant@example", expected: false},
		{name: "email with space", check: IsEmail, input: "a nt@example.com", expected: false},
		{name: "url", check: IsURL, input: "https://example.com/path?q=1", expected: true},
		{name: "url without scheme", check: IsURL, input: "example.com", expected: false},
		{name: "url garbage", check: IsURL, input: "://", expected: false},
		{name: "phone", check: IsPhoneNumber, input: "+14155552671", expected: true},
		{name: "phone without plus", check: IsPhoneNumber, input: "14155552671", expected: true},
		{name: "phone leading zero", check: IsPhoneNumber, input: "+04155552671", expected: false},
		{name: "phone too long", check: IsPhoneNumber, input: "+1234567890123456", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.check(tt.input))
		})
	}
}

// TestIsEmpty tests emptiness across Go shapes.
func TestIsEmpty(t *testing.T) {
	t.Parallel()

	var nilSlice []string

	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty(nilSlice))
	assert.True(t, IsEmpty([]int{}))
	assert.True(t, IsEmpty(map[string]int{}))
	assert.True(t, IsEmpty(struct{}{}))
	assert.False(t, IsEmpty(0))
	assert.False(t, IsEmpty(false))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty([]int{0}))
	assert.False(t, IsEmpty(make(chan int)))
}
