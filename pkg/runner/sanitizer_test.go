package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInput_SizeLimit(t *testing.T) {
	_, err := SanitizeInput(strings.Repeat("M", DefaultMaxInputSize))
	assert.NoError(t, err)

	_, err = SanitizeInput(strings.Repeat("M", DefaultMaxInputSize+1))
	assert.ErrorIs(t, err, ErrInputTooLarge)
}

func TestSanitizeInput_ControlChars(t *testing.T) {
	tests := map[string]struct {
		in, want string
	}{
		"plain":            {"1 + 2", "1 + 2"},
		"crlf":             {"X - V\r\n", "X - V"},
		"tabs kept inside": {"X\t-\tV", "X\t-\tV"},
		"escape dropped":   {"\x1b[31mI + I\x1b[0m", "[31mI + I[0m"},
		"null dropped":     {"1\x00 + 2", "1 + 2"},
		"bell dropped":     {"1 + 2\x07", "1 + 2"},
		"surrounding":      {"  \tVI / III \n", "VI / III"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := SanitizeInput(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeInput_EnvOverride(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "10")

	_, err := SanitizeInput("MMMM * MMMM")
	assert.ErrorIs(t, err, ErrInputTooLarge)

	got, err := SanitizeInput("M * M")
	require.NoError(t, err)
	assert.Equal(t, "M * M", got)
}

func TestSanitizeInput_EnvOverrideIgnoresGarbage(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "-3")
	assert.Equal(t, DefaultMaxInputSize, maxInputSize())
}

func TestSanitizeInput_InvalidUTF8(t *testing.T) {
	_, err := SanitizeInput("I + \xbd\xb2")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}
