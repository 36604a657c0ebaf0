package numeral

import (
	"strings"
	"testing"

	"github.com/aretw0/numeral/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"I", 1},
		{"III", 3},
		{"IV", 4},
		{"VI", 6},
		{"IX", 9},
		{"XIV", 14},
		{"XL", 40},
		{"XLIX", 49},
		{"XC", 90},
		{"CM", 900},
		{"MCMXCIV", 1994},
		{"MMMCMXCIX", 3999},
		// Malformed numerals decode without error.
		{"IIII", 4},
		{"VX", 15},
		{"IL", 51},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.in))
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{1, "I"},
		{4, "IV"},
		{5, "V"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{44, "XLIV"},
		{50, "L"},
		{89, "LXXXIX"},
		{90, "XC"},
		{400, "CCCC"},
		{900, "CM"},
		{1994, "MCMXCIV"},
		{3999, "MMMCMXCIX"},
		{4000, "MMMM"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.in))
		})
	}
}

func TestEncode_OutOfRangeIsEmpty(t *testing.T) {
	assert.Equal(t, "", Encode(0))
	assert.Equal(t, "", Encode(-7))
	assert.Equal(t, "", Encode(MaxRoman+1))
	assert.Equal(t, "", Encode(1<<62))
}

func TestRoundTrip(t *testing.T) {
	for n := int64(1); n <= 5000; n++ {
		enc := Encode(n)
		require.Equal(t, n, Decode(enc), "round trip failed for %d (%s)", n, enc)

		// The encoder never repeats L or V.
		require.LessOrEqual(t, strings.Count(enc, "L"), 1, "value %d encoded as %s", n, enc)
		require.LessOrEqual(t, strings.Count(enc, "V"), 1, "value %d encoded as %s", n, enc)
	}
}

func TestRoman_Parse(t *testing.T) {
	r := NewRoman()

	tests := []struct {
		name   string
		input  string
		want   domain.Expression
		wantOK bool
	}{
		{"spaced", "VI / III", domain.NewExpression(6, domain.OpDiv, 3), true},
		{"compact", "X*II", domain.NewExpression(10, domain.OpMul, 2), true},
		{"subtractive", "XC - IX", domain.NewExpression(90, domain.OpSub, 9), true},
		{"arabic", "1 + 2", domain.Expression{}, false},
		{"mixed", "I + 1", domain.Expression{}, false},
		{"lowercase", "i + ii", domain.Expression{}, false},
		{"no operator", "X", domain.Expression{}, false},
		{"three operands", "I + I + I", domain.Expression{}, false},
		{"unsupported symbol D", "D + I", domain.Expression{}, false},
		{"leading space", " I + I", domain.Expression{}, false},
		{"trailing newline", "II * V\n", domain.NewExpression(2, domain.OpMul, 5), true},
		{"trailing crlf", "II * V\r\n", domain.NewExpression(2, domain.OpMul, 5), true},
		{"two trailing newlines", "II * V\n\n", domain.Expression{}, false},
		{"trailing space", "II * V ", domain.Expression{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Parse(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoman_IsValid(t *testing.T) {
	r := NewRoman()

	assert.True(t, r.IsValid(domain.NewExpression(2, domain.OpSub, 1)))
	assert.False(t, r.IsValid(domain.NewExpression(1, domain.OpSub, 1)))
	assert.False(t, r.IsValid(domain.NewExpression(1, domain.OpSub, 2)))
	assert.True(t, r.IsValid(domain.NewExpression(1, domain.OpAdd, 2)))
	assert.True(t, r.IsValid(domain.NewExpression(1, domain.OpDiv, 2)))
}

func TestRoman_Format(t *testing.T) {
	r := NewRoman()

	got, err := r.Format(2)
	require.NoError(t, err)
	assert.Equal(t, "II", got)

	_, err = r.Format(0)
	assert.ErrorIs(t, err, domain.ErrNotRepresentable)

	_, err = r.Format(-3)
	assert.ErrorIs(t, err, domain.ErrNotRepresentable)

	got, err = r.Format(MaxRoman)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("M", MaxRoman/1000), got)

	_, err = r.Format(MaxRoman + 1)
	assert.ErrorIs(t, err, domain.ErrNotRepresentable)
}
