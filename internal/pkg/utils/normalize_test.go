package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected *float64
	}{
		{"nil input", nil, nil},
		{"plain float", 13.5, ptr(13.5)},
		{"integer", 42, ptr(42.0)},
		{"numeric string", "13.5", ptr(13.5)},
		{"string with whitespace", "  101.25  ", ptr(101.25)},
		{"single trailing comma", "10,", ptr(10.0)},
		{"multiple trailing commas", "45.2,,", ptr(45.2)},
		{"prefix parse with junk suffix", "12.3abc", ptr(12.3)},
		{"negative value", "-7.5", ptr(-7.5)},
		{"leading dot", ".5", ptr(0.5)},
		{"exponent", "1.5e2", ptr(150.0)},
		{"incomplete exponent ignored", "12e", ptr(12.0)},
		{"empty string", "", nil},
		{"only commas", ",,,", nil},
		{"non-numeric string", "abc", nil},
		{"sentinel text", "N/A", nil},
		{"bare sign", "-", nil},
		{"boolean", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeNumber(tt.input)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.expected, *got, 1e-9)
		})
	}
}

func TestNormalizeString(t *testing.T) {
	t.Run("nil input", func(t *testing.T) {
		assert.Nil(t, NormalizeString(nil))
	})

	t.Run("string passes through", func(t *testing.T) {
		got := NormalizeString("4")
		require.NotNil(t, got)
		assert.Equal(t, "4", *got)
	})

	t.Run("number becomes string", func(t *testing.T) {
		got := NormalizeString(3.0)
		require.NotNil(t, got)
		assert.Equal(t, "3", *got)
	})

	t.Run("unsupported type", func(t *testing.T) {
		assert.Nil(t, NormalizeString([]string{"x"}))
	})
}

func ptr(f float64) *float64 {
	return &f
}
