package cinema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTime(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"08:00": true,
		"8:00":  true,
		"09:50": true,
		"12:30": true,
		"20:00": true,
		"20:01": false,
		"7:59":  false,
		"07:59": false,
		"00:00": false,
		"23:59": false,
		"24:00": false,
		"10:60": false,
		"10:5":  true,
		"8:0":   true,
		"8:5":   true,
		"7:5":   false,
		"10:005": false,
		"bad":   false,
		"":      false,
		"10:00 ": false,
		"1000":  false,
	}
	for in, want := range cases {
		assert.Equal(t, want, ValidateTime(in), "ValidateTime(%q)", in)
	}
}

func TestValidateDuration(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidateDuration(1))
	assert.True(t, ValidateDuration(230))
	assert.False(t, ValidateDuration(0))
	assert.False(t, ValidateDuration(-15))
}
