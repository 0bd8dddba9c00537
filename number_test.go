package forthcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_isNumber(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"", false},
		{"-", false},
		{"0", true},
		{"0x", false},
		{"0xFF", true},
		{"0xg1", false},
		{"0755", true},
		{"0759", false},
		{"123", true},
		{"-123", true},
		{"12a", false},
		{"+5", false},
	} {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, isNumber(tc.in))
		})
	}
}

func Test_parseNumber(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want uint64
	}{
		{"0", 0},
		{"42", 42},
		{"0xFF", 255},
		{"010", 8},
		{"-1", ^uint64(0)},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseNumber(tc.in)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
