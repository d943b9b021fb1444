package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_languageCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "en-US"},
		{in: "en", want: "en-US"},
		{in: "EN", want: "en-US"},
		{in: "ja", want: "ja-JP"},
		{in: "en-GB", want: "en-GB"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, languageCode(tc.in))
		})
	}
}
