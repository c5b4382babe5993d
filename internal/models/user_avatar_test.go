package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserAvatarFileName(t *testing.T) {
	png := "png"

	testCases := []struct {
		name     string
		avatar   UserAvatar
		expected string
	}{
		{
			name:     "With extension",
			avatar:   UserAvatar{UserID: 7, Ext: &png},
			expected: "7.png",
		},
		{
			name:     "Without extension",
			avatar:   UserAvatar{UserID: 12},
			expected: "12",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.avatar.FileName())
			// Derivation is pure: repeat calls yield the identical string.
			assert.Equal(t, tc.avatar.FileName(), tc.avatar.FileName())
		})
	}
}
