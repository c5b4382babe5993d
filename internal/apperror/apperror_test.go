package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelMatching(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"NotFound", NotFound("user", 42), ErrNotFound},
		{"UnknownPlatform", UnknownPlatform("bogus"), ErrUnknownPlatform},
		{"FetchFailed", FetchFailed("github", "octocat", errors.New("boom")), ErrFetch},
		{"Storage", Storage("get user", errors.New("locked")), ErrStorage},
		{"Conflict", Conflict("octocat"), ErrConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, errors.Is(tc.err, tc.sentinel))
		})
	}
}

func TestSentinelMatchingThroughWrapping(t *testing.T) {
	err := fmt.Errorf("loading user: %w", NotFound("user", 7))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrStorage))
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "user not found with id 42", NotFound("user", 42).Error())
	assert.Equal(t, `unknown platform "bogus"`, UnknownPlatform("bogus").Error())

	withCause := Storage("delete user", errors.New("database is locked"))
	assert.Contains(t, withCause.Error(), "delete user")
	assert.Contains(t, withCause.Error(), "database is locked")
}
