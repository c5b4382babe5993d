package models

import (
	"github.com/gitchest/gitchest/internal/apperror"
)

// Platform identifies a supported code-hosting service.
type Platform string

const (
	PlatformBitbucket Platform = "bitbucket"
	PlatformGitHub    Platform = "github"
	PlatformGitLab    Platform = "gitlab"
	PlatformGitea     Platform = "gitea"
)

// Platforms returns the closed set of supported platforms.
func Platforms() []Platform {
	return []Platform{PlatformBitbucket, PlatformGitHub, PlatformGitLab, PlatformGitea}
}

// ParsePlatform parses the canonical lowercase tag stored in the database.
// Matching is exact and case-sensitive: persisted values are written from the
// constants above, so anything else means corrupted state.
func ParsePlatform(tag string) (Platform, error) {
	switch Platform(tag) {
	case PlatformBitbucket, PlatformGitHub, PlatformGitLab, PlatformGitea:
		return Platform(tag), nil
	}
	return "", apperror.UnknownPlatform(tag)
}

func (p Platform) String() string {
	return string(p)
}
