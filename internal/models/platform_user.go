package models

// PlatformUser is the platform-specific half of a full user view. Exactly one
// variant exists per Platform. Platforms without a live fetch implementation
// carry an empty variant; that is an intentional success case, not an error.
// The set is closed: new platforms are added here and in ParsePlatform, never
// through dynamic registration.
type PlatformUser interface {
	// Tag is the variant name used in the serialized envelope.
	Tag() string
	// payload is the serialized data of the variant, nil when empty.
	payload() interface{}
}

// BitbucketUser is the empty Bitbucket variant; no fetcher exists yet.
type BitbucketUser struct{}

func (BitbucketUser) Tag() string          { return "Bitbucket" }
func (BitbucketUser) payload() interface{} { return nil }

// GitLabUser is the empty GitLab variant; no fetcher exists yet.
type GitLabUser struct{}

func (GitLabUser) Tag() string          { return "GitLab" }
func (GitLabUser) payload() interface{} { return nil }

// GiteaUser is the empty Gitea variant; no fetcher exists yet.
type GiteaUser struct{}

func (GiteaUser) Tag() string          { return "Gitea" }
func (GiteaUser) payload() interface{} { return nil }

func (u *GitHubUser) Tag() string          { return "GitHub" }
func (u *GitHubUser) payload() interface{} { return u }
