package models

// GitHubUser is the decoded GitHub profile for a tracked user.
// URL-related properties other than the avatar are not included.
type GitHubUser struct {
	Login           string  `json:"login"`
	ID              int64   `json:"id"`
	NodeID          string  `json:"node_id"`
	AvatarURL       string  `json:"avatar_url"`
	GravatarID      string  `json:"gravatar_id"`
	Type            string  `json:"type"` // "User" or "Organization"
	SiteAdmin       bool    `json:"site_admin"`
	Name            *string `json:"name"`
	Company         *string `json:"company"`
	Blog            string  `json:"blog"`
	Location        *string `json:"location"`
	Hireable        *bool   `json:"hireable"`
	Bio             *string `json:"bio"`
	TwitterUsername *string `json:"twitter_username"`
	PublicRepos     int     `json:"public_repos"`
	PublicGists     int     `json:"public_gists"`
	Followers       int     `json:"followers"`
	Following       int     `json:"following"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}
