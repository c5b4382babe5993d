package services

import (
	"context"
	"net/http"
	"time"

	"github.com/gitchest/gitchest/internal/apperror"
	"github.com/gitchest/gitchest/internal/models"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubService is the live profile fetcher for the GitHub platform.
type GitHubService struct {
	client *github.Client
}

// NewGitHubService creates the service with an optional API token. Without a
// token, lookups run against the public unauthenticated rate limits.
func NewGitHubService(token string) *GitHubService {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	return &GitHubService{
		client: github.NewClient(httpClient),
	}
}

// NewGitHubServiceWithClient creates the service over a pre-built client.
func NewGitHubServiceWithClient(client *github.Client) *GitHubService {
	return &GitHubService{
		client: client,
	}
}

// FetchUser looks up a GitHub profile by login and decodes it into the
// application's profile shape. Network, decode and upstream failures all
// surface as apperror.ErrFetch.
func (s *GitHubService) FetchUser(ctx context.Context, login string) (*models.GitHubUser, error) {
	user, _, err := s.client.Users.Get(ctx, login)
	if err != nil {
		return nil, apperror.FetchFailed("github", login, err)
	}

	profile := &models.GitHubUser{
		Login:           user.GetLogin(),
		ID:              user.GetID(),
		NodeID:          user.GetNodeID(),
		AvatarURL:       user.GetAvatarURL(),
		GravatarID:      user.GetGravatarID(),
		Type:            user.GetType(),
		SiteAdmin:       user.GetSiteAdmin(),
		Name:            user.Name,
		Company:         user.Company,
		Blog:            user.GetBlog(),
		Location:        user.Location,
		Hireable:        user.Hireable,
		Bio:             user.Bio,
		TwitterUsername: user.TwitterUsername,
		PublicRepos:     user.GetPublicRepos(),
		PublicGists:     user.GetPublicGists(),
		Followers:       user.GetFollowers(),
		Following:       user.GetFollowing(),
	}
	if user.CreatedAt != nil {
		profile.CreatedAt = user.CreatedAt.UTC().Format(time.RFC3339)
	}
	if user.UpdatedAt != nil {
		profile.UpdatedAt = user.UpdatedAt.UTC().Format(time.RFC3339)
	}

	return profile, nil
}
