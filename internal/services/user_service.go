package services

import (
	"context"
	"time"

	"github.com/gitchest/gitchest/internal/assets"
	"github.com/gitchest/gitchest/internal/models"
	"github.com/gitchest/gitchest/internal/repositories"
	"github.com/gitchest/gitchest/pkg/logger"
	"github.com/sirupsen/logrus"
)

// GitHubFetcher fetches a live GitHub profile by login.
type GitHubFetcher interface {
	FetchUser(ctx context.Context, login string) (*models.GitHubUser, error)
}

// UserService aggregates the stored identity row, the cached avatar path and
// a live platform profile into one view, and owns the create/delete lifecycle
// of the stored row.
type UserService struct {
	userRepo   *repositories.UserRepository
	avatarRepo *repositories.UserAvatarRepository
	assets     *assets.Resolver
	github     GitHubFetcher
}

func NewUserService(
	userRepo *repositories.UserRepository,
	avatarRepo *repositories.UserAvatarRepository,
	assetResolver *assets.Resolver,
	github GitHubFetcher,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		avatarRepo: avatarRepo,
		assets:     assetResolver,
		github:     github,
	}
}

// GetFullUser builds the unified view for a tracked user: the stored row, the
// resolved avatar path and a freshly fetched platform profile. Aggregation is
// all-or-nothing; any sub-step failure aborts the whole request with no
// partial view.
func (s *UserService) GetFullUser(ctx context.Context, id int64) (*models.FullUser, error) {
	start := time.Now()

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		s.logError("get full user", id, start, err)
		return nil, err
	}

	avatar, err := s.avatarRepo.GetByUserID(ctx, id)
	if err != nil {
		// A tracked user without an avatar row breaks the registration
		// invariant; the request fails rather than degrade.
		s.logError("get full user", id, start, err)
		return nil, err
	}
	avatarPath := s.assets.Resolve(assets.AvatarFile{Name: avatar.FileName()})

	platform, err := models.ParsePlatform(user.Platform)
	if err != nil {
		s.logError("get full user", id, start, err)
		return nil, err
	}

	var platformUser models.PlatformUser
	switch platform {
	case models.PlatformBitbucket:
		// Not implemented yet; the empty variant is a success case.
		platformUser = models.BitbucketUser{}
	case models.PlatformGitHub:
		profile, err := s.github.FetchUser(ctx, user.Username)
		if err != nil {
			s.logError("get full user", id, start, err)
			return nil, err
		}
		platformUser = profile
	case models.PlatformGitLab:
		// Not implemented yet; the empty variant is a success case.
		platformUser = models.GitLabUser{}
	case models.PlatformGitea:
		// Not implemented yet; the empty variant is a success case.
		platformUser = models.GiteaUser{}
	}

	logger.WithFields(logrus.Fields{
		"user":    user.Username,
		"elapsed": time.Since(start).String(),
	}).Info("got full user")

	return &models.FullUser{
		Username:     user.Username,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
		Avatar:       avatarPath,
		PlatformUser: platformUser,
	}, nil
}

// AddUser registers a user for tracking and returns the new id. The platform
// tag is validated against the supported set before anything is written, and
// the avatar row is created alongside the user row so aggregation can rely on
// the 1:1 relation. Callers pre-check Exists to avoid duplicates.
func (s *UserService) AddUser(ctx context.Context, username, platform string) (int64, error) {
	start := time.Now()

	if _, err := models.ParsePlatform(platform); err != nil {
		s.logError("add user", 0, start, err)
		return 0, err
	}

	id, err := s.userRepo.Create(ctx, username, platform)
	if err != nil {
		s.logError("add user", 0, start, err)
		return 0, err
	}

	if err := s.avatarRepo.Upsert(ctx, &models.UserAvatar{UserID: id}); err != nil {
		s.logError("add user", id, start, err)
		return 0, err
	}

	logger.WithFields(logrus.Fields{
		"user":    username,
		"user_id": id,
		"elapsed": time.Since(start).String(),
	}).Info("added user")

	return id, nil
}

// Exists reports whether a user with the given external username is tracked.
func (s *UserService) Exists(ctx context.Context, username string) (bool, error) {
	return s.userRepo.Exists(ctx, username)
}

// RemoveUser deletes the stored user row. The avatar row and any cached
// avatar file stay behind on purpose; AddUser's upsert reclaims the row if
// the id is ever reused.
func (s *UserService) RemoveUser(ctx context.Context, id int64) error {
	start := time.Now()

	if err := s.userRepo.Delete(ctx, id); err != nil {
		s.logError("remove user", id, start, err)
		return err
	}

	logger.WithFields(logrus.Fields{
		"user_id": id,
		"elapsed": time.Since(start).String(),
	}).Info("deleted user")

	return nil
}

func (s *UserService) logError(op string, id int64, start time.Time, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"op":      op,
		"user_id": id,
		"elapsed": time.Since(start).String(),
	}).Error("operation failed")
}
