package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gitchest/gitchest/internal/apperror"
	"github.com/gitchest/gitchest/internal/models"
)

type UserAvatarRepository struct {
	db *sql.DB
}

func NewUserAvatarRepository(db *sql.DB) *UserAvatarRepository {
	return &UserAvatarRepository{
		db: db,
	}
}

// GetByUserID retrieves the avatar row for a user. Every tracked user gets an
// avatar row at registration time, so zero rows is apperror.ErrNotFound, not
// an empty default.
func (r *UserAvatarRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserAvatar, error) {
	query := `SELECT user_id, ext FROM user_avatar WHERE user_id = ?`

	var avatar models.UserAvatar
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&avatar.UserID, &avatar.Ext)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("user avatar", userID)
	}
	if err != nil {
		return nil, apperror.Storage("get user avatar", err)
	}

	return &avatar, nil
}

// Upsert writes the avatar row for a user, replacing any row left over from a
// previously removed user with the same id.
func (r *UserAvatarRepository) Upsert(ctx context.Context, avatar *models.UserAvatar) error {
	query := `INSERT OR REPLACE INTO user_avatar (user_id, ext) VALUES (?, ?)`

	if _, err := r.db.ExecContext(ctx, query, avatar.UserID, avatar.Ext); err != nil {
		return apperror.Storage("upsert user avatar", err)
	}
	return nil
}
