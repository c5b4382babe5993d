package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gitchest/gitchest/internal/apperror"
	"github.com/gitchest/gitchest/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a new user row and returns its id. Both timestamps are set
// to the call time. No uniqueness check happens here; callers pre-check with
// Exists to avoid duplicate registration.
func (r *UserRepository) Create(ctx context.Context, username, platform string) (int64, error) {
	query := `INSERT INTO user (platform, user, created_at, updated_at) VALUES (?, ?, ?, ?)`

	now := time.Now().UTC().Format(time.RFC3339)
	result, err := r.db.ExecContext(ctx, query, platform, username, now, now)
	if err != nil {
		return 0, apperror.Storage("create user", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, apperror.Storage("create user", err)
	}
	return id, nil
}

// Exists reports whether a user with the given external username is tracked.
func (r *UserRepository) Exists(ctx context.Context, username string) (bool, error) {
	query := `SELECT id FROM user WHERE user = ?`

	var id int64
	err := r.db.QueryRowContext(ctx, query, username).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, apperror.Storage("check user exists", err)
	}
	return true, nil
}

// GetByID retrieves a user by id. Zero rows is apperror.ErrNotFound.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, platform, user, created_at, updated_at FROM user WHERE id = ?`

	var user models.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Platform,
		&user.Username,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("user", id)
	}
	if err != nil {
		return nil, apperror.Storage("get user", err)
	}

	return &user, nil
}

// List retrieves all tracked users ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `SELECT id, platform, user, created_at, updated_at FROM user ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperror.Storage("list users", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Platform,
			&user.Username,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, apperror.Storage("list users", err)
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("list users", err)
	}

	return users, nil
}

// Delete removes the user row only. The matching user_avatar row is left in
// place; see UserService.RemoveUser for the cleanup policy.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM user WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return apperror.Storage("delete user", err)
	}
	return nil
}
