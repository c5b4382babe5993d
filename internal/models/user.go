package models

// User is the locally stored identity row for a tracked platform user.
// Timestamps are RFC3339 strings and are stored exactly as written.
type User struct {
	ID        int64  `json:"id" db:"id"`
	Platform  string `json:"platform" db:"platform"`
	Username  string `json:"user" db:"user"`
	CreatedAt string `json:"created_at" db:"created_at"`
	UpdatedAt string `json:"updated_at" db:"updated_at"`
}
