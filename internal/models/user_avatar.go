package models

import "fmt"

// UserAvatar references the locally cached avatar image for a user.
// Ext is nil when the cached file has no extension suffix.
type UserAvatar struct {
	UserID int64   `json:"user_id" db:"user_id"`
	Ext    *string `json:"ext" db:"ext"`
}

// FileName derives the avatar's file name from the user id and extension.
// It is a pure function: the same record always yields the same name.
func (a *UserAvatar) FileName() string {
	if a.Ext == nil {
		return fmt.Sprintf("%d", a.UserID)
	}
	return fmt.Sprintf("%d.%s", a.UserID, *a.Ext)
}
