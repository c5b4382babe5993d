package models

import "encoding/json"

// FullUser is the unified view of a tracked user: the stored identity row,
// the resolved local avatar path, and a freshly fetched platform profile.
// It is assembled per request and never persisted.
type FullUser struct {
	Username     string
	CreatedAt    string
	UpdatedAt    string
	Avatar       string
	PlatformUser PlatformUser
}

// platformUserEnvelope is the externally tagged wire form of a PlatformUser:
// {"type": "GitHub", "data": {...}}, with data omitted for empty variants.
type platformUserEnvelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

func (u FullUser) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Username     string               `json:"user"`
		CreatedAt    string               `json:"created_at"`
		UpdatedAt    string               `json:"updated_at"`
		Avatar       string               `json:"avatar"`
		PlatformUser platformUserEnvelope `json:"platform_user"`
	}{
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Avatar:    u.Avatar,
		PlatformUser: platformUserEnvelope{
			Type: u.PlatformUser.Tag(),
			Data: u.PlatformUser.payload(),
		},
	})
}
