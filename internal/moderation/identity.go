package moderation

import (
	"askbox/internal/models"
)

// Identity is the resolved session identity for one request. The zero
// value is an anonymous viewer; credentials are parsed elsewhere.
type Identity struct {
	Role      string
	SessionID string
}

// ActorRole returns the role to record in the audit log, defaulting to
// viewer for anonymous requests.
func (id Identity) ActorRole() string {
	if id.Role == "" {
		return models.RoleViewer
	}
	return id.Role
}

// CanModerate reports whether the identity may perform review actions.
func (id Identity) CanModerate() bool {
	return id.Role == models.RoleModerator || id.Role == models.RoleAdmin
}
