package middleware

import (
	"net/http"
	"time"

	"askbox/internal/moderation"
	"askbox/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const IdentityKey = "identity"

// Session keys written by the auth handler.
const (
	SessionRoleKey    = "role"
	SessionIDKey      = "session_id"
	SessionExpiresKey = "expires_at"
)

// LoadIdentity resolves the cookie session into a moderation.Identity on
// the context. Absent or expired sessions leave the request anonymous.
func LoadIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		role, _ := session.Get(SessionRoleKey).(string)
		sid, _ := session.Get(SessionIDKey).(string)
		exp, _ := session.Get(SessionExpiresKey).(int64)

		if role != "" && sid != "" && exp > time.Now().Unix() {
			c.Set(IdentityKey, moderation.Identity{Role: role, SessionID: sid})
		}
		c.Next()
	}
}

// CurrentIdentity returns the request identity, anonymous viewer when
// none was loaded.
func CurrentIdentity(c *gin.Context) moderation.Identity {
	if v, exists := c.Get(IdentityKey); exists {
		return v.(moderation.Identity)
	}
	return moderation.Identity{Role: models.RoleViewer}
}

// ModeratorRequired gates the admin group: anything below moderator is
// turned away before any handler or store access runs.
func ModeratorRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentIdentity(c).CanModerate() {
			c.String(http.StatusForbidden, "forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}
