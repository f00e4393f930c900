package handlers

import (
	"net/http"
	"os"
	"time"

	"askbox/internal/middleware"
	"askbox/internal/models"
	"askbox/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionTTL = 7 * 24 * time.Hour

type accessKey struct {
	role string
	hash string
}

// AuthHandler exchanges access keys (handed out as QR codes) for role
// sessions. There are no user accounts; a session is just a role, an
// opaque session id and an expiry.
type AuthHandler struct {
	keys []accessKey
}

func NewAuthHandler() *AuthHandler {
	var keys []accessKey
	for env, role := range map[string]string{
		"VIEWER_KEY_HASH":    models.RoleViewer,
		"MODERATOR_KEY_HASH": models.RoleModerator,
		"ADMIN_KEY_HASH":     models.RoleAdmin,
	} {
		if hash := os.Getenv(env); hash != "" {
			keys = append(keys, accessKey{role: role, hash: hash})
		}
	}
	return &AuthHandler{keys: keys}
}

// Login handles GET /auth/qr?token=...
func (h *AuthHandler) Login(c *gin.Context) {
	token := c.Query("token")
	role := ""
	if token != "" {
		for _, k := range h.keys {
			if utils.CheckAccessKey(k.hash, token) {
				role = k.role
				break
			}
		}
	}
	if role == "" {
		c.String(http.StatusBadRequest, "Invalid or missing token")
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionRoleKey, role)
	session.Set(middleware.SessionIDKey, utils.NewSessionID())
	session.Set(middleware.SessionExpiresKey, time.Now().Add(sessionTTL).Unix())
	if err := session.Save(); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not start session")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}
