package handlers

import (
	"askbox/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like the current identity
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	who := middleware.CurrentIdentity(c)
	obj["Role"] = who.Role
	obj["CanModerate"] = who.CanModerate()
	obj["LoggedIn"] = who.SessionID != ""
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// Error helper
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Title": "Error", "Error": message})
}
