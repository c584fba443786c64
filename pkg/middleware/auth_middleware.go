package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"vdpcza/pkg/utils"
)

// SessionAuthenticator turns a bearer token into a resolved session.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*utils.Session, error)
}

// BearerToken reads the Authorization header. EventSource cannot set
// headers, so the access_token query parameter is accepted as well.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return c.Query("access_token")
}

func loginRedirect(c *gin.Context) string {
	return "/login?next=" + url.QueryEscape(c.Request.URL.Path)
}

// RequireSession resolves the caller on every request. Anything short of a
// fully resolved session is answered with 401 and a login redirect.
func RequireSession(auth SessionAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			utils.RespondErrorData(c, http.StatusUnauthorized, "Authorization header missing or invalid",
				gin.H{"redirect": loginRedirect(c)})
			c.Abort()
			return
		}

		session, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil || session == nil {
			utils.Logger(c).Info("session rejected", zap.Error(err))
			utils.RespondErrorData(c, http.StatusUnauthorized, "Invalid or expired session",
				gin.H{"redirect": loginRedirect(c)})
			c.Abort()
			return
		}

		utils.SetSession(c, session)
		c.Set("user_id", session.UserID.String())
		c.Set("Role", session.Role)
		c.Next()
	}
}

func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := utils.CurrentSession(c)
		if session == nil || session.Role != requiredRole {
			utils.RespondErrorData(c, http.StatusForbidden, "Forbidden: insufficient permissions",
				gin.H{"redirect": "/"})
			c.Abort()
			return
		}

		c.Next()
	}
}
