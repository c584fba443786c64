package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionKey = "session"

// Session is the resolved identity of the caller for one request.
type Session struct {
	UserID      uuid.UUID
	Email       string
	Role        string
	DisplayName string
	AvatarURL   string
	TokenID     string
	ExpiresAt   int64
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == "admin"
}

// DisplayNameFor prefers the profile name and falls back to the local part of the email.
func DisplayNameFor(fullName, email string) string {
	if n := strings.TrimSpace(fullName); n != "" {
		return n
	}
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

func SetSession(c *gin.Context, s *Session) {
	c.Set(sessionKey, s)
}

// CurrentSession returns nil on routes without the session middleware.
func CurrentSession(c *gin.Context) *Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*Session)
	return s
}
