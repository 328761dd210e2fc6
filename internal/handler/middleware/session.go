package middleware

import (
	"log/slog"

	"ticket-monarch/internal/pkg/config"
	"ticket-monarch/internal/pkg/cookie"
	"ticket-monarch/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxVisitorIDKey = "visitor_id"

// SessionMiddleware identifies the browser behind a request. Visitors
// without a valid session cookie get a fresh id and a new cookie.
type SessionMiddleware struct {
	tokens    *jwt.Service
	cookieCfg config.CookieConfig
}

func NewSessionMiddleware(tokens *jwt.Service, cfg config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		tokens:    tokens,
		cookieCfg: cfg.Cookie,
	}
}

func (m *SessionMiddleware) Visitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := cookie.GetSessionToken(c); token != "" {
			claims, err := m.tokens.ValidateToken(token)
			if err == nil {
				c.Set(ctxVisitorIDKey, claims.VisitorID)
				c.Next()
				return
			}
			slog.Debug("session token rejected, issuing a new one", "error", err.Error())
		}

		visitorID := uuid.New()
		token, err := m.tokens.GenerateToken(visitorID)
		if err != nil {
			slog.Error("failed to sign session token", "error", err.Error())
		} else {
			cookie.SetSessionCookie(c, m.cookieCfg, token, m.tokens.TTL())
		}

		c.Set(ctxVisitorIDKey, visitorID)
		c.Next()
	}
}

func GetVisitorID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxVisitorIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}
