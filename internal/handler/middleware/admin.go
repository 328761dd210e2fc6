package middleware

import (
	"net/http"

	"ticket-monarch/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const AdminKeyHeader = "X-Admin-Key"

type AdminAuthorizer interface {
	Authorize(adminKey string) error
}

type AdminMiddleware struct {
	authorizer AdminAuthorizer
}

func NewAdminMiddleware(authorizer AdminAuthorizer) *AdminMiddleware {
	return &AdminMiddleware{authorizer: authorizer}
}

func (m *AdminMiddleware) RequireAdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.authorizer.Authorize(c.GetHeader(AdminKeyHeader)); err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Admin key required", nil)
			return
		}
		c.Next()
	}
}
