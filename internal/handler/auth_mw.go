package handler

import (
	"net/http"
	"strings"

	"github.com/blogify/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// authMiddleware fails closed: no resolvable session means 401 and no handler
// runs.
func (h *Handler) authMiddleware(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	user, err := h.services.Session.Resolve(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	c.Set("user", *user)

	c.Next()
}

// notRequiredAuthMiddleware resolves the session when one is present but never
// rejects; read endpoints vary behavior by session presence.
func (h *Handler) notRequiredAuthMiddleware(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.Next()
		return
	}

	user, err := h.services.Session.Resolve(c.Request.Context(), token)
	if err != nil {
		c.Next()
		return
	}

	c.Set("user", *user)

	c.Next()
}
