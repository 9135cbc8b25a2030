package middleware

import (
	"errors"
	"net/http"
	"strings"

	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

// UserKey is the gin context key the authenticated user is stored under.
const UserKey = "user"

// credentialsDetail is the one message every token failure maps to, so the
// response does not reveal which check failed.
const credentialsDetail = "could not validate credentials"

// Auth turns a bearer token into an authenticated, active user. Two gates:
// the token must verify and carry a subject, and the subject must resolve to
// an active user. Inactive accounts get a distinct 400. Re-evaluated on every
// request; nothing is cached between requests.
func Auth(tokens *service.TokenManager, auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			unauthorized(c)
			return
		}

		subject, err := tokens.Parse(token)
		if err != nil {
			unauthorized(c)
			return
		}

		user, err := auth.GetByEmail(c.Request.Context(), subject)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				unauthorized(c)
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
			return
		}

		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "inactive user"})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": credentialsDetail})
}
