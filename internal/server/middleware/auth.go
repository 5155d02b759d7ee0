package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/fintrack/internal/auth/authctx"
	"github.com/skillsenselab/fintrack/internal/auth/token"
	apperrors "github.com/skillsenselab/fintrack/internal/errors"
)

// TokenParser validates a raw bearer token and returns its claims.
type TokenParser func(raw string) (*token.AccessClaims, error)

// Auth returns middleware that authenticates protected routes. A missing or
// malformed Authorization header is 401; a token that fails signature or
// expiry checks is 403. On success the claims are attached to the request
// context; downstream handlers read them and never re-verify.
func Auth(parse TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWithError(c, apperrors.Unauthorized("Unauthorized"))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			abortWithError(c, apperrors.Unauthorized("Unauthorized"))
			return
		}

		claims, err := parse(parts[1])
		if err != nil {
			abortWithError(c, apperrors.Forbidden("Forbidden"))
			return
		}

		ctx := authctx.Set(c.Request.Context(), claims)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func abortWithError(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.HTTPStatus, err.ToResponse())
}
