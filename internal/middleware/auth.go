package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-cms-backend/internal/types"
)

const identityKey = "identity"

// TokenVerifier validates a bearer token into a caller identity.
type TokenVerifier interface {
	VerifyToken(token string) (*types.Identity, error)
}

// Authenticate decodes a bearer token when one is present. Requests without a
// token proceed anonymously; the role gate decides whether that is enough.
// A token that is present but invalid or expired is rejected outright.
func Authenticate(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		identity, err := verifier.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				types.NewError(http.StatusUnauthorized, "token invalid or expired", nil))
			return
		}

		c.Set(identityKey, *identity)
		c.Next()
	}
}

// CurrentIdentity returns the authenticated caller, if any.
func CurrentIdentity(c *gin.Context) (types.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return types.Identity{}, false
	}
	identity, ok := value.(types.Identity)
	return identity, ok
}
