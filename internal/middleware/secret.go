package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-cms-backend/config"
	"portfolio-cms-backend/internal/types"
)

// SecretKey rejects requests missing the shared secret header when running in
// production mode. It sits ahead of token decoding.
func SecretKey(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.IsProduction() && c.GetHeader("X-Secret-Key") != cfg.SecretKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				types.NewError(http.StatusUnauthorized, "secret key is not valid", nil))
			return
		}
		c.Next()
	}
}
