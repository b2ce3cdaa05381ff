package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/veridoc/kyc-portal/internal/domain/entity"
	"github.com/veridoc/kyc-portal/pkg/helpers"
	"github.com/veridoc/kyc-portal/pkg/response"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
)

// Auth validates the bearer token from the Authorization header and
// injects the decoded claims into the Gin context. Tokens are
// stateless; validation is signature plus expiry, nothing else.
//
// Missing or invalid tokens abort with 401. Insufficient role is a
// separate concern, see Require.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "missing token", nil)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid or expired token", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserRoleKey, string(claims.Role))
		c.Next()
	}
}

// Require admits the request only when the authenticated role grants
// the capability. Must run after Auth. A structurally valid token with
// the wrong role aborts with 403, distinguishable from the 401 cases.
func Require(cap entity.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entity.Role(c.GetString(CtxUserRoleKey))
		if !role.Can(cap) {
			response.Abort(c, http.StatusForbidden, "access denied", nil)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
