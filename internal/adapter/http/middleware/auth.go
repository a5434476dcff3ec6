package middleware

import (
	"net/http"
	"os"
	"strings"

	"motofix/internal/domain/entities"
	"motofix/internal/usecase"
	"motofix/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// ContextUserID is the gin context key carrying the projected profile id.
	ContextUserID = "user_id"
	// ContextUserRole is the gin context key carrying the projected role.
	ContextUserRole = "user_role"
)

// JWTClaims is the payload the identity provider signs into access tokens.
// The subject is the stable principal id; role/email/name are projected onto
// an internal profile on first sight.
type JWTClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		return []byte(v)
	}
	return []byte("local-dev-secret")
}

// Authenticate validates the bearer token, projects the principal onto an
// internal user profile and stores the identity in the request context.
func Authenticate(identity usecase.IIdentityUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return jwtSecret(), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		profile, err := identity.ProjectPrincipal(c.Request.Context(), claims.Subject, claims.Email, claims.Name, entities.Role(claims.Role))
		if err != nil {
			if appErr, ok := err.(*pkg.AppError); ok {
				c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "identity projection failed"})
			return
		}

		c.Set(ContextUserID, profile.ID)
		c.Set(ContextUserRole, string(profile.Role))

		c.Next()
	}
}

// Authorize restricts a route group to the given roles. Authenticate must run
// first.
func Authorize(allowedRoles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(ContextUserRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "user role not found in context"})
			return
		}
		role, ok := roleValue.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "user role has an invalid type"})
			return
		}

		for _, allowed := range allowedRoles {
			if string(allowed) == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "you do not have permission to access this resource"})
	}
}

// CallerID returns the authenticated user id stored by Authenticate.
func CallerID(c *gin.Context) string {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
