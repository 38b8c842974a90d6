package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Identity is the verified subject extracted from a bearer token.
type Identity struct {
	UserID primitive.ObjectID
	Email  string
	Role   string
}

// ParseIdentity validates a raw Authorization header value and returns the
// identity it carries. An empty header returns (nil, nil) so callers can
// treat the request as a guest.
func ParseIdentity(header, secret string) (*Identity, error) {
	raw := strings.TrimSpace(header)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, errors.New("invalid token format")
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	userID, err := primitive.ObjectIDFromHex(strings.TrimSpace(sub))
	if err != nil {
		return nil, errors.New("invalid sub claim")
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &Identity{UserID: userID, Email: email, Role: role}, nil
}

// AuthGuard rejects requests without a valid token or with a role outside
// allowedRoles, and injects the identity into the context.
func AuthGuard(secret string, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := ParseIdentity(c.GetHeader("Authorization"), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if identity == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		if len(allowedRoles) > 0 {
			match := false
			for _, r := range allowedRoles {
				if identity.Role == r {
					match = true
					break
				}
			}
			if !match {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
				return
			}
		}

		c.Set("identity", identity)
		c.Next()
	}
}

// AdminAuth allows admin sessions only.
func AdminAuth(secret string) gin.HandlerFunc {
	return AuthGuard(secret, "admin")
}

// UserAuth allows authenticated customers only. Admin sessions are rejected:
// the admin portal is separate from the store and admins must sign in as a
// customer to use customer features.
func UserAuth(secret string) gin.HandlerFunc {
	return AuthGuard(secret, "user")
}

// IdentityFrom returns the identity injected by AuthGuard, or nil.
func IdentityFrom(c *gin.Context) *Identity {
	value, ok := c.Get("identity")
	if !ok {
		return nil
	}
	identity, ok := value.(*Identity)
	if !ok {
		return nil
	}
	return identity
}
