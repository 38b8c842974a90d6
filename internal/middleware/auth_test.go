package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func bearerFor(t *testing.T, role string) (string, primitive.ObjectID) {
	t.Helper()
	userID := primitive.NewObjectID()
	signed := signToken(t, testSecret, jwt.MapClaims{
		"sub":   userID.Hex(),
		"email": "user@example.com",
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	return "Bearer " + signed, userID
}

func TestParseIdentityGuest(t *testing.T) {
	identity, err := ParseIdentity("", testSecret)
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestParseIdentityValidToken(t *testing.T) {
	header, userID := bearerFor(t, "user")

	identity, err := ParseIdentity(header, testSecret)
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "user@example.com", identity.Email)
	assert.Equal(t, "user", identity.Role)
}

func TestParseIdentityRejects(t *testing.T) {
	expired := signToken(t, testSecret, jwt.MapClaims{
		"sub":  primitive.NewObjectID().Hex(),
		"role": "user",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	wrongSecret := signToken(t, "other-secret", jwt.MapClaims{
		"sub":  primitive.NewObjectID().Hex(),
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	badSub := signToken(t, testSecret, jwt.MapClaims{
		"sub":  "not-an-object-id",
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing bearer prefix", "tokenwithoutprefix"},
		{"expired token", "Bearer " + expired},
		{"wrong secret", "Bearer " + wrongSecret},
		{"malformed sub", "Bearer " + badSub},
		{"garbage token", "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := ParseIdentity(tt.header, testSecret)
			assert.Error(t, err)
			assert.Nil(t, identity)
		})
	}
}

func guardedRouter(guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", guard, func(c *gin.Context) {
		identity := IdentityFrom(c)
		c.JSON(http.StatusOK, gin.H{"role": identity.Role})
	})
	return router
}

func TestAuthGuard(t *testing.T) {
	userHeader, _ := bearerFor(t, "user")
	adminHeader, _ := bearerFor(t, "admin")

	tests := []struct {
		name       string
		guard      gin.HandlerFunc
		header     string
		wantStatus int
	}{
		{"missing token", AuthGuard(testSecret), "", http.StatusUnauthorized},
		{"invalid token", AuthGuard(testSecret), "Bearer junk", http.StatusUnauthorized},
		{"any role passes open guard", AuthGuard(testSecret), userHeader, http.StatusOK},
		{"admin passes admin guard", AdminAuth(testSecret), adminHeader, http.StatusOK},
		{"user blocked from admin guard", AdminAuth(testSecret), userHeader, http.StatusForbidden},
		{"admin blocked from user guard", UserAuth(testSecret), adminHeader, http.StatusForbidden},
		{"user passes user guard", UserAuth(testSecret), userHeader, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := guardedRouter(tt.guard)
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
