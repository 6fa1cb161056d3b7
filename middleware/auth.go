package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/oumarknt31/Restaurant-ai-system/config"
	"github.com/oumarknt31/Restaurant-ai-system/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTTL  = 24 * time.Hour
	claimsKey = "authClaims"
)

// Claims is the signed session payload. The role travels inside the token so
// route gates can run without a directory lookup; services re-read the
// account for anything that mutates state.
type Claims struct {
	UserID uint            `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token for the account
func GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret)
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg, "kind": "unauthorized"})
}

// AuthRequired verifies the bearer token and stores the claims on the context
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || tokenStr == "" {
			abortUnauthorized(c, "authorization header required (Bearer <token>)")
			return
		}
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid or expired token")
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ModeratorsOnly gates a route group on the moderation capability.
// Must run after AuthRequired.
func ModeratorsOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil || !claims.Role.CanModerate() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "requires a manager or chef account",
				"kind":  "forbidden",
			})
			return
		}
		c.Next()
	}
}

// ClaimsFrom returns the verified claims stored by AuthRequired, or nil
func ClaimsFrom(c *gin.Context) *Claims {
	if v, ok := c.Get(claimsKey); ok {
		return v.(*Claims)
	}
	return nil
}

// GetUserID extracts the caller's account ID from the verified claims
func GetUserID(c *gin.Context) uint {
	if claims := ClaimsFrom(c); claims != nil {
		return claims.UserID
	}
	return 0
}
