package middleware

import (
	"net/http"
	"strings"
	"time"

	"restaurant-pos-api/config"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID      string              `json:"user_id"`
	Name        string              `json:"name"`
	Role        string              `json:"role"`
	Permissions []models.Permission `json:"permissions"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT carrying the user's role and its
// permission set, so authorization never needs a store lookup per request.
func GenerateToken(user *models.User, role models.Role) (string, error) {
	claims := Claims{
		UserID:      user.ID,
		Name:        user.Name,
		Role:        role.Name,
		Permissions: role.Permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// AuthRequired validates the JWT and injects claims into context
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("claims", claims)
		c.Next()
	}
}

// PermissionRequired enforces that the caller's permission set contains the
// given permission. Authorization wraps access to an action; the state
// machine's own preconditions are independent of it.
func PermissionRequired(perm models.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "No credentials in context"})
			c.Abort()
			return
		}
		for _, p := range claims.Permissions {
			if p == perm {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied. Required permission: " + string(perm),
		})
		c.Abort()
	}
}

// GetClaims extracts the caller's claims from context, or nil.
func GetClaims(c *gin.Context) *Claims {
	val, ok := c.Get("claims")
	if !ok {
		return nil
	}
	claims, _ := val.(*Claims)
	return claims
}
