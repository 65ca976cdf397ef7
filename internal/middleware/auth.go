package middleware

import (
	"context"
	"net/http"
	"strings"

	"linkhop/config"
	"linkhop/internal/jwt"
	"linkhop/internal/models"
	"linkhop/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	AuthCookie = "auth-token"

	ctxUserKey = "user"
)

// UserLoader loads the user an access token belongs to.
type UserLoader interface {
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// JWTAuth rejects requests without a valid access token and stores the token's user on the context.
func JWTAuth(cfg *config.JWTConfig, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := authenticate(c, cfg, users)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Missing or invalid token"})
			return
		}
		SetUser(c, user)
		c.Next()
	}
}

// OptionalJWTAuth stores the user when a valid token is present and never aborts.
func OptionalJWTAuth(cfg *config.JWTConfig, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := authenticate(c, cfg, users); user != nil {
			SetUser(c, user)
		}
		c.Next()
	}
}

func SetUser(c *gin.Context, user *models.User) {
	c.Set(ctxUserKey, user)
}

// CurrentUser returns the authenticated user or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

func authenticate(c *gin.Context, cfg *config.JWTConfig, users UserLoader) *models.User {
	tokenStr := bearerToken(c)
	if tokenStr == "" {
		return nil
	}
	claims, err := jwt.ParseAccessToken(tokenStr, cfg.Access)
	if err != nil {
		return nil
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil
	}
	user, err := users.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		return nil
	}
	return user
}

// bearerToken prefers the Authorization header and falls back to the session cookie.
func bearerToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(AuthCookie); err == nil {
		return cookie
	}
	return ""
}
