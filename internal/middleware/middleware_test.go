package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"linkhop/config"
	"linkhop/internal/jwt"
	"linkhop/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testJWT = &config.JWTConfig{Access: "a", AccessExp: time.Hour, Refresh: "r", RefreshExp: time.Hour}

type stubLoader map[uuid.UUID]*models.User

func (s stubLoader) CurrentUser(_ context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := s[id]; ok {
		return u, nil
	}
	return nil, errors.New("not found")
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthEngine(users UserLoader, optional bool) *gin.Engine {
	r := gin.New()
	mw := JWTAuth(testJWT, users)
	if optional {
		mw = OptionalJWTAuth(testJWT, users)
	}
	r.GET("/me", mw, func(c *gin.Context) {
		if u := CurrentUser(c); u != nil {
			c.String(http.StatusOK, u.Email)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "ann@example.com"}
	users := stubLoader{user.ID: user}
	token, _, err := jwt.GenerateAccessToken(user.ID.String(), testJWT)
	require.NoError(t, err)
	ghost, _, err := jwt.GenerateAccessToken(uuid.NewString(), testJWT)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		cookie string
		code   int
		body   string
	}{
		{"bearer", "Bearer " + token, "", http.StatusOK, "ann@example.com"},
		{"cookie", "", token, http.StatusOK, "ann@example.com"},
		{"missing", "", "", http.StatusUnauthorized, ""},
		{"garbage", "Bearer nope", "", http.StatusUnauthorized, ""},
		{"deleted user", "Bearer " + ghost, "", http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: AuthCookie, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			newAuthEngine(users, false).ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestOptionalJWTAuth(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer nope")
	newAuthEngine(stubLoader{}, true).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ctxRequestIDKey)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	id := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "given")
	r.ServeHTTP(w, req)
	assert.Equal(t, "given", w.Header().Get(RequestIDHeader))
}

type countingLimiter struct {
	allowed int
	err     error
}

func (l *countingLimiter) Allow(context.Context, string) (bool, time.Duration, error) {
	if l.err != nil {
		return false, 0, l.err
	}
	l.allowed--
	return l.allowed >= 0, 30 * time.Second, nil
}

func TestRateLimit(t *testing.T) {
	lim := &countingLimiter{allowed: 1}
	r := gin.New()
	r.POST("/login", RateLimit(lim, "login", zap.NewNop()), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "31", w.Header().Get("Retry-After"))

	lim.err = errors.New("redis down")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
