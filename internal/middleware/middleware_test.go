package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rural-health-assistant/internal/auth"
)

type mockSessions struct {
	GetFunc func(ctx context.Context, id string) (*auth.SessionData, error)
}

func (m *mockSessions) Get(ctx context.Context, id string) (*auth.SessionData, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, errors.New("GetFunc not implemented in mock")
}

func init() {
	gin.SetMode(gin.TestMode)
}

func whoAmI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"name": c.GetString(UserNameKey), "role": c.GetString(UserRoleKey)})
}

func TestRequestIDAndLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	r := gin.New()
	r.Use(RequestID(), Logger(logger))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)
	assert.Contains(t, buf.String(), id)
	assert.Contains(t, buf.String(), `"path":"/ping"`)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestAuthBearer(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	token, err := tokens.Generate("1", "dr-rao", "doctor")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", Auth(&Authenticator{Tokens: tokens}, true), whoAmI)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"dr-rao","role":"doctor"}`, w.Body.String())
}

func TestAuthSessionCookie(t *testing.T) {
	sessions := &mockSessions{GetFunc: func(ctx context.Context, id string) (*auth.SessionData, error) {
		if id == "sess-1" {
			return &auth.SessionData{UserID: "1", Name: "asha"}, nil
		}
		return nil, nil
	}}

	r := gin.New()
	r.GET("/me", Auth(&Authenticator{Tokens: auth.NewTokenService("secret", time.Hour), Sessions: sessions}, true), whoAmI)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "sess-1"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"asha","role":""}`, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "expired"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredAndOptional(t *testing.T) {
	a := &Authenticator{Tokens: auth.NewTokenService("secret", time.Hour)}

	r := gin.New()
	r.GET("/required", Auth(a, true), whoAmI)
	r.GET("/optional", Auth(a, false), whoAmI)

	req := httptest.NewRequest(http.MethodGet, "/required", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/optional", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"","role":""}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	r := gin.New()
	r.GET("/dashboard", Auth(&Authenticator{Tokens: tokens}, true), RequireRole(DoctorRole), whoAmI)

	for _, tc := range []struct {
		role string
		want int
	}{
		{DoctorRole, http.StatusOK},
		{"patient", http.StatusForbidden},
		{"", http.StatusForbidden},
	} {
		token, err := tokens.Generate("1", "someone", tc.role)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, tc.want, w.Code, "role %q", tc.role)
	}
}

func TestRequireRoleAnonymous(t *testing.T) {
	r := gin.New()
	r.GET("/dashboard", RequireRole(DoctorRole), whoAmI)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
