package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/junaidrashid-git/storefront-api/auth"
	"github.com/junaidrashid-git/storefront-api/models"
)

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateAPIKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", ValidateAPIKey("k3y"), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-API-KEY", "wrong")
	assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-API-KEY", "k3y")
	assert.Equal(t, http.StatusNoContent, serve(r, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/admin?api_key=k3y", nil)
	assert.Equal(t, http.StatusNoContent, serve(r, req).Code)

	locked := gin.New()
	locked.GET("/admin", ValidateAPIKey(""), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	req = httptest.NewRequest(http.MethodGet, "/admin?api_key=", nil)
	assert.Equal(t, http.StatusUnauthorized, serve(locked, req).Code)
}

func TestValidateToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokens("secret", time.Hour)
	want := auth.Principal{ID: "u1", Email: "asha@example.com", Name: "Asha", Role: models.RoleUser}
	signed, err := tokens.Issue(want)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", ValidateToken(tokens, zap.NewNop()), func(c *gin.Context) {
		id, ok := UserID(c)
		require.True(t, ok)
		p, ok := CurrentPrincipal(c)
		require.True(t, ok)
		assert.Equal(t, want, p)
		c.String(http.StatusOK, id)
	})

	for name, set := range map[string]func(*http.Request){
		"bearer": func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+signed) },
		"raw":    func(req *http.Request) { req.Header.Set("Authorization", signed) },
		"cookie": func(req *http.Request) { req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: signed}) },
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			set(req)
			w := serve(r, req)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "u1", w.Body.String())
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)
}

func TestRequestLoggerRecordsPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokens("secret", time.Hour)
	signed, err := tokens.Issue(auth.Principal{ID: "u1", Email: "asha@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/me", ValidateToken(tokens, zap.NewNop()), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/public", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	serve(r, req)
	serve(r, httptest.NewRequest(http.MethodGet, "/public", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/me", nil))

	entries := logs.All()
	require.Len(t, entries, 3)

	authed := entries[0].ContextMap()
	assert.Equal(t, "u1", authed["user_id"])
	assert.Equal(t, string(models.RoleAdmin), authed["role"])
	assert.EqualValues(t, http.StatusNoContent, authed["status"])

	assert.NotContains(t, entries[1].ContextMap(), "user_id")
	assert.Equal(t, zap.WarnLevel, entries[2].Level, "client errors log at warn")
}
