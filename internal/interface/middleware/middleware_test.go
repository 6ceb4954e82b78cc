package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/geoauth/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newJSONGuardRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequireJSON())
	handler := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.POST("/x", handler)
	r.GET("/x", handler)
	return r
}

func TestRequireJSONRejectsOtherContentTypes(t *testing.T) {
	r := newJSONGuardRouter()

	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("a=b"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "application/json")
}

func TestRequireJSONAcceptsJSONAndCharset(t *testing.T) {
	r := newJSONGuardRouter()

	for _, ct := range []string{"application/json", "application/json; charset=utf-8"} {
		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("{}"))
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, ct)
	}
}

func TestRequireJSONIgnoresGET(t *testing.T) {
	r := newJSONGuardRouter()

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func newAuthRouter(jwtm *helpers.JWTManager) *gin.Engine {
	r := gin.New()
	r.GET("/me", Auth(jwtm), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxUserIDKey))
	})
	return r
}

func TestAuthAcceptsBearerToken(t *testing.T) {
	jwtm := helpers.NewJWTManager("access", "refresh", time.Minute, time.Hour)
	r := newAuthRouter(jwtm)

	token, _, err := jwtm.GenerateAccessToken("user-7")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-7", w.Body.String())
}

func TestAuthRejectsMissingOrMalformedHeader(t *testing.T) {
	jwtm := helpers.NewJWTManager("access", "refresh", time.Minute, time.Hour)
	r := newAuthRouter(jwtm)

	token, _, err := jwtm.GenerateAccessToken("user-7")
	require.NoError(t, err)

	for _, header := range []string{"", "Basic abc", token} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.Contains(t, w.Body.String(), "missing access token", header)
	}
}

func TestAuthRejectsForeignAndExpiredTokens(t *testing.T) {
	jwtm := helpers.NewJWTManager("access", "refresh", time.Minute, time.Hour)
	r := newAuthRouter(jwtm)

	other := helpers.NewJWTManager("other-secret", "refresh", time.Minute, time.Hour)
	foreign, _, err := other.GenerateAccessToken("user-7")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+foreign)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid access token")

	expiring := helpers.NewJWTManager("access", "refresh", -time.Minute, time.Hour)
	expired, _, err := expiring.GenerateAccessToken("user-7")
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "access token expired")
}
