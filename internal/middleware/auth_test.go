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
)

var testSecret = []byte("test-secret")

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"aud":   "client-1",
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
		"uid":   "42",
		"role":  "admin",
		"scope": "read write",
	}
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", Authenticate(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"uid":    c.GetUint(ContextUserID),
			"role":   c.GetString(ContextUserRole),
			"client": c.GetString(ContextClientID),
			"scopes": c.GetString(ContextScopes),
		})
	})
	return r
}

func doAuth(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_ValidToken(t *testing.T) {
	r := newAuthRouter()
	w := doAuth(r, "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, validClaims()))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"uid":42,"role":"admin","client":"client-1","scopes":"read write"}`, w.Body.String())
}

func TestAuthenticate_NumericUID(t *testing.T) {
	claims := validClaims()
	claims["uid"] = 7
	claims["role"] = "user"

	w := doAuth(newAuthRouter(), "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, claims))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"uid":7`)
}

func TestAuthenticate_Rejections(t *testing.T) {
	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	notYet := validClaims()
	notYet["nbf"] = time.Now().Add(time.Hour).Unix()

	future := validClaims()
	future["iat"] = time.Now().Add(time.Hour).Unix()

	noUID := validClaims()
	delete(noUID, "uid")

	badUID := validClaims()
	badUID["uid"] = "abc"

	noRole := validClaims()
	delete(noRole, "role")

	badRole := validClaims()
	badRole["role"] = "root"

	testCases := []struct {
		name   string
		header string
		code   string
	}{
		{name: "missing header", header: "", code: "authorization_required"},
		{name: "wrong scheme", header: "Basic abc", code: "invalid_request"},
		{name: "empty token", header: "Bearer  ", code: "invalid_token"},
		{name: "garbage", header: "Bearer not-a-jwt", code: "invalid_token"},
		{name: "wrong secret", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims()), code: "invalid_token"},
		{name: "none algorithm", header: "Bearer " + signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims()), code: "invalid_token"},
		{name: "expired", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, expired), code: "invalid_token"},
		{name: "not yet valid", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, notYet), code: "invalid_token"},
		{name: "issued in the future", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, future), code: "invalid_token"},
		{name: "missing uid", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, noUID), code: "invalid_token"},
		{name: "invalid uid", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, badUID), code: "invalid_token"},
		{name: "missing role", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, noRole), code: "invalid_token"},
		{name: "unknown role", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, badRole), code: "invalid_token"},
	}

	r := newAuthRouter()
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := doAuth(r, tt.header)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"error":"`+tt.code+`"`)
		})
	}
}

func TestRequireRole(t *testing.T) {
	newRouter := func(role string, authenticated bool) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if authenticated {
				c.Set(ContextUserID, uint(1))
				c.Set(ContextUserRole, role)
			}
		})
		r.GET("/admin", RequireRole("admin"), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		return r
	}

	testCases := []struct {
		name          string
		role          string
		authenticated bool
		status        int
	}{
		{name: "admin passes", role: "admin", authenticated: true, status: http.StatusNoContent},
		{name: "user is forbidden", role: "user", authenticated: true, status: http.StatusForbidden},
		{name: "anonymous is unauthorized", authenticated: false, status: http.StatusUnauthorized},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newRouter(tt.role, tt.authenticated).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
