package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func identityRouter(secret string) (*ginext.Engine, *string, *bool) {
	r := ginext.New()
	r.Use(Identity(secret))

	var subject string
	var admin bool
	r.GET("/whoami", func(c *ginext.Context) {
		subject = ParticipantID(c)
		admin = IsAdmin(c)
		c.JSON(http.StatusOK, ginext.H{"ok": true})
	})

	return r, &subject, &admin
}

func TestIdentity_NoToken_PassesThrough(t *testing.T) {
	r, subject, admin := identityRouter(testSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, *subject)
	assert.False(t, *admin)
}

func TestIdentity_ValidToken_SetsSubject(t *testing.T) {
	r, subject, admin := identityRouter(testSecret)

	token := signToken(t, jwt.MapClaims{"sub": "p1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "p1", *subject)
	assert.False(t, *admin)
}

func TestIdentity_AdminRole(t *testing.T) {
	r, subject, admin := identityRouter(testSecret)

	token := signToken(t, jwt.MapClaims{"sub": "staff-1", "role": "admin"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "staff-1", *subject)
	assert.True(t, *admin)
}

func TestIdentity_ForgedToken_Rejected(t *testing.T) {
	r, _, _ := identityRouter(testSecret)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "p1"})
	signed, err := forged.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIdentity_MalformedHeader_Rejected(t *testing.T) {
	r, _, _ := identityRouter(testSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIdentity_Disabled_IgnoresHeader(t *testing.T) {
	r, subject, _ := identityRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, *subject)
}

func TestRequireAdmin_ForbidsNonAdmin(t *testing.T) {
	r := ginext.New()
	r.Use(Identity(testSecret))
	r.GET("/admin", RequireAdmin(testSecret), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"ok": true})
	})

	token := signToken(t, jwt.MapClaims{"sub": "p1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	r := ginext.New()
	r.Use(Identity(testSecret))
	r.GET("/admin", RequireAdmin(testSecret), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"ok": true})
	})

	token := signToken(t, jwt.MapClaims{"sub": "staff-1", "role": "admin"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_NoopWhenDisabled(t *testing.T) {
	r := ginext.New()
	r.GET("/admin", RequireAdmin(""), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
