package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamzadaoud/rouge-perle-gestion/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func contextWithToken(t *testing.T, token string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/drinks", nil)
	if token != "" {
		c.Request.Header.Set("Authorization", token)
	}
	return c, w
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(models.User{
		ID:    "admin1",
		Email: "admin@laperle.rouge",
		Name:  "Administrateur",
		Role:  models.RoleAdmin,
	})
	require.NoError(t, err)

	c, _ := contextWithToken(t, token)
	ValidateToken(c)
	require.False(t, c.IsAborted())

	userID, _ := c.Get("user_id")
	assert.Equal(t, "admin1", userID)
	role, _ := c.Get("role")
	assert.Equal(t, "admin", role)

	RequireAdmin(c)
	assert.False(t, c.IsAborted())
}

func TestValidateTokenMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	c, w := contextWithToken(t, "")
	ValidateToken(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	c, w := contextWithToken(t, "not.a.token")
	ValidateToken(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken(models.User{ID: "agent1", Role: models.RoleAgent})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	c, w := contextWithToken(t, token)
	ValidateToken(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminRejectsAgent(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken(models.User{ID: "agent1", Role: models.RoleAgent})
	require.NoError(t, err)

	c, w := contextWithToken(t, token)
	ValidateToken(c)
	require.False(t, c.IsAborted())

	RequireAdmin(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}
