package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uxelf/tasksapp/internal/domain/entity"
	"github.com/uxelf/tasksapp/internal/domain/repository"
	"github.com/uxelf/tasksapp/pkg/helpers"
)

type stubUserRepo struct {
	users map[string]*entity.User
}

func (r *stubUserRepo) Create(context.Context, *entity.User) error { return nil }

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (r *stubUserRepo) GetByUsername(context.Context, string) (*entity.User, error) {
	return nil, repository.ErrNotFound
}

func identityTestRouter(jwt *helpers.JWTManager, users repository.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identity(jwt, users))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetString(CtxUserIDKey),
			"username": c.GetString(CtxUsernameKey),
		})
	})
	r.GET("/private", RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestIdentity_MissingCookieProceedsUnauthenticated(t *testing.T) {
	jwt := helpers.NewJWTManager("mw-secret", time.Hour)
	r := identityTestRouter(jwt, &stubUserRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)
}

func TestIdentity_GarbageTokenProceedsUnauthenticated(t *testing.T) {
	jwt := helpers.NewJWTManager("mw-secret", time.Hour)
	r := identityTestRouter(jwt, &stubUserRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: helpers.TokenCookieName, Value: "garbage"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)
}

func TestIdentity_DeletedUserProceedsUnauthenticated(t *testing.T) {
	jwt := helpers.NewJWTManager("mw-secret", time.Hour)
	tok, _, err := jwt.Generate("gone", "ghost")
	require.NoError(t, err)
	r := identityTestRouter(jwt, &stubUserRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: helpers.TokenCookieName, Value: tok})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)
}

func TestIdentity_ValidTokenEstablishesIdentity(t *testing.T) {
	jwt := helpers.NewJWTManager("mw-secret", time.Hour)
	users := &stubUserRepo{users: map[string]*entity.User{
		"u-1": {ID: "u-1", Username: "alice"},
	}}
	tok, _, err := jwt.Generate("u-1", "alice")
	require.NoError(t, err)
	r := identityTestRouter(jwt, users)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: helpers.TokenCookieName, Value: tok})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u-1"`)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestRequireAuth_BlocksAnonymousAllowsAuthenticated(t *testing.T) {
	jwt := helpers.NewJWTManager("mw-secret", time.Hour)
	users := &stubUserRepo{users: map[string]*entity.User{
		"u-1": {ID: "u-1", Username: "alice"},
	}}
	r := identityTestRouter(jwt, users)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	tok, _, err := jwt.Generate("u-1", "alice")
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: helpers.TokenCookieName, Value: tok})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
