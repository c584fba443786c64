package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"vdpcza/pkg/utils"
)

type fakeAuthenticator struct {
	sessions map[string]*utils.Session
	calls    int
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, token string) (*utils.Session, error) {
	f.calls++
	if s, ok := f.sessions[token]; ok {
		return s, nil
	}
	return nil, utils.ErrUnauthorized
}

func newRouter(auth SessionAuthenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware(), ZapLogger(zap.NewNop()))

	ok := func(c *gin.Context) {
		s := utils.CurrentSession(c)
		utils.RespondSuccess(c, gin.H{"email": s.Email}, "ok")
	}

	authed := r.Group("/", RequireSession(auth))
	authed.GET("/gifts", ok)
	authed.GET("/admin/trips", RequireRole("admin"), ok)
	return r
}

func do(r http.Handler, path, token string) (*httptest.ResponseRecorder, utils.APIResponse) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body utils.APIResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestRequireSession(t *testing.T) {
	auth := &fakeAuthenticator{sessions: map[string]*utils.Session{
		"user":  {UserID: uuid.New(), Email: "vale@example.com", Role: "user"},
		"admin": {UserID: uuid.New(), Email: "admin@example.com", Role: "admin"},
	}}
	r := newRouter(auth)

	t.Run("missing token redirects to login with next", func(t *testing.T) {
		rec, body := do(r, "/gifts", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		data, ok := body.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "/login?next=%2Fgifts", data["redirect"])
		assert.NotEmpty(t, body.TraceID)
	})

	t.Run("rejected token", func(t *testing.T) {
		rec, _ := do(r, "/gifts", "forged")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid session", func(t *testing.T) {
		rec, body := do(r, "/gifts", "user")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "vale@example.com", body.Data.(map[string]interface{})["email"])
	})

	t.Run("query token for event streams", func(t *testing.T) {
		rec, _ := do(r, "/gifts?access_token=user", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	auth := &fakeAuthenticator{sessions: map[string]*utils.Session{
		"user":  {UserID: uuid.New(), Role: "user"},
		"admin": {UserID: uuid.New(), Role: "admin"},
	}}
	r := newRouter(auth)

	rec, body := do(r, "/admin/trips", "user")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "/", body.Data.(map[string]interface{})["redirect"])

	rec, _ = do(r, "/admin/trips", "admin")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(r, "/admin/trips", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSession_ResolvesEveryRequest(t *testing.T) {
	auth := &fakeAuthenticator{sessions: map[string]*utils.Session{"user": {UserID: uuid.New(), Role: "user"}}}
	r := newRouter(auth)

	do(r, "/gifts", "user")
	do(r, "/gifts", "user")
	assert.Equal(t, 2, auth.calls)

	delete(auth.sessions, "user")
	rec, _ := do(r, "/gifts", "user")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTraceID(t *testing.T) {
	r := newRouter(&fakeAuthenticator{})

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/gifts", nil)
	req.Header.Set("X-Trace-ID", incoming)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, incoming, rec.Header().Get("X-Trace-ID"))

	req = httptest.NewRequest(http.MethodGet, "/gifts", nil)
	req.Header.Set("X-Trace-ID", "not-a-uuid")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get("X-Trace-ID"))
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware("https://vdpcza.app, http://localhost:5173"))
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/healthz", nil)
	req.Header.Set("Origin", "https://vdpcza.app")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://vdpcza.app", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_WildcardHasNoCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware("*"))
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestZapRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ZapRecovery(zap.NewNop()))
	r.GET("/boom", func(c *gin.Context) { panic(errors.New("boom")) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
