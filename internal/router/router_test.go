package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "notebook/docs" // swagger docs

	"notebook/internal/auth"
	"notebook/internal/config"
	"notebook/internal/handler"
	"notebook/internal/model"
	"notebook/internal/service"
)

type stubAuthService struct{}

func (stubAuthService) Signup(ctx context.Context, email, password, name string) (*service.TokenResult, error) {
	return &service.TokenResult{Token: "tok", Email: email, Name: name, Role: model.RoleUser}, nil
}

func (stubAuthService) Signin(ctx context.Context, email, password string) (*service.TokenResult, error) {
	return &service.TokenResult{Token: "tok", Email: email, Role: model.RoleUser}, nil
}

func (stubAuthService) Status() service.StatusResult {
	return service.StatusResult{AuthEnabled: true, Message: "Multi-user authentication is enabled"}
}

type stubNotebookService struct{}

func (stubNotebookService) Create(ctx context.Context, identity auth.Identity, name, description string) (*model.Notebook, error) {
	return &model.Notebook{ID: uuid.New(), Name: name}, nil
}

func (stubNotebookService) Get(ctx context.Context, identity auth.Identity, id uuid.UUID) (*model.Notebook, error) {
	return &model.Notebook{ID: id}, nil
}

func (stubNotebookService) List(ctx context.Context, identity auth.Identity) ([]model.Notebook, error) {
	return []model.Notebook{}, nil
}

func (stubNotebookService) Update(ctx context.Context, identity auth.Identity, id uuid.UUID, name, description string, archived bool) (*model.Notebook, error) {
	return &model.Notebook{ID: id, Name: name}, nil
}

func (stubNotebookService) Delete(ctx context.Context, identity auth.Identity, id uuid.UUID) error {
	return nil
}

type stubNoteService struct{}

func (stubNoteService) Create(ctx context.Context, identity auth.Identity, notebookID uuid.UUID, title, content string) (*model.Note, error) {
	return &model.Note{ID: uuid.New(), NotebookID: notebookID}, nil
}

func (stubNoteService) Get(ctx context.Context, identity auth.Identity, id uuid.UUID) (*model.Note, error) {
	return &model.Note{ID: id}, nil
}

func (stubNoteService) ListByNotebook(ctx context.Context, identity auth.Identity, notebookID uuid.UUID) ([]model.Note, error) {
	return []model.Note{}, nil
}

func (stubNoteService) Update(ctx context.Context, identity auth.Identity, id uuid.UUID, title, content string) (*model.Note, error) {
	return &model.Note{ID: id}, nil
}

func (stubNoteService) Delete(ctx context.Context, identity auth.Identity, id uuid.UUID) error {
	return nil
}

func newTestServer(cfg *config.Config) (*echo.Echo, *auth.TokenService) {
	e := echo.New()
	tokens := auth.NewTokenService(cfg.JWTSecret)
	Register(
		e,
		cfg,
		tokens,
		handler.NewAuthHandler(stubAuthService{}),
		handler.NewConfigHandler(cfg),
		handler.NewNotebookHandler(stubNotebookService{}),
		handler.NewNoteHandler(stubNoteService{}),
	)
	return e, tokens
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret",
		CORSOrigins: []string{"*"},
		Version:     "test",
	}
}

func TestRegister_PublicEndpoints(t *testing.T) {
	e, _ := newTestServer(testConfig())

	for _, path := range []string{"/", "/health", "/api/auth/status", "/api/config", "/openapi.json"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "path %s should be public", path)
	}
}

func TestRegister_DocsArePublic(t *testing.T) {
	e, _ := newTestServer(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/docs/index.html", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The bare docs root may redirect to index.html; it must never hit a gate.
	req = httptest.NewRequest(http.MethodGet, "/docs/", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
}

func TestRegister_GatedEndpointRequiresToken(t *testing.T) {
	e, tokens := newTestServer(testConfig())

	t.Run("missing token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/notebooks", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Missing authorization header", body["detail"])
	})

	t.Run("valid token accepted", func(t *testing.T) {
		token, err := tokens.Issue(uuid.New().String(), "a@x.com", model.RoleUser)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/notebooks", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRegister_CORSPreflight(t *testing.T) {
	e, _ := newTestServer(testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/notebooks", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// Preflight is answered before any gate can reject it.
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestRegister_SharedSecretMode(t *testing.T) {
	cfg := testConfig()
	cfg.Password = "deploy-secret"
	e, _ := newTestServer(cfg)

	// The identity gate runs first even in shared-secret mode, so gated
	// paths need a token; the shared secret then gates identity-exempt API
	// paths such as /api/config.
	t.Run("identity-exempt path now needs the shared secret", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Missing authorization header", body["detail"])
	})

	t.Run("shared secret passes the password gate", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer deploy-secret")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("public paths stay public", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
