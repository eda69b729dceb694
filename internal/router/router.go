package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"

	"notebook/internal/auth"
	"notebook/internal/config"
	"notebook/internal/errors"
	"notebook/internal/handler"
)

// Register wires middleware and routes. Middleware order is significant:
// CORS runs outermost, then the identity gate, then the shared-secret gate
// when a deployment password is configured. The two gates are distinct
// deployment modes sharing one Authorization header; running both at once is
// possible but a single header cannot carry both credentials (see DESIGN.md).
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *auth.TokenService,
	authHandler *handler.AuthHandler,
	configHandler *handler.ConfigHandler,
	notebookHandler *handler.NotebookHandler,
	noteHandler *handler.NoteHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	e.Use(auth.JWTAuth(auth.JWTAuthConfig{Tokens: tokens}))
	if cfg.Password != "" {
		e.Use(auth.PasswordAuth(auth.PasswordAuthConfig{Password: cfg.Password}))
	}

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = detailErrorHandler

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Notebook API is running"})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	e.GET("/docs/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", func(c echo.Context) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "documentation unavailable")
		}
		return c.JSONBlob(http.StatusOK, []byte(doc))
	})

	api := e.Group("/api")

	// Public routes (also on the identity gate's exclusion list)
	api.GET("/auth/status", authHandler.Status)
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/signin", authHandler.Signin)
	api.GET("/config", configHandler.Get)

	// Gated routes: the identity gate has already attached the caller's
	// identity by the time these run.
	api.GET("/notebooks", notebookHandler.List)
	api.POST("/notebooks", notebookHandler.Create)
	api.GET("/notebooks/:id", notebookHandler.Get)
	api.PUT("/notebooks/:id", notebookHandler.Update)
	api.DELETE("/notebooks/:id", notebookHandler.Delete)

	api.GET("/notebooks/:id/notes", noteHandler.ListByNotebook)
	api.POST("/notebooks/:id/notes", noteHandler.Create)
	api.GET("/notes/:id", noteHandler.Get)
	api.PUT("/notes/:id", noteHandler.Update)
	api.DELETE("/notes/:id", noteHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// detailErrorHandler renders every unhandled error as a {"detail": ...} body,
// matching the shape the gates and handlers emit directly.
func detailErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	detail := "internal server error"
	if httpErr, ok := err.(*echo.HTTPError); ok {
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			detail = msg
		}
	}
	if status == http.StatusInternalServerError {
		c.Logger().Errorf("unhandled error for %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, errors.Detail{Detail: detail})
}
