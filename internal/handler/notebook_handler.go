package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"notebook/internal/auth"
	"notebook/internal/errors"
	"notebook/internal/service"
)

// NotebookHandler handles notebook endpoints.
type NotebookHandler struct {
	notebookService service.NotebookService
}

// NewNotebookHandler creates a new notebook handler.
func NewNotebookHandler(notebookService service.NotebookService) *NotebookHandler {
	return &NotebookHandler{notebookService: notebookService}
}

// NotebookRequest represents a notebook create/update request.
type NotebookRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Archived    bool   `json:"archived"`
}

// List godoc
// @Summary List the caller's notebooks
// @Tags notebooks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Notebook
// @Failure 401 {object} errors.Detail
// @Failure 500 {object} errors.Detail
// @Router /notebooks [get]
func (h *NotebookHandler) List(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	notebooks, err := h.notebookService.List(c.Request().Context(), identity)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, notebooks)
}

// Create godoc
// @Summary Create a notebook
// @Tags notebooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body NotebookRequest true "Notebook data"
// @Success 201 {object} model.Notebook
// @Failure 400 {object} errors.Detail
// @Failure 401 {object} errors.Detail
// @Failure 500 {object} errors.Detail
// @Router /notebooks [post]
func (h *NotebookHandler) Create(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req NotebookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.Detail{Detail: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.Detail{Detail: err.Error()})
	}

	notebook, err := h.notebookService.Create(c.Request().Context(), identity, req.Name, req.Description)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, notebook)
}

// Get godoc
// @Summary Read a notebook
// @Tags notebooks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notebook ID"
// @Success 200 {object} model.Notebook
// @Failure 400 {object} errors.Detail
// @Failure 401 {object} errors.Detail
// @Failure 404 {object} errors.Detail
// @Router /notebooks/{id} [get]
func (h *NotebookHandler) Get(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	notebook, err := h.notebookService.Get(c.Request().Context(), identity, id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, notebook)
}

// Update godoc
// @Summary Update a notebook
// @Tags notebooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notebook ID"
// @Param request body NotebookRequest true "Notebook data"
// @Success 200 {object} model.Notebook
// @Failure 400 {object} errors.Detail
// @Failure 401 {object} errors.Detail
// @Failure 404 {object} errors.Detail
// @Router /notebooks/{id} [put]
func (h *NotebookHandler) Update(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req NotebookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.Detail{Detail: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.Detail{Detail: err.Error()})
	}

	notebook, err := h.notebookService.Update(c.Request().Context(), identity, id, req.Name, req.Description, req.Archived)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, notebook)
}

// Delete godoc
// @Summary Delete a notebook
// @Tags notebooks
// @Security BearerAuth
// @Param id path string true "Notebook ID"
// @Success 204
// @Failure 400 {object} errors.Detail
// @Failure 401 {object} errors.Detail
// @Failure 404 {object} errors.Detail
// @Router /notebooks/{id} [delete]
func (h *NotebookHandler) Delete(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.notebookService.Delete(c.Request().Context(), identity, id); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// callerIdentity fetches the identity the gate attached. A missing identity
// on a gated route means the route was mistakenly added to an exclusion list.
func callerIdentity(c echo.Context) (auth.Identity, error) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization header")
	}
	return identity, nil
}

func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func serviceError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Errorf("request failed for %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToDetail())
}
