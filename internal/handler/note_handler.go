package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"notebook/internal/errors"
	"notebook/internal/service"
)

// NoteHandler handles note endpoints.
type NoteHandler struct {
	noteService service.NoteService
}

// NewNoteHandler creates a new note handler.
func NewNoteHandler(noteService service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// NoteRequest represents a note create/update request.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content" validate:"required"`
}

// ListByNotebook godoc
// @Summary List notes in a notebook
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notebook ID"
// @Success 200 {array} model.Note
// @Failure 401 {object} errors.Detail
// @Failure 404 {object} errors.Detail
// @Router /notebooks/{id}/notes [get]
func (h *NoteHandler) ListByNotebook(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}
	notebookID, err := pathID(c)
	if err != nil {
		return err
	}

	notes, err := h.noteService.ListByNotebook(c.Request().Context(), identity, notebookID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, notes)
}

// Create godoc
// @Summary Create a note in a notebook
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notebook ID"
// @Param request body NoteRequest true "Note data"
// @Success 201 {object} model.Note
// @Failure 400 {object} errors.Detail
// @Failure 401 {object} errors.Detail
// @Failure 404 {object} errors.Detail
// @Router /notebooks/{id}/notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}
	notebookID, err := pathID(c)
	if err != nil {
		return err
	}

	var req NoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.Detail{Detail: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.Detail{Detail: err.Error()})
	}

	note, err := h.noteService.Create(c.Request().Context(), identity, notebookID, req.Title, req.Content)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, note)
}

// Get godoc
// @Summary Read a note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Success 200 {object} model.Note
// @Failure 400 {object} errors.Detail
// @Failure 401 {object} errors.Detail
// @Failure 404 {object} errors.Detail
// @Router /notes/{id} [get]
func (h *NoteHandler) Get(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	note, err := h.noteService.Get(c.Request().Context(), identity, id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, note)
}

// Update godoc
// @Summary Update a note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Param request body NoteRequest true "Note data"
// @Success 200 {object} model.Note
// @Failure 400 {object} errors.Detail
// @Failure 401 {object} errors.Detail
// @Failure 404 {object} errors.Detail
// @Router /notes/{id} [put]
func (h *NoteHandler) Update(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req NoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.Detail{Detail: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.Detail{Detail: err.Error()})
	}

	note, err := h.noteService.Update(c.Request().Context(), identity, id, req.Title, req.Content)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, note)
}

// Delete godoc
// @Summary Delete a note
// @Tags notes
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Success 204
// @Failure 400 {object} errors.Detail
// @Failure 401 {object} errors.Detail
// @Failure 404 {object} errors.Detail
// @Router /notes/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.noteService.Delete(c.Request().Context(), identity, id); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
