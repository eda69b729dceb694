package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"notebook/internal/auth"
	apperrors "notebook/internal/errors"
	"notebook/internal/model"
	"notebook/internal/repository"
)

// NoteService exposes note operations scoped to the owning notebook.
type NoteService interface {
	Create(ctx context.Context, identity auth.Identity, notebookID uuid.UUID, title, content string) (*model.Note, error)
	Get(ctx context.Context, identity auth.Identity, id uuid.UUID) (*model.Note, error)
	ListByNotebook(ctx context.Context, identity auth.Identity, notebookID uuid.UUID) ([]model.Note, error)
	Update(ctx context.Context, identity auth.Identity, id uuid.UUID, title, content string) (*model.Note, error)
	Delete(ctx context.Context, identity auth.Identity, id uuid.UUID) error
}

type noteService struct {
	notes     repository.NoteRepository
	notebooks NotebookService
}

// NewNoteService builds a NoteService. Notebook access checks are delegated
// to the notebook service so the ownership rules live in one place.
func NewNoteService(notes repository.NoteRepository, notebooks NotebookService) NoteService {
	return &noteService{notes: notes, notebooks: notebooks}
}

func (s *noteService) Create(ctx context.Context, identity auth.Identity, notebookID uuid.UUID, title, content string) (*model.Note, error) {
	notebook, err := s.notebooks.Get(ctx, identity, notebookID)
	if err != nil {
		return nil, err
	}

	note := &model.Note{
		ID:         uuid.New(),
		NotebookID: notebook.ID,
		UserID:     notebook.UserID,
		Title:      title,
		Content:    content,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

func (s *noteService) Get(ctx context.Context, identity auth.Identity, id uuid.UUID) (*model.Note, error) {
	note, err := s.notes.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, err
	}
	if _, err := s.notebooks.Get(ctx, identity, note.NotebookID); err != nil {
		return nil, apperrors.ErrNoteNotFound
	}
	return note, nil
}

func (s *noteService) ListByNotebook(ctx context.Context, identity auth.Identity, notebookID uuid.UUID) ([]model.Note, error) {
	if _, err := s.notebooks.Get(ctx, identity, notebookID); err != nil {
		return nil, err
	}
	return s.notes.ListByNotebook(ctx, notebookID)
}

func (s *noteService) Update(ctx context.Context, identity auth.Identity, id uuid.UUID, title, content string) (*model.Note, error) {
	note, err := s.Get(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	note.Title = title
	note.Content = content
	if err := s.notes.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return note, nil
}

func (s *noteService) Delete(ctx context.Context, identity auth.Identity, id uuid.UUID) error {
	if _, err := s.Get(ctx, identity, id); err != nil {
		return err
	}
	if err := s.notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
