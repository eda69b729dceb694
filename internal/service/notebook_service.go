package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"notebook/internal/auth"
	"notebook/internal/cache"
	apperrors "notebook/internal/errors"
	"notebook/internal/model"
	"notebook/internal/repository"
)

const notebookCacheTTL = 5 * time.Minute

// NotebookService exposes owner-scoped notebook operations. Admins may read
// every notebook; regular users only their own.
type NotebookService interface {
	Create(ctx context.Context, identity auth.Identity, name, description string) (*model.Notebook, error)
	Get(ctx context.Context, identity auth.Identity, id uuid.UUID) (*model.Notebook, error)
	List(ctx context.Context, identity auth.Identity) ([]model.Notebook, error)
	Update(ctx context.Context, identity auth.Identity, id uuid.UUID, name, description string, archived bool) (*model.Notebook, error)
	Delete(ctx context.Context, identity auth.Identity, id uuid.UUID) error
}

type notebookService struct {
	notebooks repository.NotebookRepository
	cache     *cache.Client
}

// NewNotebookService builds a NotebookService with repository and cache.
func NewNotebookService(notebooks repository.NotebookRepository, cache *cache.Client) NotebookService {
	return &notebookService{notebooks: notebooks, cache: cache}
}

func (s *notebookService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("notebook:%s", id)
}

func (s *notebookService) Create(ctx context.Context, identity auth.Identity, name, description string) (*model.Notebook, error) {
	ownerID, err := uuid.Parse(identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("parse owner id: %w", err)
	}

	notebook := &model.Notebook{
		ID:          uuid.New(),
		UserID:      ownerID,
		Name:        name,
		Description: description,
	}
	if err := s.notebooks.Create(ctx, notebook); err != nil {
		return nil, fmt.Errorf("create notebook: %w", err)
	}
	return notebook, nil
}

func (s *notebookService) Get(ctx context.Context, identity auth.Identity, id uuid.UUID) (*model.Notebook, error) {
	var cached model.Notebook
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return s.authorize(identity, &cached)
	}

	notebook, err := s.notebooks.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotebookNotFound
		}
		return nil, err
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), notebook, notebookCacheTTL)
	return s.authorize(identity, notebook)
}

func (s *notebookService) List(ctx context.Context, identity auth.Identity) ([]model.Notebook, error) {
	if identity.IsAdmin() {
		return s.notebooks.List(ctx)
	}
	ownerID, err := uuid.Parse(identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("parse owner id: %w", err)
	}
	return s.notebooks.ListByUser(ctx, ownerID)
}

func (s *notebookService) Update(ctx context.Context, identity auth.Identity, id uuid.UUID, name, description string, archived bool) (*model.Notebook, error) {
	notebook, err := s.Get(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	notebook.Name = name
	notebook.Description = description
	notebook.Archived = archived
	if err := s.notebooks.Update(ctx, notebook); err != nil {
		return nil, fmt.Errorf("update notebook: %w", err)
	}
	s.cache.Invalidate(ctx, s.cacheKey(id))
	return notebook, nil
}

func (s *notebookService) Delete(ctx context.Context, identity auth.Identity, id uuid.UUID) error {
	if _, err := s.Get(ctx, identity, id); err != nil {
		return err
	}
	if err := s.notebooks.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete notebook: %w", err)
	}
	s.cache.Invalidate(ctx, s.cacheKey(id))
	return nil
}

// authorize hides other users' notebooks behind a not-found rather than a
// forbidden, so notebook IDs cannot be probed.
func (s *notebookService) authorize(identity auth.Identity, notebook *model.Notebook) (*model.Notebook, error) {
	if identity.IsAdmin() || notebook.UserID.String() == identity.UserID {
		return notebook, nil
	}
	return nil, apperrors.ErrNotebookNotFound
}
