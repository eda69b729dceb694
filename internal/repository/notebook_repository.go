package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"notebook/internal/model"
)

// NotebookRepository defines notebook persistence operations.
type NotebookRepository interface {
	Create(ctx context.Context, notebook *model.Notebook) error
	Update(ctx context.Context, notebook *model.Notebook) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Notebook, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Notebook, error)
	List(ctx context.Context) ([]model.Notebook, error)
}

type notebookRepository struct {
	db *gorm.DB
}

// NewNotebookRepository builds a GORM-backed repository.
func NewNotebookRepository(db *gorm.DB) NotebookRepository {
	return &notebookRepository{db: db}
}

func (r *notebookRepository) Create(ctx context.Context, notebook *model.Notebook) error {
	return r.db.WithContext(ctx).Create(notebook).Error
}

func (r *notebookRepository) Update(ctx context.Context, notebook *model.Notebook) error {
	return r.db.WithContext(ctx).Save(notebook).Error
}

func (r *notebookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Notebook{}).Error
}

func (r *notebookRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Notebook, error) {
	var notebook model.Notebook
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&notebook).Error; err != nil {
		return nil, err
	}
	return &notebook, nil
}

func (r *notebookRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Notebook, error) {
	var notebooks []model.Notebook
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&notebooks).Error; err != nil {
		return nil, err
	}
	return notebooks, nil
}

func (r *notebookRepository) List(ctx context.Context) ([]model.Notebook, error) {
	var notebooks []model.Notebook
	if err := r.db.WithContext(ctx).Find(&notebooks).Error; err != nil {
		return nil, err
	}
	return notebooks, nil
}
