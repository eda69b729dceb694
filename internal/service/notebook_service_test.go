package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"notebook/internal/auth"
	apperrors "notebook/internal/errors"
	"notebook/internal/model"
)

// MockNotebookRepository is a mock implementation of NotebookRepository.
type MockNotebookRepository struct {
	mock.Mock
}

func (m *MockNotebookRepository) Create(ctx context.Context, notebook *model.Notebook) error {
	args := m.Called(ctx, notebook)
	return args.Error(0)
}

func (m *MockNotebookRepository) Update(ctx context.Context, notebook *model.Notebook) error {
	args := m.Called(ctx, notebook)
	return args.Error(0)
}

func (m *MockNotebookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotebookRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Notebook, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notebook), args.Error(1)
}

func (m *MockNotebookRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Notebook, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notebook), args.Error(1)
}

func (m *MockNotebookRepository) List(ctx context.Context) ([]model.Notebook, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notebook), args.Error(1)
}

func identityFor(userID uuid.UUID, role string) auth.Identity {
	return auth.Identity{UserID: userID.String(), Role: role}
}

func TestNotebookService_Get_OwnerScoping(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()
	notebookID := uuid.New()
	stored := &model.Notebook{ID: notebookID, UserID: ownerID, Name: "research"}

	tests := []struct {
		name          string
		identity      auth.Identity
		expectedError error
	}{
		{"owner reads own notebook", identityFor(ownerID, model.RoleUser), nil},
		{"admin reads any notebook", identityFor(strangerID, model.RoleAdmin), nil},
		{"stranger sees not-found", identityFor(strangerID, model.RoleUser), apperrors.ErrNotebookNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockNotebookRepository)
			mockRepo.On("FindByID", mock.Anything, notebookID).Return(stored, nil)

			service := NewNotebookService(mockRepo, nil)
			notebook, err := service.Get(context.Background(), tt.identity, notebookID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, notebook)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "research", notebook.Name)
			}
		})
	}
}

func TestNotebookService_Get_Missing(t *testing.T) {
	mockRepo := new(MockNotebookRepository)
	id := uuid.New()
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	service := NewNotebookService(mockRepo, nil)
	_, err := service.Get(context.Background(), identityFor(uuid.New(), model.RoleUser), id)
	assert.ErrorIs(t, err, apperrors.ErrNotebookNotFound)
}

func TestNotebookService_List(t *testing.T) {
	userID := uuid.New()

	t.Run("user lists own notebooks", func(t *testing.T) {
		mockRepo := new(MockNotebookRepository)
		mockRepo.On("ListByUser", mock.Anything, userID).Return([]model.Notebook{{Name: "mine"}}, nil)

		service := NewNotebookService(mockRepo, nil)
		notebooks, err := service.List(context.Background(), identityFor(userID, model.RoleUser))
		require.NoError(t, err)
		assert.Len(t, notebooks, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("admin lists all notebooks", func(t *testing.T) {
		mockRepo := new(MockNotebookRepository)
		mockRepo.On("List", mock.Anything).Return([]model.Notebook{{Name: "a"}, {Name: "b"}}, nil)

		service := NewNotebookService(mockRepo, nil)
		notebooks, err := service.List(context.Background(), identityFor(userID, model.RoleAdmin))
		require.NoError(t, err)
		assert.Len(t, notebooks, 2)
		mockRepo.AssertExpectations(t)
	})
}

func TestNotebookService_Create(t *testing.T) {
	userID := uuid.New()
	mockRepo := new(MockNotebookRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Notebook")).Return(nil)

	service := NewNotebookService(mockRepo, nil)
	notebook, err := service.Create(context.Background(), identityFor(userID, model.RoleUser), "research", "notes on things")
	require.NoError(t, err)
	assert.Equal(t, userID, notebook.UserID)
	assert.Equal(t, "research", notebook.Name)
	assert.NotEqual(t, uuid.Nil, notebook.ID)
}

func TestNotebookService_Delete_StrangerRejected(t *testing.T) {
	ownerID := uuid.New()
	notebookID := uuid.New()
	mockRepo := new(MockNotebookRepository)
	mockRepo.On("FindByID", mock.Anything, notebookID).Return(&model.Notebook{ID: notebookID, UserID: ownerID}, nil)

	service := NewNotebookService(mockRepo, nil)
	err := service.Delete(context.Background(), identityFor(uuid.New(), model.RoleUser), notebookID)
	assert.ErrorIs(t, err, apperrors.ErrNotebookNotFound)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
