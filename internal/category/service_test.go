package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAll(ctx context.Context) ([]*Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Category), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int64) (*Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) Add(ctx context.Context, name string) (*Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, c Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// --- Tests ---

func TestService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		expected := &Category{ID: 1, Name: "Phones"}
		mockRepo.On("Add", ctx, "Phones").Return(expected, nil)

		res, err := svc.Add(ctx, "  Phones ")
		assert.NoError(t, err)
		assert.Equal(t, expected, res)
		mockRepo.AssertExpectations(t)
	})

	t.Run("EmptyName", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Add(ctx, "   ")
		assert.ErrorIs(t, err, ErrInvalidCategoryName)
		mockRepo.AssertNumberOfCalls(t, "Add", 0)
	})

	t.Run("TooLong", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Add(ctx, strings.Repeat("x", 101))
		assert.ErrorIs(t, err, ErrInvalidCategoryName)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("Add", ctx, "Phones").Return(nil, errors.New("db error"))

		_, err := svc.Add(ctx, "Phones")
		assert.EqualError(t, err, "db error")
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("Update", ctx, Category{ID: 1, Name: "Phones"}).Return(nil)

		assert.NoError(t, svc.Update(ctx, Category{ID: 1, Name: "Phones "}))
		mockRepo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("Update", ctx, Category{ID: 5, Name: "Phones"}).Return(ErrCategoryNotFound)

		assert.ErrorIs(t, svc.Update(ctx, Category{ID: 5, Name: "Phones"}), ErrCategoryNotFound)
	})

	t.Run("InvalidName", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		assert.ErrorIs(t, svc.Update(ctx, Category{ID: 1}), ErrInvalidCategoryName)
	})
}

func TestService_DeleteAndRead(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	mockRepo.On("Delete", ctx, int64(4)).Return(ErrCategoryNotFound)
	mockRepo.On("FindByID", ctx, int64(4)).Return(nil, nil)
	mockRepo.On("GetAll", ctx).Return([]*Category{{ID: 1, Name: "Phones"}}, nil)

	assert.ErrorIs(t, svc.Delete(ctx, 4), ErrCategoryNotFound)

	c, err := svc.FindByID(ctx, 4)
	assert.NoError(t, err)
	assert.Nil(t, c)

	all, err := svc.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)

	mockRepo.AssertExpectations(t)
}

func TestMapCategoryToGraphQL(t *testing.T) {
	assert.Nil(t, MapCategoryToGraphQL(nil))

	out := MapCategoriesToGraphQL([]*Category{{ID: 2, Name: "Laptops"}})
	assert.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].ID)
	assert.Equal(t, "Laptops", out[0].Name)
}
