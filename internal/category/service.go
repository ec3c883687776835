package category

import (
	"context"
	"strings"

	"eshop-be/internal/logger"
	"eshop-be/internal/utils"

	"go.uber.org/zap"
)

// Service is the staff-facing category maintenance.
type Service interface {
	GetAll(ctx context.Context) ([]*Category, error)
	FindByID(ctx context.Context, id int64) (*Category, error)
	Add(ctx context.Context, name string) (*Category, error)
	Update(ctx context.Context, c Category) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utils.RuneLen(name) > 100 {
		return "", ErrInvalidCategoryName
	}
	return name, nil
}

func (s *service) GetAll(ctx context.Context) ([]*Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) FindByID(ctx context.Context, id int64) (*Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Add(ctx context.Context, name string) (*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Add"),
		zap.String("name", name),
	)
	log.Info("Add category started")

	name, err := validateName(name)
	if err != nil {
		log.Warn("invalid category name")
		return nil, err
	}

	c, err := s.repo.Add(ctx, name)
	if err != nil {
		log.Error("failed to add category", zap.Error(err))
		return nil, err
	}

	log.Info("Add category success", zap.Int64("category_id", c.ID))
	return c, nil
}

func (s *service) Update(ctx context.Context, c Category) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Update"),
		zap.Int64("category_id", c.ID),
	)

	name, err := validateName(c.Name)
	if err != nil {
		return err
	}
	c.Name = name

	if err := s.repo.Update(ctx, c); err != nil {
		log.Error("failed to update category", zap.Error(err))
		return err
	}

	log.Info("Update category success")
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Delete"),
		zap.Int64("category_id", id),
	)

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("failed to delete category", zap.Error(err))
		return err
	}

	log.Info("Delete category success")
	return nil
}
