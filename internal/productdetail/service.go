package productdetail

import (
	"context"
	"strings"

	"eshop-be/internal/logger"
	"eshop-be/internal/validation"

	"go.uber.org/zap"
)

type Service interface {
	AddBulk(ctx context.Context, details []Detail) ([]Detail, error)
	ListByProduct(ctx context.Context, productID int64) ([]*Detail, error)
	Edit(ctx context.Context, d Detail) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func normalize(d *Detail) {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
}

func (s *service) AddBulk(ctx context.Context, details []Detail) ([]Detail, error) {
	if len(details) == 0 {
		return nil, ErrNoDetails
	}

	for i := range details {
		normalize(&details[i])
		if err := validation.Struct(details[i], ErrInvalidDetail); err != nil {
			return nil, err
		}
	}

	saved, err := s.repo.AddBulk(ctx, details)
	if err != nil {
		logger.FromCtx(ctx).Error("AddBulk failed",
			zap.String("layer", "service"),
			zap.Error(err),
		)
		return nil, err
	}
	return saved, nil
}

func (s *service) ListByProduct(ctx context.Context, productID int64) ([]*Detail, error) {
	return s.repo.ListByProduct(ctx, productID)
}

func (s *service) Edit(ctx context.Context, d Detail) error {
	normalize(&d)
	if err := validation.Struct(d, ErrInvalidDetail); err != nil {
		return err
	}
	return s.repo.Update(ctx, d)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
