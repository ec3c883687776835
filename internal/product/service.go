package product

import (
	"context"
	"strings"
	"time"

	"eshop-be/internal/logger"
	"eshop-be/internal/metrics"
	"eshop-be/internal/validation"

	"go.uber.org/zap"
)

// Service is the catalog: paged browsing for shoppers, lookups for the
// cart and order flows, and staff maintenance.
type Service interface {
	GetAll(ctx context.Context, page int) (*Page, error)
	GetByCategory(ctx context.Context, categoryID int64, page int) (*Page, error)
	Search(ctx context.Context, text string, page int) (*Page, error)

	GetByID(ctx context.Context, id int64) (*Product, error)
	GetByName(ctx context.Context, name string) (*Product, error)
	GetShowByID(ctx context.Context, id int64) (*Show, error)
	GetEditByID(ctx context.Context, id int64) (*Edit, error)
	FilteredByIDs(ctx context.Context, ids []int64) ([]*Product, error)

	Create(ctx context.Context, input Input) (*Product, error)
	Edit(ctx context.Context, input Input) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context, page int) (*Page, error) {
	return s.page(ctx, "all", Filter{}, page)
}

func (s *service) GetByCategory(ctx context.Context, categoryID int64, page int) (*Page, error) {
	return s.page(ctx, "category", Filter{CategoryID: &categoryID}, page)
}

func (s *service) Search(ctx context.Context, text string, page int) (*Page, error) {
	return s.page(ctx, "search", Filter{Search: &text}, page)
}

// page counts the whole filtered set, then loads one window of it.
func (s *service) page(ctx context.Context, mode string, filter Filter, page int) (*Page, error) {
	defer metrics.ObserveCatalogQuery(mode, time.Now())

	page = NormalizePage(page)
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "page"),
		zap.String("mode", mode),
		zap.Int("page", page),
	)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error("failed to count products", zap.Error(err))
		return nil, err
	}

	products, err := s.repo.List(ctx, filter, PageSize, offsetFor(page, PageSize))
	if err != nil {
		log.Error("failed to list products", zap.Error(err))
		return nil, err
	}

	shows, err := s.toShows(ctx, products)
	if err != nil {
		log.Error("failed to load product images", zap.Error(err))
		return nil, err
	}

	log.Info("catalog page loaded", zap.Int("count", len(shows)), zap.Int("total", total))
	return &Page{
		Products:   shows,
		Pagination: NewPageInfo(total, page, PageSize),
	}, nil
}

func (s *service) toShows(ctx context.Context, products []*Product) ([]*Show, error) {
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	images, err := s.repo.GetImagesByProductIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	shows := make([]*Show, 0, len(products))
	for _, p := range products {
		shows = append(shows, toShow(p, images[p.ID]))
	}
	return shows, nil
}

func toShow(p *Product, images []Image) *Show {
	return &Show{
		ID:               p.ID,
		Name:             p.Name,
		CategoryID:       p.CategoryID,
		CategoryName:     p.CategoryName,
		Price:            p.Price,
		ShortDescription: p.ShortDescription,
		Images:           encodeImages(images),
	}
}

func (s *service) GetByID(ctx context.Context, id int64) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByName(ctx context.Context, name string) (*Product, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *service) FilteredByIDs(ctx context.Context, ids []int64) ([]*Product, error) {
	return s.repo.GetByIDs(ctx, ids)
}

func (s *service) GetShowByID(ctx context.Context, id int64) (*Show, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}

	shows, err := s.toShows(ctx, []*Product{p})
	if err != nil {
		return nil, err
	}
	return shows[0], nil
}

func (s *service) GetEditByID(ctx context.Context, id int64) (*Edit, error) {
	show, err := s.GetShowByID(ctx, id)
	if err != nil || show == nil {
		return nil, err
	}

	return &Edit{
		ID:               show.ID,
		Name:             show.Name,
		CategoryID:       show.CategoryID,
		Price:            show.Price,
		ShortDescription: show.ShortDescription,
		Images:           show.Images,
		DeleteAllImages:  false,
	}, nil
}

func normalizeInput(input *Input) {
	input.Name = strings.TrimSpace(input.Name)
	input.ShortDescription = strings.TrimSpace(input.ShortDescription)
}

func (s *service) Create(ctx context.Context, input Input) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
	)

	normalizeInput(&input)
	if err := validation.Struct(input, ErrInvalidProductInput); err != nil {
		return nil, err
	}

	images, err := decodeImages(input.Images)
	if err != nil {
		log.Warn("rejected product images", zap.Error(err))
		return nil, err
	}

	p := Product{
		CategoryID:       input.CategoryID,
		Name:             input.Name,
		Price:            input.Price,
		ShortDescription: input.ShortDescription,
	}

	id, err := s.repo.Create(ctx, p, images)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}
	p.ID = id

	log.Info("product created", zap.Int64("product_id", id), zap.Int("images", len(images)))
	return &p, nil
}

// Edit overwrites the product fields. Uploaded images replace the stored
// set; with no upload, DeleteAllImages clears it and otherwise it is kept.
func (s *service) Edit(ctx context.Context, input Input) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Edit"),
		zap.Int64("product_id", input.ID),
	)

	if input.ID < 1 {
		return ErrInvalidProductInput
	}

	normalizeInput(&input)
	if err := validation.Struct(input, ErrInvalidProductInput); err != nil {
		return err
	}

	images, err := decodeImages(input.Images)
	if err != nil {
		log.Warn("rejected product images", zap.Error(err))
		return err
	}

	change := keepImages
	switch {
	case len(images) > 0:
		change = replaceImages
	case input.DeleteAllImages:
		change = clearImages
	}

	p := Product{
		ID:               input.ID,
		CategoryID:       input.CategoryID,
		Name:             input.Name,
		Price:            input.Price,
		ShortDescription: input.ShortDescription,
	}

	if err := s.repo.Update(ctx, p, change, images); err != nil {
		log.Error("failed to edit product", zap.Error(err))
		return err
	}

	log.Info("product edited")
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.FromCtx(ctx).Error("failed to delete product",
			zap.String("layer", "service"),
			zap.Int64("product_id", id),
			zap.Error(err),
		)
		return err
	}
	return nil
}
