package category

import (
	"context"
	"database/sql"
	"errors"

	"eshop-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetAll(ctx context.Context) ([]*Category, error)
	FindByID(ctx context.Context, id int64) (*Category, error)
	Add(ctx context.Context, name string) (*Category, error)
	Update(ctx context.Context, c Category) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetAll"),
	)

	rows, err := r.db.QueryContext(ctx, `SELECT c.id, c.name FROM categories c ORDER BY c.id`)
	if err != nil {
		log.Error("DB query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	categories := []*Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, err
		}
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, err
	}

	return categories, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx,
		`SELECT c.id, c.name FROM categories c WHERE c.id = $1`, id,
	).Scan(&c.ID, &c.Name)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to find category",
			zap.String("layer", "repository"),
			zap.Int64("category_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return &c, nil
}

func (r *repository) Add(ctx context.Context, name string) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id, name`, name,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, c Category) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = $1 WHERE id = $2`, c.Name, c.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgForeignKeyViolation {
			return ErrCategoryInUse
		}
		return err
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
