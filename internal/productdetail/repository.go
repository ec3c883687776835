package productdetail

import (
	"context"
	"database/sql"

	"eshop-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	AddBulk(ctx context.Context, details []Detail) ([]Detail, error)
	ListByProduct(ctx context.Context, productID int64) ([]*Detail, error)
	Update(ctx context.Context, d Detail) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// AddBulk inserts all details in one transaction. Any failure rolls the
// whole batch back and is reported as a BulkInsertError.
func (r *repository) AddBulk(ctx context.Context, details []Detail) ([]Detail, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "AddBulk"),
		zap.Int("count", len(details)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &BulkInsertError{Cause: err}
	}
	defer tx.Rollback()

	saved := make([]Detail, 0, len(details))
	for _, d := range details {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO product_details (product_id, title, description)
			VALUES ($1, $2, $3)
			RETURNING id
		`, d.ProductID, d.Title, d.Description).Scan(&d.ID)
		if err != nil {
			log.Error("failed to insert product detail", zap.Error(err))
			return nil, &BulkInsertError{Cause: err}
		}
		saved = append(saved, d)
	}

	if err := tx.Commit(); err != nil {
		return nil, &BulkInsertError{Cause: err}
	}

	log.Info("product details added")
	return saved, nil
}

func (r *repository) ListByProduct(ctx context.Context, productID int64) ([]*Detail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, title, description
		FROM product_details
		WHERE product_id = $1
		ORDER BY id
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := []*Detail{}
	for rows.Next() {
		var d Detail
		if err := rows.Scan(&d.ID, &d.ProductID, &d.Title, &d.Description); err != nil {
			return nil, err
		}
		details = append(details, &d)
	}
	return details, rows.Err()
}

func (r *repository) Update(ctx context.Context, d Detail) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE product_details
		SET title = $1, description = $2
		WHERE id = $3
	`, d.Title, d.Description, d.ID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM product_details WHERE id = $1`, id)
	if err != nil {
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
		return ErrDetailNotFound
	}
	return nil
}
