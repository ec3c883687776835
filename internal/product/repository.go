package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eshop-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Count(ctx context.Context, filter Filter) (int, error)
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Product, error)
	GetImagesByProductIDs(ctx context.Context, ids []int64) (map[int64][]Image, error)

	GetByID(ctx context.Context, id int64) (*Product, error)
	GetByName(ctx context.Context, name string) (*Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*Product, error)

	Create(ctx context.Context, p Product, images [][]byte) (int64, error)
	Update(ctx context.Context, p Product, change imageChange, images [][]byte) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectProduct = `
	SELECT
		p.id,
		p.category_id,
		COALESCE(c.name, ''),
		p.name,
		p.price,
		p.short_description
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
`

// buildWhere renders the filter. Search is a case-sensitive substring match
// on the product name.
func buildWhere(filter Filter) (string, []any) {
	where := []string{}
	args := []any{}

	if filter.Search != nil {
		args = append(args, *filter.Search)
		where = append(where, fmt.Sprintf("strpos(p.name, $%d) > 0", len(args)))
	} else if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		where = append(where, fmt.Sprintf("p.category_id = $%d", len(args)))
	}

	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

func scanProducts(rows *sql.Rows) ([]*Product, error) {
	products := []*Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.CategoryID,
			&p.CategoryName,
			&p.Name,
			&p.Price,
			&p.ShortDescription,
		); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

func (r *repository) Count(ctx context.Context, filter Filter) (int, error) {
	where, args := buildWhere(filter)

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products p"+where, args...).Scan(&total); err != nil {
		logger.FromCtx(ctx).Error("failed to count products",
			zap.String("layer", "repository"),
			zap.String("method", "Count"),
			zap.Error(err),
		)
		return 0, err
	}
	return total, nil
}

func (r *repository) List(ctx context.Context, filter Filter, limit, offset int) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
		zap.Int("limit", limit),
		zap.Int("offset", offset),
	)

	where, args := buildWhere(filter)
	query := selectProduct + where + " ORDER BY p.id"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	log.Debug("Executing List query", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		log.Error("Row scan failed", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (r *repository) GetImagesByProductIDs(ctx context.Context, ids []int64) (map[int64][]Image, error) {
	result := make(map[int64][]Image, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, data
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY id
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.ID, &img.ProductID, &img.Data); err != nil {
			return nil, err
		}
		result[img.ProductID] = append(result[img.ProductID], img)
	}
	return result, rows.Err()
}

func (r *repository) getOne(ctx context.Context, where string, arg any) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, selectProduct+where, arg).Scan(
		&p.ID,
		&p.CategoryID,
		&p.CategoryName,
		&p.Name,
		&p.Price,
		&p.ShortDescription,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Product, error) {
	return r.getOne(ctx, " WHERE p.id = $1", id)
}

func (r *repository) GetByName(ctx context.Context, name string) (*Product, error) {
	return r.getOne(ctx, " WHERE p.name = $1 ORDER BY p.id LIMIT 1", name)
}

func (r *repository) GetByIDs(ctx context.Context, ids []int64) ([]*Product, error) {
	if len(ids) == 0 {
		return []*Product{}, nil
	}

	rows, err := r.db.QueryContext(ctx, selectProduct+" WHERE p.id = ANY($1) ORDER BY p.id", pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func insertImages(ctx context.Context, tx *sql.Tx, productID int64, images [][]byte) error {
	for _, data := range images {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO product_images (product_id, data) VALUES ($1, $2)`,
			productID, data,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) Create(ctx context.Context, p Product, images [][]byte) (int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO products (category_id, name, price, short_description)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, p.CategoryID, p.Name, p.Price, p.ShortDescription).Scan(&id)
	if err != nil {
		log.Error("failed to insert product", zap.Error(err))
		return 0, err
	}

	if err := insertImages(ctx, tx, id, images); err != nil {
		log.Error("failed to insert product images", zap.Error(err))
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, p Product, change imageChange, images [][]byte) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Update"),
		zap.Int64("product_id", p.ID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE products
		SET category_id = $1, name = $2, price = $3, short_description = $4
		WHERE id = $5
	`, p.CategoryID, p.Name, p.Price, p.ShortDescription, p.ID)
	if err != nil {
		log.Error("failed to update product", zap.Error(err))
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrProductNotFound
	}

	if change != keepImages {
		if _, err := tx.ExecContext(ctx, `DELETE FROM product_images WHERE product_id = $1`, p.ID); err != nil {
			log.Error("failed to delete product images", zap.Error(err))
			return err
		}
	}
	if change == replaceImages {
		if err := insertImages(ctx, tx, p.ID, images); err != nil {
			log.Error("failed to insert product images", zap.Error(err))
			return err
		}
	}

	return tx.Commit()
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}
