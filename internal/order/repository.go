package order

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"eshop-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, o Order) (int64, error)
	GetByID(ctx context.Context, id int64) (*Order, error)
	List(ctx context.Context, userID *string, limit int) ([]*Order, error)
	GetItemsByOrderIDs(ctx context.Context, ids []int64) (map[int64][]Item, error)
	Update(ctx context.Context, o Order) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectOrder = `
	SELECT o.id, o.user_id, o.created_at, o.status, o.address, o.phone_number, o.comment
	FROM orders o
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(s rowScanner) (*Order, error) {
	var (
		o       Order
		status  string
		comment sql.NullString
	)
	if err := s.Scan(&o.ID, &o.UserID, &o.CreatedAt, &status, &o.Address, &o.PhoneNumber, &comment); err != nil {
		return nil, err
	}
	o.Status = Status(status)
	if comment.Valid {
		c := comment.String
		o.Comment = &c
	}
	return &o, nil
}

func (r *repository) Create(ctx context.Context, o Order) (int64, error) {
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
		INSERT INTO orders (user_id, created_at, status, address, phone_number, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, o.UserID, o.CreatedAt, string(o.Status), o.Address, o.PhoneNumber, o.Comment).Scan(&id)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return 0, err
	}

	for _, it := range o.Items {
		if _, err := insertItem(ctx, tx, id, it); err != nil {
			log.Error("failed to insert order item",
				zap.Int64("product_id", it.ProductID),
				zap.Error(err),
			)
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	log.Info("order created", zap.Int64("order_id", id), zap.Int("items", len(o.Items)))
	return id, nil
}

func insertItem(ctx context.Context, tx *sql.Tx, orderID int64, it Item) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `
		INSERT INTO order_items (order_id, product_id, product_name, quantity, amount_for_one)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, orderID, it.ProductID, it.ProductName, it.Quantity, it.AmountForOne).Scan(&id)
	return id, err
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, selectOrder+` WHERE o.id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get order",
			zap.String("layer", "repository"),
			zap.Int64("order_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	return o, nil
}

// List returns orders by ascending id. A nil userID lists every user's
// orders; limit <= 0 means no limit.
func (r *repository) List(ctx context.Context, userID *string, limit int) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	var (
		where []string
		args  []any
	)
	if userID != nil {
		args = append(args, *userID)
		where = append(where, fmt.Sprintf("o.user_id = $%d", len(args)))
	}

	query := selectOrder
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY o.id"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (r *repository) GetItemsByOrderIDs(ctx context.Context, ids []int64) (map[int64][]Item, error) {
	result := make(map[int64][]Item)
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT i.id, i.order_id, i.product_id, i.product_name, i.quantity, i.amount_for_one
		FROM order_items i
		WHERE i.order_id = ANY($1)
		ORDER BY i.order_id, i.id
	`, pq.Array(ids))
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query order items",
			zap.String("layer", "repository"),
			zap.Error(err),
		)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.AmountForOne); err != nil {
			return nil, err
		}
		result[it.OrderID] = append(result[it.OrderID], it)
	}
	return result, rows.Err()
}

// Update rewrites the editable header fields and reconciles items: stored
// items missing from o.Items are deleted, known ones updated in place and
// items with a zero ID inserted. Owner and creation time are untouched.
func (r *repository) Update(ctx context.Context, o Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Update"),
		zap.Int64("order_id", o.ID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, address = $2, phone_number = $3, comment = $4
		WHERE id = $5
	`, string(o.Status), o.Address, o.PhoneNumber, o.Comment, o.ID)
	if err != nil {
		log.Error("failed to update order", zap.Error(err))
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrOrderNotFound
	}

	keep := make([]int64, 0, len(o.Items))
	for _, it := range o.Items {
		if it.ID > 0 {
			keep = append(keep, it.ID)
		}
	}
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM order_items
		WHERE order_id = $1 AND id <> ALL($2)
	`, o.ID, pq.Array(keep)); err != nil {
		log.Error("failed to delete dropped order items", zap.Error(err))
		return err
	}

	for _, it := range o.Items {
		if it.ID == 0 {
			if _, err := insertItem(ctx, tx, o.ID, it); err != nil {
				log.Error("failed to insert order item", zap.Error(err))
				return err
			}
			continue
		}
		res, err := tx.ExecContext(ctx, `
			UPDATE order_items
			SET product_id = $1, product_name = $2, quantity = $3, amount_for_one = $4
			WHERE id = $5 AND order_id = $6
		`, it.ProductID, it.ProductName, it.Quantity, it.AmountForOne, it.ID, o.ID)
		if err != nil {
			log.Error("failed to update order item", zap.Int64("item_id", it.ID), zap.Error(err))
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			log.Warn("order item not in order", zap.Int64("item_id", it.ID))
			return ErrOrderItemNotFound
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Info("order updated", zap.String("status", string(o.Status)), zap.Int("items", len(o.Items)))
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to delete order",
			zap.String("layer", "repository"),
			zap.Int64("order_id", id),
			zap.Error(err),
		)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}
