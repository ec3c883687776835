package product

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{"id", "category_id", "category_name", "name", "price", "short_description"}

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows(productColumns)
}

func TestRepository_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("All", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products p$`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

		total, err := repo.Count(ctx, Filter{})
		assert.NoError(t, err)
		assert.Equal(t, 42, total)
	})

	t.Run("Category", func(t *testing.T) {
		catID := int64(3)
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products p WHERE p.category_id = \$1`).
			WithArgs(catID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

		total, err := repo.Count(ctx, Filter{CategoryID: &catID})
		assert.NoError(t, err)
		assert.Equal(t, 5, total)
	})

	t.Run("SearchWinsOverCategory", func(t *testing.T) {
		catID := int64(3)
		text := "Phone"
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products p WHERE strpos\(p.name, \$1\) > 0`).
			WithArgs(text).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(17))

		total, err := repo.Count(ctx, Filter{CategoryID: &catID, Search: &text})
		assert.NoError(t, err)
		assert.Equal(t, 17, total)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("db error"))

		_, err := repo.Count(ctx, Filter{})
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("SearchSecondPage", func(t *testing.T) {
		text := "Phone"
		mock.ExpectQuery(`FROM products p LEFT JOIN categories c ON c.id = p.category_id\s+WHERE strpos\(p.name, \$1\) > 0 ORDER BY p.id LIMIT \$2 OFFSET \$3`).
			WithArgs(text, PageSize, PageSize).
			WillReturnRows(productRows().AddRow(16, 1, "Phones", "Phone X", 999, "A very good phone"))

		products, err := repo.List(ctx, Filter{Search: &text}, PageSize, PageSize)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, int64(16), products[0].ID)
		assert.Equal(t, "Phones", products[0].CategoryName)
		assert.Equal(t, "Phone X", products[0].Name)
	})

	t.Run("All", func(t *testing.T) {
		mock.ExpectQuery(`ORDER BY p.id LIMIT \$1 OFFSET \$2`).
			WithArgs(PageSize, 0).
			WillReturnRows(productRows())

		products, err := repo.List(ctx, Filter{}, PageSize, 0)
		assert.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("FROM products p").WillReturnError(errors.New("db error"))

		_, err := repo.List(ctx, Filter{}, PageSize, 0)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetImagesByProductIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("NoIDs", func(t *testing.T) {
		res, err := repo.GetImagesByProductIDs(context.Background(), nil)
		assert.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("Grouped", func(t *testing.T) {
		ids := []int64{1, 2}
		mock.ExpectQuery(`FROM product_images\s+WHERE product_id = ANY\(\$1\)`).
			WithArgs(pq.Array(ids)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "data"}).
				AddRow(10, 1, []byte{1}).
				AddRow(11, 1, []byte{2}).
				AddRow(12, 2, []byte{3}))

		res, err := repo.GetImagesByProductIDs(context.Background(), ids)
		require.NoError(t, err)
		assert.Len(t, res[1], 2)
		assert.Len(t, res[2], 1)
		assert.Equal(t, []byte{3}, res[2][0].Data)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`WHERE p.id = \$1`).
			WithArgs(int64(7)).
			WillReturnRows(productRows().AddRow(7, 2, "Laptops", "Book Pro", 45000, "Thin and light laptop"))

		p, err := repo.GetByID(context.Background(), 7)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, int64(45000), p.Price)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`WHERE p.id = \$1`).
			WithArgs(int64(8)).
			WillReturnRows(productRows())

		p, err := repo.GetByID(context.Background(), 8)
		assert.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("ByName", func(t *testing.T) {
		mock.ExpectQuery(`WHERE p.name = \$1 ORDER BY p.id LIMIT 1`).
			WithArgs("Book Pro").
			WillReturnRows(productRows().AddRow(7, 2, "Laptops", "Book Pro", 45000, "Thin and light laptop"))

		p, err := repo.GetByName(context.Background(), "Book Pro")
		require.NoError(t, err)
		assert.Equal(t, int64(7), p.ID)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ids := []int64{1, 3}

	mock.ExpectQuery(`WHERE p.id = ANY\(\$1\) ORDER BY p.id`).
		WithArgs(pq.Array(ids)).
		WillReturnRows(productRows().
			AddRow(1, 1, "Phones", "Phone", 100, "Phone description").
			AddRow(3, 1, "Phones", "Case", 10, "Case description"))

	products, err := repo.GetByIDs(context.Background(), ids)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	empty, err := repo.GetByIDs(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, empty)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	p := Product{CategoryID: 1, Name: "Phone", Price: 100, ShortDescription: "Phone description"}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO products").
			WithArgs(int64(1), "Phone", int64(100), "Phone description").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
		mock.ExpectExec("INSERT INTO product_images").
			WithArgs(int64(5), []byte{1}).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		id, err := repo.Create(context.Background(), p, [][]byte{{1}})
		assert.NoError(t, err)
		assert.Equal(t, int64(5), id)
	})

	t.Run("ImageInsertFailsRollsBack", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO products").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(6))
		mock.ExpectExec("INSERT INTO product_images").WillReturnError(errors.New("too large"))
		mock.ExpectRollback()

		_, err := repo.Create(context.Background(), p, [][]byte{{1}})
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	p := Product{ID: 5, CategoryID: 1, Name: "Phone", Price: 120, ShortDescription: "Phone description"}

	t.Run("KeepImages", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE products").
			WithArgs(int64(1), "Phone", int64(120), "Phone description", int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Update(ctx, p, keepImages, nil))
	})

	t.Run("ClearImages", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE products").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM product_images WHERE product_id = \$1`).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		assert.NoError(t, repo.Update(ctx, p, clearImages, nil))
	})

	t.Run("ReplaceImages", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE products").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM product_images").WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("INSERT INTO product_images").
			WithArgs(int64(5), []byte{7}).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Update(ctx, p, replaceImages, [][]byte{{7}}))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE products").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Update(ctx, p, keepImages, nil), ErrProductNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(context.Background(), 5))

	mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 6), ErrProductNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
