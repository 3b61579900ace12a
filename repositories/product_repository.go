package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"online-shop/config"
	"online-shop/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `
	id, code, name, description, COALESCE(image, ''), COALESCE(category, ''),
	price, quantity, COALESCE(internal_reference, ''), COALESCE(shell_id, 0),
	inventory_status, COALESCE(rating, 0), created_at, updated_at
`

func scanProduct(row pgx.Row) (*models.Product, error) {
	p := &models.Product{}
	err := row.Scan(
		&p.ID,
		&p.Code,
		&p.Name,
		&p.Description,
		&p.Image,
		&p.Category,
		&p.Price,
		&p.Quantity,
		&p.InternalReference,
		&p.ShellID,
		&p.InventoryStatus,
		&p.Rating,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func collectProducts(rows pgx.Rows) ([]models.Product, error) {
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *ProductRepository) FindPage(ctx context.Context, page, size int) ([]models.Product, int, error) {
	var total int
	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size
	rows, err := config.DB.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY id LIMIT $1 OFFSET $2`,
		size, offset)
	if err != nil {
		return nil, 0, err
	}

	products, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int) (*models.Product, error) {
	row := config.DB.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

func (r *ProductRepository) FindByCode(ctx context.Context, code string) (*models.Product, error) {
	row := config.DB.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE code = $1`, code)
	return scanProduct(row)
}

func (r *ProductRepository) FindByCategory(ctx context.Context, category string) ([]models.Product, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE category = $1 ORDER BY id`, category)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *ProductRepository) FindByInventoryStatus(ctx context.Context, status models.InventoryStatus) ([]models.Product, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE inventory_status = $1 ORDER BY id`, status)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products
			(code, name, description, image, category, price, quantity,
			 internal_reference, shell_id, inventory_status, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	err := config.DB.QueryRow(
		ctx,
		query,
		product.Code,
		product.Name,
		product.Description,
		product.Image,
		product.Category,
		product.Price,
		product.Quantity,
		product.InternalReference,
		product.ShellID,
		product.InventoryStatus,
		product.Rating,
		now,
		now,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)

	if isUniqueViolation(err) {
		return models.ErrConflict
	}
	return err
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET code = $1, name = $2, description = $3, image = $4, category = $5,
			price = $6, quantity = $7, internal_reference = $8, shell_id = $9,
			inventory_status = $10, rating = $11, updated_at = $12
		WHERE id = $13
	`

	result, err := config.DB.Exec(
		ctx,
		query,
		product.Code,
		product.Name,
		product.Description,
		product.Image,
		product.Category,
		product.Price,
		product.Quantity,
		product.InternalReference,
		product.ShellID,
		product.InventoryStatus,
		product.Rating,
		time.Now(),
		product.ID,
	)

	if isUniqueViolation(err) {
		return models.ErrConflict
	}
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	result, err := config.DB.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
