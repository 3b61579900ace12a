package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"online-shop/config"
	"online-shop/models"
	"online-shop/services"
)

// CartRepository implements services.CartStore on top of Postgres. Stock and
// cart-item mutations run inside one pgx transaction; the product row is
// locked with FOR UPDATE so concurrent reservations serialize at the storage
// layer.
type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

func (r *CartRepository) GetOrCreateCart(ctx context.Context, userID int) (*models.Cart, error) {
	cart := &models.Cart{}
	err := config.DB.QueryRow(ctx,
		`SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $1`,
		userID,
	).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt, &cart.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		now := time.Now()
		err = config.DB.QueryRow(ctx,
			`INSERT INTO carts (user_id, created_at, updated_at) VALUES ($1, $2, $3)
			 ON CONFLICT (user_id) DO UPDATE SET updated_at = carts.updated_at
			 RETURNING id, user_id, created_at, updated_at`,
			userID, now, now,
		).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt, &cart.UpdatedAt)
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *CartRepository) GetCartWithItems(ctx context.Context, userID int) (*models.Cart, error) {
	cart, err := r.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := config.DB.Query(ctx, cartItemsQuery, cart.ID)
	if err != nil {
		return nil, err
	}

	cart.Items, err = collectCartItems(rows)
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *CartRepository) RunInTx(ctx context.Context, fn func(tx services.CartTx) error) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(&cartTx{tx: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

type cartTx struct {
	tx pgx.Tx
}

func (t *cartTx) ProductForUpdate(ctx context.Context, productID int) (*models.Product, error) {
	row := t.tx.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, productID)
	return scanProduct(row)
}

func (t *cartTx) AdjustProductQuantity(ctx context.Context, productID, delta int) error {
	result, err := t.tx.Exec(ctx,
		`UPDATE products SET quantity = quantity + $1, updated_at = $2 WHERE id = $3`,
		delta, time.Now(), productID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (t *cartTx) FindItemByProduct(ctx context.Context, cartID, productID int) (*models.CartItem, error) {
	item := &models.CartItem{}
	err := t.tx.QueryRow(ctx,
		`SELECT id, cart_id, product_id, quantity, created_at, updated_at
		 FROM cart_items WHERE cart_id = $1 AND product_id = $2`,
		cartID, productID,
	).Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (t *cartTx) FindItem(ctx context.Context, itemID int) (*models.CartItem, error) {
	item := &models.CartItem{}
	err := t.tx.QueryRow(ctx,
		`SELECT id, cart_id, product_id, quantity, created_at, updated_at
		 FROM cart_items WHERE id = $1`,
		itemID,
	).Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (t *cartTx) InsertItem(ctx context.Context, item *models.CartItem) error {
	now := time.Now()
	return t.tx.QueryRow(ctx,
		`INSERT INTO cart_items (cart_id, product_id, quantity, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		item.CartID, item.ProductID, item.Quantity, now, now,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (t *cartTx) UpdateItemQuantity(ctx context.Context, itemID, quantity int) error {
	result, err := t.tx.Exec(ctx,
		`UPDATE cart_items SET quantity = $1, updated_at = $2 WHERE id = $3`,
		quantity, time.Now(), itemID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (t *cartTx) DeleteItem(ctx context.Context, itemID int) error {
	result, err := t.tx.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (t *cartTx) ListItems(ctx context.Context, cartID int) ([]models.CartItem, error) {
	rows, err := t.tx.Query(ctx, cartItemsQuery, cartID)
	if err != nil {
		return nil, err
	}
	return collectCartItems(rows)
}

func (t *cartTx) DeleteItemsByCart(ctx context.Context, cartID int) error {
	_, err := t.tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID)
	return err
}

const cartItemsQuery = `
	SELECT
		ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at,
		p.id, p.code, p.name, p.description, COALESCE(p.image, ''), COALESCE(p.category, ''),
		p.price, p.quantity, COALESCE(p.internal_reference, ''), COALESCE(p.shell_id, 0),
		p.inventory_status, COALESCE(p.rating, 0), p.created_at, p.updated_at
	FROM cart_items ci
	JOIN products p ON ci.product_id = p.id
	WHERE ci.cart_id = $1
	ORDER BY ci.id
`

func collectCartItems(rows pgx.Rows) ([]models.CartItem, error) {
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		var p models.Product
		err := rows.Scan(
			&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
			&p.ID, &p.Code, &p.Name, &p.Description, &p.Image, &p.Category,
			&p.Price, &p.Quantity, &p.InternalReference, &p.ShellID,
			&p.InventoryStatus, &p.Rating, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		item.Product = &p
		items = append(items, item)
	}
	return items, rows.Err()
}
