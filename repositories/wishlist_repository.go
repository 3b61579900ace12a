package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"online-shop/config"
	"online-shop/models"
)

type WishlistRepository struct{}

func NewWishlistRepository() *WishlistRepository {
	return &WishlistRepository{}
}

func (r *WishlistRepository) GetOrCreateWishlist(ctx context.Context, userID int) (*models.Wishlist, error) {
	wishlist := &models.Wishlist{}
	err := config.DB.QueryRow(ctx,
		`SELECT id, user_id, created_at, updated_at FROM wishlists WHERE user_id = $1`,
		userID,
	).Scan(&wishlist.ID, &wishlist.UserID, &wishlist.CreatedAt, &wishlist.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		now := time.Now()
		err = config.DB.QueryRow(ctx,
			`INSERT INTO wishlists (user_id, created_at, updated_at) VALUES ($1, $2, $3)
			 ON CONFLICT (user_id) DO UPDATE SET updated_at = wishlists.updated_at
			 RETURNING id, user_id, created_at, updated_at`,
			userID, now, now,
		).Scan(&wishlist.ID, &wishlist.UserID, &wishlist.CreatedAt, &wishlist.UpdatedAt)
	}
	if err != nil {
		return nil, err
	}
	return wishlist, nil
}

func (r *WishlistRepository) GetWishlistWithItems(ctx context.Context, userID int) (*models.Wishlist, error) {
	wishlist, err := r.GetOrCreateWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := config.DB.Query(ctx, `
		SELECT
			wi.id, wi.wishlist_id, wi.product_id, wi.created_at,
			p.id, p.code, p.name, p.description, COALESCE(p.image, ''), COALESCE(p.category, ''),
			p.price, p.quantity, COALESCE(p.internal_reference, ''), COALESCE(p.shell_id, 0),
			p.inventory_status, COALESCE(p.rating, 0), p.created_at, p.updated_at
		FROM wishlist_items wi
		JOIN products p ON wi.product_id = p.id
		WHERE wi.wishlist_id = $1
		ORDER BY wi.id
	`, wishlist.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.WishlistItem{}
	for rows.Next() {
		var item models.WishlistItem
		var p models.Product
		err := rows.Scan(
			&item.ID, &item.WishlistID, &item.ProductID, &item.CreatedAt,
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
	if err := rows.Err(); err != nil {
		return nil, err
	}

	wishlist.Items = items
	return wishlist, nil
}

func (r *WishlistRepository) HasItem(ctx context.Context, wishlistID, productID int) (bool, error) {
	var count int
	err := config.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM wishlist_items WHERE wishlist_id = $1 AND product_id = $2`,
		wishlistID, productID,
	).Scan(&count)
	return count > 0, err
}

func (r *WishlistRepository) InsertItem(ctx context.Context, item *models.WishlistItem) error {
	err := config.DB.QueryRow(ctx,
		`INSERT INTO wishlist_items (wishlist_id, product_id, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		item.WishlistID, item.ProductID, time.Now(),
	).Scan(&item.ID, &item.CreatedAt)

	if isUniqueViolation(err) {
		// Another request added the same product first; membership holds.
		return nil
	}
	return err
}

func (r *WishlistRepository) FindItem(ctx context.Context, itemID int) (*models.WishlistItem, error) {
	item := &models.WishlistItem{}
	err := config.DB.QueryRow(ctx,
		`SELECT id, wishlist_id, product_id, created_at FROM wishlist_items WHERE id = $1`,
		itemID,
	).Scan(&item.ID, &item.WishlistID, &item.ProductID, &item.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *WishlistRepository) DeleteItem(ctx context.Context, itemID int) error {
	result, err := config.DB.Exec(ctx, `DELETE FROM wishlist_items WHERE id = $1`, itemID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *WishlistRepository) ClearItems(ctx context.Context, wishlistID int) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM wishlist_items WHERE wishlist_id = $1`, wishlistID)
	return err
}
