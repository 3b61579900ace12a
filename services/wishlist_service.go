package services

import (
	"context"

	pkgerrors "github.com/pkg/errors"

	"online-shop/models"
)

// WishlistStore persists wishlists. Items are a pure membership set, one row
// per (wishlist, product) pair; no stock interaction anywhere.
type WishlistStore interface {
	GetOrCreateWishlist(ctx context.Context, userID int) (*models.Wishlist, error)
	GetWishlistWithItems(ctx context.Context, userID int) (*models.Wishlist, error)
	HasItem(ctx context.Context, wishlistID, productID int) (bool, error)
	InsertItem(ctx context.Context, item *models.WishlistItem) error
	FindItem(ctx context.Context, itemID int) (*models.WishlistItem, error)
	DeleteItem(ctx context.Context, itemID int) error
	ClearItems(ctx context.Context, wishlistID int) error
}

type WishlistService struct {
	users    UserStore
	store    WishlistStore
	products ProductStore
}

func NewWishlistService(users UserStore, store WishlistStore, products ProductStore) *WishlistService {
	return &WishlistService{users: users, store: store, products: products}
}

func (s *WishlistService) GetWishlist(ctx context.Context, userEmail string) (*models.Wishlist, error) {
	user, err := s.users.FindByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.GetOrCreateWishlist(ctx, user.ID); err != nil {
		return nil, err
	}
	return s.store.GetWishlistWithItems(ctx, user.ID)
}

// AddToWishlist is idempotent on presence: adding a product already on the
// wishlist leaves it unchanged.
func (s *WishlistService) AddToWishlist(ctx context.Context, userEmail string, productID int) (*models.Wishlist, error) {
	user, err := s.users.FindByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	wishlist, err := s.store.GetOrCreateWishlist(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	exists, err := s.store.HasItem(ctx, wishlist.ID, productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		item := &models.WishlistItem{WishlistID: wishlist.ID, ProductID: productID}
		if err := s.store.InsertItem(ctx, item); err != nil {
			return nil, err
		}
	}

	return s.store.GetWishlistWithItems(ctx, user.ID)
}

func (s *WishlistService) RemoveFromWishlist(ctx context.Context, userEmail string, itemID int) (*models.Wishlist, error) {
	user, err := s.users.FindByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	wishlist, err := s.store.GetOrCreateWishlist(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	item, err := s.store.FindItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.WishlistID != wishlist.ID {
		return nil, pkgerrors.Wrap(models.ErrForbidden, "wishlist item does not belong to user")
	}

	if err := s.store.DeleteItem(ctx, itemID); err != nil {
		return nil, err
	}
	return s.store.GetWishlistWithItems(ctx, user.ID)
}

func (s *WishlistService) ClearWishlist(ctx context.Context, userEmail string) error {
	user, err := s.users.FindByEmail(ctx, userEmail)
	if err != nil {
		return err
	}

	wishlist, err := s.store.GetOrCreateWishlist(ctx, user.ID)
	if err != nil {
		return err
	}

	return s.store.ClearItems(ctx, wishlist.ID)
}
