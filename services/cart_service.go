package services

import (
	"context"

	pkgerrors "github.com/pkg/errors"

	"online-shop/models"
)

// CartStore persists carts. RunInTx runs fn inside a single atomic unit of
// work: every mutation fn performs commits together or not at all.
type CartStore interface {
	GetOrCreateCart(ctx context.Context, userID int) (*models.Cart, error)
	GetCartWithItems(ctx context.Context, userID int) (*models.Cart, error)
	RunInTx(ctx context.Context, fn func(tx CartTx) error) error
}

// CartTx is the transactional view of the store. ProductForUpdate must lock
// the product row so concurrent reservations against the same product
// serialize at the storage layer.
type CartTx interface {
	ProductForUpdate(ctx context.Context, productID int) (*models.Product, error)
	AdjustProductQuantity(ctx context.Context, productID, delta int) error
	FindItemByProduct(ctx context.Context, cartID, productID int) (*models.CartItem, error)
	FindItem(ctx context.Context, itemID int) (*models.CartItem, error)
	InsertItem(ctx context.Context, item *models.CartItem) error
	UpdateItemQuantity(ctx context.Context, itemID, quantity int) error
	DeleteItem(ctx context.Context, itemID int) error
	ListItems(ctx context.Context, cartID int) ([]models.CartItem, error)
	DeleteItemsByCart(ctx context.Context, cartID int) error
}

// CartService keeps product stock in lock-step with cart reservations:
// product quantity always equals original stock minus the sum of outstanding
// cart item quantities for that product.
type CartService struct {
	users UserStore
	store CartStore
	cache ProductCache
}

func NewCartService(users UserStore, store CartStore, cache ProductCache) *CartService {
	return &CartService{users: users, store: store, cache: cache}
}

// Cart mutations adjust product quantities, so the cached listing goes stale.
func (s *CartService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func (s *CartService) GetCart(ctx context.Context, userEmail string) (*models.Cart, error) {
	user, err := s.users.FindByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.GetOrCreateCart(ctx, user.ID); err != nil {
		return nil, err
	}
	return s.store.GetCartWithItems(ctx, user.ID)
}

// AddToCart reserves qty units of the product: it merges into an existing
// line item or inserts a new one, and decrements product stock by the same
// amount in the same transaction.
func (s *CartService) AddToCart(ctx context.Context, userEmail string, productID, qty int) (*models.Cart, error) {
	if qty <= 0 {
		return nil, pkgerrors.Wrap(models.ErrBadRequest, "quantity must be positive")
	}

	user, err := s.users.FindByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	cart, err := s.store.GetOrCreateCart(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	err = s.store.RunInTx(ctx, func(tx CartTx) error {
		product, err := tx.ProductForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if product.Quantity < qty {
			return pkgerrors.Wrapf(models.ErrInsufficientStock,
				"product %s has %d in stock, requested %d", product.Code, product.Quantity, qty)
		}

		item, err := tx.FindItemByProduct(ctx, cart.ID, productID)
		if err != nil {
			return err
		}
		if item != nil {
			if err := tx.UpdateItemQuantity(ctx, item.ID, item.Quantity+qty); err != nil {
				return err
			}
		} else {
			newItem := &models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: qty}
			if err := tx.InsertItem(ctx, newItem); err != nil {
				return err
			}
		}

		return tx.AdjustProductQuantity(ctx, productID, -qty)
	})
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)

	return s.store.GetCartWithItems(ctx, user.ID)
}

// UpdateItemQuantity sets a line item's quantity and reconciles product stock
// by the delta inside the same transaction.
func (s *CartService) UpdateItemQuantity(ctx context.Context, userEmail string, itemID, qty int) (*models.Cart, error) {
	if qty <= 0 {
		return nil, pkgerrors.Wrap(models.ErrBadRequest, "quantity must be positive")
	}

	user, err := s.users.FindByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	cart, err := s.store.GetOrCreateCart(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	err = s.store.RunInTx(ctx, func(tx CartTx) error {
		item, err := tx.FindItem(ctx, itemID)
		if err != nil {
			return err
		}
		if item.CartID != cart.ID {
			return pkgerrors.Wrap(models.ErrForbidden, "cart item does not belong to user")
		}

		delta := qty - item.Quantity
		if delta != 0 {
			product, err := tx.ProductForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if delta > 0 && product.Quantity < delta {
				return pkgerrors.Wrapf(models.ErrInsufficientStock,
					"product %s has %d in stock, requested %d more", product.Code, product.Quantity, delta)
			}
			if err := tx.AdjustProductQuantity(ctx, item.ProductID, -delta); err != nil {
				return err
			}
		}

		return tx.UpdateItemQuantity(ctx, itemID, qty)
	})
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)

	return s.store.GetCartWithItems(ctx, user.ID)
}

// RemoveFromCart releases the reservation: the item is deleted and its full
// quantity restored to product stock.
func (s *CartService) RemoveFromCart(ctx context.Context, userEmail string, itemID int) (*models.Cart, error) {
	user, err := s.users.FindByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	cart, err := s.store.GetOrCreateCart(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	err = s.store.RunInTx(ctx, func(tx CartTx) error {
		item, err := tx.FindItem(ctx, itemID)
		if err != nil {
			return err
		}
		if item.CartID != cart.ID {
			return pkgerrors.Wrap(models.ErrForbidden, "cart item does not belong to user")
		}

		if err := tx.AdjustProductQuantity(ctx, item.ProductID, item.Quantity); err != nil {
			return err
		}
		return tx.DeleteItem(ctx, itemID)
	})
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)

	return s.store.GetCartWithItems(ctx, user.ID)
}

// ClearCart releases every reservation in the cart, restoring stock exactly
// like per-item removal does.
func (s *CartService) ClearCart(ctx context.Context, userEmail string) error {
	user, err := s.users.FindByEmail(ctx, userEmail)
	if err != nil {
		return err
	}

	cart, err := s.store.GetOrCreateCart(ctx, user.ID)
	if err != nil {
		return err
	}

	err = s.store.RunInTx(ctx, func(tx CartTx) error {
		items, err := tx.ListItems(ctx, cart.ID)
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := tx.AdjustProductQuantity(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return tx.DeleteItemsByCart(ctx, cart.ID)
	})
	if err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// Checkout finalizes the sale: the cart is emptied and the reserved stock is
// NOT restored.
func (s *CartService) Checkout(ctx context.Context, userEmail string) (*models.CheckoutResult, error) {
	user, err := s.users.FindByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	cart, err := s.store.GetOrCreateCart(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	var result models.CheckoutResult
	err = s.store.RunInTx(ctx, func(tx CartTx) error {
		items, err := tx.ListItems(ctx, cart.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return models.ErrEmptyCart
		}

		for _, item := range items {
			result.ItemCount += item.Quantity
			if item.Product != nil {
				result.Total += float64(item.Quantity) * item.Product.Price
			}
		}

		return tx.DeleteItemsByCart(ctx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
