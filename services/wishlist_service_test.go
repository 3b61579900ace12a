package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"online-shop/models"
)

func newWishlistFixture(t *testing.T) (*WishlistService, *memProductStore) {
	t.Helper()

	users := newMemUserStore()
	require.NoError(t, users.Create(context.Background(), &models.User{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Role:     models.RoleCustomer,
	}))

	products := newMemProductStore()
	require.NoError(t, products.Create(context.Background(), &models.Product{
		Code:            "PHONE001",
		Name:            "iPhone 15 Pro",
		Price:           999.99,
		Quantity:        25,
		InventoryStatus: models.InStock,
	}))

	return NewWishlistService(users, newMemWishlistStore(), products), products
}

func TestWishlistService_AddAndList(t *testing.T) {
	svc, _ := newWishlistFixture(t)

	list, err := svc.AddToWishlist(context.Background(), "jdoe@example.com", 1)
	require.NoError(t, err)

	require.Len(t, list.Items, 1)
	assert.Equal(t, 1, list.Items[0].ProductID)
}

func TestWishlistService_AddIsIdempotent(t *testing.T) {
	svc, _ := newWishlistFixture(t)
	ctx := context.Background()

	_, err := svc.AddToWishlist(ctx, "jdoe@example.com", 1)
	require.NoError(t, err)

	list, err := svc.AddToWishlist(ctx, "jdoe@example.com", 1)
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}

func TestWishlistService_AddUnknownProduct(t *testing.T) {
	svc, _ := newWishlistFixture(t)

	_, err := svc.AddToWishlist(context.Background(), "jdoe@example.com", 42)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestWishlistService_RemoveItem(t *testing.T) {
	svc, _ := newWishlistFixture(t)
	ctx := context.Background()

	list, err := svc.AddToWishlist(ctx, "jdoe@example.com", 1)
	require.NoError(t, err)

	list, err = svc.RemoveFromWishlist(ctx, "jdoe@example.com", list.Items[0].ID)
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestWishlistService_RemoveForeignItem(t *testing.T) {
	svc, _ := newWishlistFixture(t)
	ctx := context.Background()

	users := svc.users.(*memUserStore)
	require.NoError(t, users.Create(ctx, &models.User{
		Username: "intruder",
		Email:    "intruder@example.com",
		Role:     models.RoleCustomer,
	}))

	list, err := svc.AddToWishlist(ctx, "jdoe@example.com", 1)
	require.NoError(t, err)

	_, err = svc.RemoveFromWishlist(ctx, "intruder@example.com", list.Items[0].ID)
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestWishlistService_Clear(t *testing.T) {
	svc, products := newWishlistFixture(t)
	ctx := context.Background()

	require.NoError(t, products.Create(ctx, &models.Product{
		Code:            "WATCH001",
		Name:            "Apple Watch Series 9",
		Price:           399.99,
		InventoryStatus: models.OutOfStock,
	}))

	_, err := svc.AddToWishlist(ctx, "jdoe@example.com", 1)
	require.NoError(t, err)
	_, err = svc.AddToWishlist(ctx, "jdoe@example.com", 2)
	require.NoError(t, err)

	require.NoError(t, svc.ClearWishlist(ctx, "jdoe@example.com"))

	list, err := svc.GetWishlist(ctx, "jdoe@example.com")
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}
