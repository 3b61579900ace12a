package services

import (
	"context"
	"sync"

	"online-shop/models"
)

// In-memory stores backing the service tests. A single mutex stands in for
// the storage engine's row locking.

type memUserStore struct {
	mu     sync.Mutex
	nextID int
	users  map[string]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]*models.User{}}
}

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return models.ErrConflict
	}
	s.nextID++
	user.ID = s.nextID
	copied := *user
	s.users[user.Email] = &copied
	return nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *memUserStore) FindByID(_ context.Context, id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

type memCartStore struct {
	mu         sync.Mutex
	nextCartID int
	nextItemID int
	products   map[int]*models.Product
	carts      map[int]*models.Cart // keyed by user id
	items      map[int]*models.CartItem
}

func newMemCartStore() *memCartStore {
	return &memCartStore{
		products: map[int]*models.Product{},
		carts:    map[int]*models.Cart{},
		items:    map[int]*models.CartItem{},
	}
}

func (s *memCartStore) addProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = &p
}

func (s *memCartStore) productQuantity(id int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Quantity
}

func (s *memCartStore) GetOrCreateCart(_ context.Context, userID int) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok := s.carts[userID]; ok {
		copied := *cart
		return &copied, nil
	}
	s.nextCartID++
	cart := &models.Cart{ID: s.nextCartID, UserID: userID}
	s.carts[userID] = cart
	copied := *cart
	return &copied, nil
}

func (s *memCartStore) GetCartWithItems(ctx context.Context, userID int) (*models.Cart, error) {
	cart, err := s.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err := s.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Items = items
	return cart, nil
}

func (s *memCartStore) RunInTx(_ context.Context, fn func(tx CartTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn((*memCartTx)(s))
}

// memCartTx exposes the unlocked view used inside RunInTx.
type memCartTx memCartStore

func (t *memCartTx) ProductForUpdate(_ context.Context, productID int) (*models.Product, error) {
	product, ok := t.products[productID]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *product
	return &copied, nil
}

func (t *memCartTx) AdjustProductQuantity(_ context.Context, productID, delta int) error {
	product, ok := t.products[productID]
	if !ok {
		return models.ErrNotFound
	}
	product.Quantity += delta
	return nil
}

func (t *memCartTx) FindItemByProduct(_ context.Context, cartID, productID int) (*models.CartItem, error) {
	for _, item := range t.items {
		if item.CartID == cartID && item.ProductID == productID {
			copied := *item
			return &copied, nil
		}
	}
	return nil, nil
}

func (t *memCartTx) FindItem(_ context.Context, itemID int) (*models.CartItem, error) {
	item, ok := t.items[itemID]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (t *memCartTx) InsertItem(_ context.Context, item *models.CartItem) error {
	t.nextItemID++
	item.ID = t.nextItemID
	copied := *item
	t.items[item.ID] = &copied
	return nil
}

func (t *memCartTx) UpdateItemQuantity(_ context.Context, itemID, quantity int) error {
	item, ok := t.items[itemID]
	if !ok {
		return models.ErrNotFound
	}
	item.Quantity = quantity
	return nil
}

func (t *memCartTx) DeleteItem(_ context.Context, itemID int) error {
	if _, ok := t.items[itemID]; !ok {
		return models.ErrNotFound
	}
	delete(t.items, itemID)
	return nil
}

func (t *memCartTx) ListItems(_ context.Context, cartID int) ([]models.CartItem, error) {
	items := []models.CartItem{}
	for _, item := range t.items {
		if item.CartID == cartID {
			copied := *item
			if product, ok := t.products[item.ProductID]; ok {
				snapshot := *product
				copied.Product = &snapshot
			}
			items = append(items, copied)
		}
	}
	return items, nil
}

func (t *memCartTx) DeleteItemsByCart(_ context.Context, cartID int) error {
	for id, item := range t.items {
		if item.CartID == cartID {
			delete(t.items, id)
		}
	}
	return nil
}

func (s *memCartStore) ListItems(ctx context.Context, cartID int) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (*memCartTx)(s).ListItems(ctx, cartID)
}

type memProductCache struct {
	mu    sync.Mutex
	list  []models.Product
	valid bool
}

func (c *memProductCache) GetList(_ context.Context) ([]models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		return nil, false
	}
	return append([]models.Product{}, c.list...), true
}

func (c *memProductCache) SetList(_ context.Context, products []models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = append([]models.Product{}, products...)
	c.valid = true
}

func (c *memProductCache) Invalidate(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = nil
	c.valid = false
}

func (c *memProductCache) isValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.valid
}

type memProductStore struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]*models.Product
}

func newMemProductStore() *memProductStore {
	return &memProductStore{byID: map[int]*models.Product{}}
}

func (s *memProductStore) FindAll(_ context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := []models.Product{}
	for id := 1; id <= s.nextID; id++ {
		if p, ok := s.byID[id]; ok {
			products = append(products, *p)
		}
	}
	return products, nil
}

func (s *memProductStore) FindPage(ctx context.Context, page, size int) ([]models.Product, int, error) {
	all, err := s.FindAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	start := (page - 1) * size
	if start >= len(all) {
		return []models.Product{}, len(all), nil
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], len(all), nil
}

func (s *memProductStore) FindByID(_ context.Context, id int) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *memProductStore) FindByCode(_ context.Context, code string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.byID {
		if p.Code == code {
			copied := *p
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *memProductStore) FindByCategory(_ context.Context, category string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := []models.Product{}
	for id := 1; id <= s.nextID; id++ {
		if p, ok := s.byID[id]; ok && p.Category == category {
			products = append(products, *p)
		}
	}
	return products, nil
}

func (s *memProductStore) FindByInventoryStatus(_ context.Context, status models.InventoryStatus) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := []models.Product{}
	for id := 1; id <= s.nextID; id++ {
		if p, ok := s.byID[id]; ok && p.InventoryStatus == status {
			products = append(products, *p)
		}
	}
	return products, nil
}

func (s *memProductStore) Create(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.byID {
		if p.Code == product.Code {
			return models.ErrConflict
		}
	}
	s.nextID++
	product.ID = s.nextID
	copied := *product
	s.byID[product.ID] = &copied
	return nil
}

func (s *memProductStore) Update(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[product.ID]; !ok {
		return models.ErrNotFound
	}
	copied := *product
	s.byID[product.ID] = &copied
	return nil
}

func (s *memProductStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

type memWishlistStore struct {
	mu         sync.Mutex
	nextListID int
	nextItemID int
	lists      map[int]*models.Wishlist // keyed by user id
	items      map[int]*models.WishlistItem
}

func newMemWishlistStore() *memWishlistStore {
	return &memWishlistStore{
		lists: map[int]*models.Wishlist{},
		items: map[int]*models.WishlistItem{},
	}
}

func (s *memWishlistStore) GetOrCreateWishlist(_ context.Context, userID int) (*models.Wishlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if list, ok := s.lists[userID]; ok {
		copied := *list
		return &copied, nil
	}
	s.nextListID++
	list := &models.Wishlist{ID: s.nextListID, UserID: userID}
	s.lists[userID] = list
	copied := *list
	return &copied, nil
}

func (s *memWishlistStore) GetWishlistWithItems(ctx context.Context, userID int) (*models.Wishlist, error) {
	list, err := s.GetOrCreateWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := []models.WishlistItem{}
	for id := 1; id <= s.nextItemID; id++ {
		if item, ok := s.items[id]; ok && item.WishlistID == list.ID {
			items = append(items, *item)
		}
	}
	list.Items = items
	return list, nil
}

func (s *memWishlistStore) HasItem(_ context.Context, wishlistID, productID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.WishlistID == wishlistID && item.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memWishlistStore) InsertItem(_ context.Context, item *models.WishlistItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextItemID++
	item.ID = s.nextItemID
	copied := *item
	s.items[item.ID] = &copied
	return nil
}

func (s *memWishlistStore) FindItem(_ context.Context, itemID int) (*models.WishlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (s *memWishlistStore) DeleteItem(_ context.Context, itemID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[itemID]; !ok {
		return models.ErrNotFound
	}
	delete(s.items, itemID)
	return nil
}

func (s *memWishlistStore) ClearItems(_ context.Context, wishlistID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, item := range s.items {
		if item.WishlistID == wishlistID {
			delete(s.items, id)
		}
	}
	return nil
}

type memContactStore struct {
	mu       sync.Mutex
	nextID   int
	contacts []models.Contact
}

func newMemContactStore() *memContactStore {
	return &memContactStore{}
}

func (s *memContactStore) Insert(_ context.Context, contact *models.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	contact.ID = s.nextID
	s.contacts = append(s.contacts, *contact)
	return nil
}

func (s *memContactStore) FindAll(_ context.Context) ([]models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Contact{}, s.contacts...), nil
}

func (s *memContactStore) FindByEmail(_ context.Context, email string) ([]models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []models.Contact{}
	for _, c := range s.contacts {
		if c.Email == email {
			matched = append(matched, c)
		}
	}
	return matched, nil
}
