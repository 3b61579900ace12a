package models

import "time"

type Wishlist struct {
	ID        int            `json:"id"`
	UserID    int            `json:"user_id"`
	Items     []WishlistItem `json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type WishlistItem struct {
	ID         int       `json:"id"`
	WishlistID int       `json:"wishlist_id"`
	ProductID  int       `json:"product_id"`
	Product    *Product  `json:"product,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
