package models

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Firstname string `json:"firstname" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type CreateProductRequest struct {
	Code              string  `json:"code" binding:"required"`
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description"`
	Image             string  `json:"image"`
	Category          string  `json:"category"`
	Price             float64 `json:"price" binding:"min=0"`
	Quantity          int     `json:"quantity" binding:"min=0"`
	InternalReference string  `json:"internal_reference"`
	ShellID           int64   `json:"shell_id"`
	InventoryStatus   string  `json:"inventory_status" binding:"required,oneof=INSTOCK LOWSTOCK OUTOFSTOCK"`
	Rating            float64 `json:"rating" binding:"min=0,max=5"`
}

type UpdateProductRequest struct {
	Code              string  `json:"code" binding:"required"`
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description"`
	Image             string  `json:"image"`
	Category          string  `json:"category"`
	Price             float64 `json:"price" binding:"min=0"`
	Quantity          int     `json:"quantity" binding:"min=0"`
	InternalReference string  `json:"internal_reference"`
	ShellID           int64   `json:"shell_id"`
	InventoryStatus   string  `json:"inventory_status" binding:"required,oneof=INSTOCK LOWSTOCK OUTOFSTOCK"`
	Rating            float64 `json:"rating" binding:"min=0,max=5"`
}

type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

type AddToWishlistRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

type ContactRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=300"`
}

type CheckoutResult struct {
	ItemCount int     `json:"item_count"`
	Total     float64 `json:"total"`
}
