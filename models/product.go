package models

import "time"

// InventoryStatus is set by the catalog owner, not derived from quantity.
type InventoryStatus string

const (
	InStock    InventoryStatus = "INSTOCK"
	LowStock   InventoryStatus = "LOWSTOCK"
	OutOfStock InventoryStatus = "OUTOFSTOCK"
)

func (s InventoryStatus) Valid() bool {
	switch s {
	case InStock, LowStock, OutOfStock:
		return true
	}
	return false
}

type Product struct {
	ID                int             `json:"id"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Image             string          `json:"image"`
	Category          string          `json:"category"`
	Price             float64         `json:"price"`
	Quantity          int             `json:"quantity"`
	InternalReference string          `json:"internal_reference"`
	ShellID           int64           `json:"shell_id"`
	InventoryStatus   InventoryStatus `json:"inventory_status"`
	Rating            float64         `json:"rating"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
