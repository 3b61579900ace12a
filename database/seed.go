package database

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"online-shop/config"
	"online-shop/models"
	"online-shop/repositories"
	"online-shop/utils"
)

// Seed bootstraps the admin account and a sample catalog. Both steps are
// idempotent: the admin is created once, products only when the table is
// empty.
func Seed() error {
	ctx := context.Background()

	if err := seedAdminUser(ctx); err != nil {
		return err
	}
	return seedProducts(ctx)
}

func seedAdminUser(ctx context.Context) error {
	users := repositories.NewUserRepository()

	existing, err := users.FindByEmail(ctx, config.AppConfig.AdminEmail)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return err
	}
	if existing != nil {
		if existing.Role != models.RoleAdmin {
			return users.SetRole(ctx, existing.ID, models.RoleAdmin)
		}
		return nil
	}

	hashed, err := utils.HashPassword(config.AppConfig.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:  "admin",
		Firstname: "Admin",
		Email:     config.AppConfig.AdminEmail,
		Password:  hashed,
		Role:      models.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("Admin user created: %s", admin.Email)
	return nil
}

func seedProducts(ctx context.Context) error {
	var count int
	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding sample catalog")

	products := repositories.NewProductRepository()
	for i := range sampleCatalog {
		if err := products.Create(ctx, &sampleCatalog[i]); err != nil {
			return err
		}
	}
	return nil
}

var sampleCatalog = []models.Product{
	{
		Code:              "LAPTOP001",
		Name:              "Dell XPS 15",
		Description:       "High-performance laptop with 15.6-inch display, Intel i7, 16GB RAM",
		Image:             "https://images.unsplash.com/photo-1593642632823-8f785ba67e45?w=400",
		Category:          "Electronics",
		Price:             1299.99,
		Quantity:          15,
		InternalReference: "DELL-XPS-15-2024",
		ShellID:           1,
		InventoryStatus:   models.InStock,
		Rating:            4.7,
	},
	{
		Code:              "PHONE001",
		Name:              "iPhone 15 Pro",
		Description:       "Latest iPhone with A17 Pro chip, titanium design, 256GB storage",
		Image:             "https://images.unsplash.com/photo-1592286927505-38c8f877d0f0?w=400",
		Category:          "Electronics",
		Price:             999.99,
		Quantity:          25,
		InternalReference: "APPLE-IP15P-256",
		ShellID:           2,
		InventoryStatus:   models.InStock,
		Rating:            4.9,
	},
	{
		Code:              "HEADPHONE001",
		Name:              "Sony WH-1000XM5",
		Description:       "Premium noise-canceling wireless headphones",
		Image:             "https://images.unsplash.com/photo-1546435770-a3e426bf472b?w=400",
		Category:          "Electronics",
		Price:             399.99,
		Quantity:          8,
		InternalReference: "SONY-WH1000XM5",
		ShellID:           3,
		InventoryStatus:   models.LowStock,
		Rating:            4.8,
	},
	{
		Code:              "WATCH001",
		Name:              "Apple Watch Series 9",
		Description:       "Smartwatch with health tracking and always-on display",
		Image:             "https://images.unsplash.com/photo-1579586337278-3befd40fd17a?w=400",
		Category:          "Accessories",
		Price:             449.99,
		Quantity:          0,
		InternalReference: "APPLE-AW9-45",
		ShellID:           4,
		InventoryStatus:   models.OutOfStock,
		Rating:            4.6,
	},
	{
		Code:              "KEYBOARD001",
		Name:              "Keychron K8",
		Description:       "Wireless mechanical keyboard with hot-swappable switches",
		Image:             "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=400",
		Category:          "Accessories",
		Price:             89.99,
		Quantity:          40,
		InternalReference: "KEYCHRON-K8",
		ShellID:           5,
		InventoryStatus:   models.InStock,
		Rating:            4.4,
	},
}
