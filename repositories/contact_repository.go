package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"online-shop/config"
	"online-shop/models"
)

type ContactRepository struct{}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

func (r *ContactRepository) Insert(ctx context.Context, contact *models.Contact) error {
	return config.DB.QueryRow(ctx,
		`INSERT INTO contacts (email, message, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		contact.Email, contact.Message, time.Now(),
	).Scan(&contact.ID, &contact.CreatedAt)
}

func (r *ContactRepository) FindAll(ctx context.Context) ([]models.Contact, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT id, email, message, created_at FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectContacts(rows)
}

func (r *ContactRepository) FindByEmail(ctx context.Context, email string) ([]models.Contact, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT id, email, message, created_at FROM contacts WHERE email = $1 ORDER BY created_at DESC`,
		email)
	if err != nil {
		return nil, err
	}
	return collectContacts(rows)
}

func collectContacts(rows pgx.Rows) ([]models.Contact, error) {
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Email, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
