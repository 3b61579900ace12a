package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"online-shop/config"
	"online-shop/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, firstname, email, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	err := config.DB.QueryRow(
		ctx,
		query,
		user.Username,
		user.Firstname,
		user.Email,
		user.Password,
		user.Role,
		now,
		now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if isUniqueViolation(err) {
		return models.ErrConflict
	}
	return err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, username, firstname, email, password, role, created_at, updated_at
		FROM users WHERE email = $1
	`

	user := &models.User{}
	err := config.DB.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Firstname,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	query := `
		SELECT id, username, firstname, email, password, role, created_at, updated_at
		FROM users WHERE id = $1
	`

	user := &models.User{}
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Firstname,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) SetRole(ctx context.Context, userID int, role string) error {
	query := `UPDATE users SET role = $1, updated_at = $2 WHERE id = $3`
	_, err := config.DB.Exec(ctx, query, role, time.Now(), userID)
	return err
}
