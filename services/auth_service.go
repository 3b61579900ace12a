package services

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"

	"online-shop/models"
	"online-shop/utils"
)

// UserStore is the persistence surface the account-facing services need.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
}

type AuthService struct {
	users  UserStore
	tokens *TokenService
}

func NewAuthService(users UserStore, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	_, err := s.users.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, pkgerrors.Wrap(models.ErrConflict, "email already registered")
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "hash password")
	}

	user := &models.User{
		Username:  req.Username,
		Firstname: req.Firstname,
		Email:     req.Email,
		Password:  hashed,
		Role:      models.RoleCustomer,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:    token,
		Email:    user.Email,
		Username: user.Username,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, models.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:    token,
		Email:    user.Email,
		Username: user.Username,
	}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, email string) (*models.User, error) {
	return s.users.FindByEmail(ctx, email)
}
