package services

import (
	"context"
	"unicode/utf8"

	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"online-shop/models"
)

// ContactStore is the append-only inbox; messages are never mutated.
type ContactStore interface {
	Insert(ctx context.Context, contact *models.Contact) error
	FindAll(ctx context.Context) ([]models.Contact, error)
	FindByEmail(ctx context.Context, email string) ([]models.Contact, error)
}

// Mailer forwards inbox notifications. May be nil when SMTP is not configured.
type Mailer interface {
	SendContactNotification(contact *models.Contact) error
}

type ContactService struct {
	store  ContactStore
	mailer Mailer
}

func NewContactService(store ContactStore, mailer Mailer) *ContactService {
	return &ContactService{store: store, mailer: mailer}
}

func (s *ContactService) SubmitContact(ctx context.Context, req models.ContactRequest) (*models.Contact, error) {
	// Rune count, matching the binding tag and the VARCHAR(300) column.
	if utf8.RuneCountInString(req.Message) > models.MaxContactMessageLength {
		return nil, pkgerrors.Wrapf(models.ErrBadRequest,
			"message must not exceed %d characters", models.MaxContactMessageLength)
	}

	contact := &models.Contact{Email: req.Email, Message: req.Message}
	if err := s.store.Insert(ctx, contact); err != nil {
		return nil, err
	}

	// Best effort: a failed notification never fails the submission.
	if s.mailer != nil {
		go func(c models.Contact) {
			if err := s.mailer.SendContactNotification(&c); err != nil {
				log.Printf("Failed to send contact notification: %v", err)
			}
		}(*contact)
	}

	return contact, nil
}

func (s *ContactService) GetAllContacts(ctx context.Context) ([]models.Contact, error) {
	return s.store.FindAll(ctx)
}

func (s *ContactService) GetContactsByEmail(ctx context.Context, email string) ([]models.Contact, error) {
	return s.store.FindByEmail(ctx, email)
}
