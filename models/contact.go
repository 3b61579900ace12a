package models

import "time"

// MaxContactMessageLength caps the stored message body.
const MaxContactMessageLength = 300

type Contact struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
