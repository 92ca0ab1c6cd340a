package models

import (
	"io"
	"time"
)

type Account struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	IsActive  bool      `json:"is_active"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Upload is a file received from a client, detached from the transport.
type Upload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// StoredFile is what a photo store hands back after saving an upload.
type StoredFile struct {
	URL string
	Key string
}
