package models

import (
	"time"

	"github.com/waibhq/waib/internal/auth"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// SetPassword derives and stores a salted hash. The plaintext is never kept.
func (u *User) SetPassword(plaintext string) error {
	h, err := auth.HashPassword(plaintext)
	if err != nil {
		return err
	}
	u.PasswordHash = h
	return nil
}

// CheckPassword reports whether plaintext matches the stored hash.
func (u *User) CheckPassword(plaintext string) bool {
	return auth.VerifyPassword(plaintext, u.PasswordHash) == nil
}
