package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:191;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	ImageURL     string    `gorm:"size:512;not null" json:"image_url"`
	Bio          string    `gorm:"type:text;not null" json:"bio"`
	Recipes      []Recipe  `gorm:"foreignKey:UserID" json:"recipes"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// SetPassword stores a salted bcrypt hash of the plaintext. The hash is
// write-only: there is deliberately no accessor for it, and json encoding
// skips the field.
func (u *User) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// Authenticate reports whether plaintext matches the stored hash.
func (u *User) Authenticate(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext)) == nil
}
