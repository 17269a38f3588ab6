package models

import (
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MinPasswordLength is the minimum accepted raw password length.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	// rawPassword holds a plaintext staged via SetPassword until
	// BeforeSave hashes it. Never persisted or serialized.
	rawPassword string `gorm:"-" json:"-"`
}

// SetPassword stages a plaintext password for hashing on the next save.
// Hashing is driven by this explicit marker, not by inspecting the
// stored string for a hash shape.
func (u *User) SetPassword(raw string) {
	u.rawPassword = raw
}

// CheckPassword reports whether raw matches the stored bcrypt hash.
func (u *User) CheckPassword(raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(raw)) == nil
}

// BeforeSave hashes a staged plaintext password. Saves that did not go
// through SetPassword leave the stored hash untouched.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.rawPassword == "" {
		return nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	u.rawPassword = ""
	return nil
}

// ValidEmail reports whether s has a plausible email shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
