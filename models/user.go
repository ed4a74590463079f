package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a post author
type User struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Username  string    `json:"username" db:"username" gorm:"type:text;not null;uniqueIndex"`
	FirstName string    `json:"firstName,omitempty" db:"first_name" gorm:"type:text;not null;default:''"`
	LastName  string    `json:"lastName,omitempty" db:"last_name" gorm:"type:text;not null;default:''"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	newID(&u.ID)
	return nil
}

// DisplayName prefers "First Last" and falls back to the username
func (u User) DisplayName() string {
	if u.FirstName == "" {
		return u.Username
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
