// internal/models/user.go
package models

import (
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Username     string `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email        string `json:"email,omitempty" gorm:"uniqueIndex;size:255;not null"`
	FirstName    string `json:"first_name,omitempty" gorm:"size:100"`
	LastName     string `json:"last_name,omitempty" gorm:"size:100"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`

	// Relationships
	Stores []Store `json:"stores,omitempty" gorm:"foreignKey:OwnerID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
