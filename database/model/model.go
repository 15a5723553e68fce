// Package model defines the database entities of bill-ui.
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a user account can carry.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User is a login account. The mobile number doubles as the username.
type User struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	MobileNumber string `json:"mobileNumber" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
	Role         string `json:"role" gorm:"not null"`
}

// Customer is a billing record. AccountNumber is the business-facing key,
// Id the store-assigned one.
type Customer struct {
	Id              string `json:"id" gorm:"primaryKey"`
	AccountNumber   string `json:"accountNumber" gorm:"uniqueIndex;not null"`
	Name            string `json:"name"`
	Address         string `json:"address"`
	TelephoneNumber string `json:"telephoneNumber"`
	UnitsConsumed   int    `json:"unitsConsumed"`
}

// BeforeCreate assigns the opaque id. Callers never pick customer ids.
func (c *Customer) BeforeCreate(_ *gorm.DB) error {
	if c.Id == "" {
		c.Id = uuid.NewString()
	}
	return nil
}
