// Package service holds the business logic of bill-ui behind the HTTP layer.
package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/pahanaedu/bill-ui/database"
	"github.com/pahanaedu/bill-ui/database/model"
	"github.com/pahanaedu/bill-ui/logger"
	"github.com/pahanaedu/bill-ui/util/common"
	"github.com/pahanaedu/bill-ui/util/crypto"
)

// ErrUserExists reports a registration against an already taken mobile number.
var ErrUserExists = errors.New("user with this mobile number already exists")

// UserService verifies credentials and registers accounts.
type UserService struct{}

// Register creates a new account with a hashed password. A blank role
// defaults to USER.
func (s *UserService) Register(mobileNumber, password, role string) (*model.User, error) {
	if mobileNumber == "" {
		return nil, common.NewError("mobile number can not be empty")
	}
	if password == "" {
		return nil, common.NewError("password can not be empty")
	}
	if role == "" {
		role = model.RoleUser
	}
	if !model.ValidRole(role) {
		return nil, common.NewErrorf("unknown role: %s", role)
	}

	db := database.GetDB()

	var count int64
	err := db.Model(model.User{}).
		Where("mobile_number = ?", mobileNumber).
		Count(&count).
		Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserExists
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		MobileNumber: mobileNumber,
		PasswordHash: hash,
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser returns the matching user, or nil when the mobile number is
// unknown or the password does not match. Both failures collapse into the
// same outcome so the response leaks nothing about which one occurred.
func (s *UserService) CheckUser(mobileNumber, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("mobile_number = ?", mobileNumber).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil
	}

	return user
}

// GetByMobileNumber fetches an account by its login identifier.
func (s *UserService) GetByMobileNumber(mobileNumber string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("mobile_number = ?", mobileNumber).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ResetPassword replaces the stored hash for an account. Used by the CLI.
func (s *UserService) ResetPassword(mobileNumber, password string) error {
	if password == "" {
		return common.NewError("password can not be empty")
	}
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	db := database.GetDB()
	result := db.Model(model.User{}).
		Where("mobile_number = ?", mobileNumber).
		Update("password_hash", hash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
