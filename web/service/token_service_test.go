package service

import (
	"testing"

	"github.com/pahanaedu/bill-ui/database/model"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewTokenService([]byte("test-secret"))

	user := &model.User{Id: 7, MobileNumber: "0771234567", Role: model.RoleAdmin}
	token, err := service.IssueToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.Id, got.Id)
	assert.Equal(t, user.MobileNumber, got.MobileNumber)
	assert.Equal(t, user.Role, got.Role)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("secret-a"))
	validator := NewTokenService([]byte("secret-b"))

	token, err := issuer.IssueToken(&model.User{Id: 1, MobileNumber: "admin", Role: model.RoleAdmin})
	assert.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenRejectsGarbage(t *testing.T) {
	service := NewTokenService([]byte("test-secret"))

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}
