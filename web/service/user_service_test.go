package service

import (
	"os"
	"testing"

	"github.com/pahanaedu/bill-ui/database"
	"github.com/pahanaedu/bill-ui/database/model"
	"github.com/pahanaedu/bill-ui/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T, dbPath string) {
	t.Setenv("BILLUI_LOG_FOLDER", t.TempDir())
	logger.InitLogger(logging.DEBUG)
	os.Remove(dbPath)
	if err := database.InitDB(dbPath); err != nil {
		t.Fatal(err)
	}
}

func teardown(dbPath string) {
	database.CloseDB()
	os.Remove(dbPath)
}

func TestRegisterDuplicateMobileNumber(t *testing.T) {
	dbPath := "user_test.db"
	setup(t, dbPath)
	defer teardown(dbPath)

	service := UserService{}

	first, err := service.Register("0771234567", "secret", "")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleUser, first.Role)

	_, err = service.Register("0771234567", "other", "")
	assert.ErrorIs(t, err, ErrUserExists)

	var count int64
	err = database.GetDB().Model(model.User{}).
		Where("mobile_number = ?", "0771234567").
		Count(&count).
		Error
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestRegisterRoleHandling(t *testing.T) {
	dbPath := "user_test.db"
	setup(t, dbPath)
	defer teardown(dbPath)

	service := UserService{}

	admin, err := service.Register("0770000001", "secret", model.RoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)

	_, err = service.Register("0770000002", "secret", "SUPERVISOR")
	assert.Error(t, err)

	_, err = service.Register("", "secret", "")
	assert.Error(t, err)

	_, err = service.Register("0770000003", "", "")
	assert.Error(t, err)
}

func TestCheckUserAfterBootstrap(t *testing.T) {
	dbPath := "user_test.db"
	setup(t, dbPath)
	defer teardown(dbPath)

	service := UserService{}

	admin := service.CheckUser("admin", "admin123")
	assert.NotNil(t, admin)
	assert.Equal(t, model.RoleAdmin, admin.Role)

	user := service.CheckUser("user", "user123")
	assert.NotNil(t, user)
	assert.Equal(t, model.RoleUser, user.Role)

	// Wrong password and unknown user collapse into the same nil outcome.
	assert.Nil(t, service.CheckUser("admin", "wrong"))
	assert.Nil(t, service.CheckUser("nobody", "admin123"))
}

func TestBootstrapIsIdempotent(t *testing.T) {
	dbPath := "user_test.db"
	setup(t, dbPath)
	defer teardown(dbPath)

	// A restart re-runs the seeder against the same database.
	err := database.InitDB(dbPath)
	assert.NoError(t, err)

	var count int64
	err = database.GetDB().Model(model.User{}).Count(&count).Error
	assert.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestResetPassword(t *testing.T) {
	dbPath := "user_test.db"
	setup(t, dbPath)
	defer teardown(dbPath)

	service := UserService{}

	err := service.ResetPassword("admin", "newpass")
	assert.NoError(t, err)

	assert.Nil(t, service.CheckUser("admin", "admin123"))
	assert.NotNil(t, service.CheckUser("admin", "newpass"))

	err = service.ResetPassword("admin", "")
	assert.Error(t, err)

	// An unknown account must fail instead of silently updating nothing.
	err = service.ResetPassword("no-such-account", "newpass")
	assert.True(t, database.IsNotFound(err))
}
