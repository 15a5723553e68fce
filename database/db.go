package database

import (
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/pahanaedu/bill-ui/config"
	"github.com/pahanaedu/bill-ui/database/model"
	"github.com/pahanaedu/bill-ui/util/crypto"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

const (
	defaultAdminName = "admin"
	defaultUserName  = "user"
)

func initModels() error {
	models := []any{
		&model.User{},
		&model.Customer{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initUsers seeds the two default accounts. Check-then-create per identifier
// keeps it idempotent across restarts.
func initUsers() error {
	seeds := []struct {
		mobileNumber string
		password     string
		role         string
	}{
		{defaultAdminName, config.GetAdminPassword(), model.RoleAdmin},
		{defaultUserName, config.GetUserPassword(), model.RoleUser},
	}
	for _, seed := range seeds {
		var count int64
		err := db.Model(model.User{}).
			Where("mobile_number = ?", seed.mobileNumber).
			Count(&count).
			Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		hash, err := crypto.HashPassword(seed.password)
		if err != nil {
			return err
		}
		user := &model.User{
			MobileNumber: seed.mobileNumber,
			PasswordHash: hash,
			Role:         seed.role,
		}
		if err := db.Create(user).Error; err != nil {
			return err
		}
		log.Printf("Default %s account created: %s", seed.role, seed.mobileNumber)
	}
	return nil
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	if err := initUsers(); err != nil {
		return err
	}

	return nil
}

func CloseDB() error {
	if db != nil {
		if err := Checkpoint(); err != nil {
			log.Printf("error executing checkpoint: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}

// Checkpoint flushes the WAL into the main database file.
func Checkpoint() error {
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
