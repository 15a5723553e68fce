package service

import (
	"errors"

	"github.com/pahanaedu/bill-ui/database"
	"github.com/pahanaedu/bill-ui/database/model"

	"gorm.io/gorm"
)

// Domain errors of the customer store. Controllers map these to HTTP statuses.
var (
	ErrAccountExists = errors.New("customer with this account number already exists")
	ErrEmptyAccount  = errors.New("account number can not be empty")
	ErrNegativeUnits = errors.New("units consumed can not be negative")
)

// CustomerService provides CRUD over customer billing records.
type CustomerService struct{}

func (s *CustomerService) validate(customer *model.Customer) error {
	if customer.AccountNumber == "" {
		return ErrEmptyAccount
	}
	if customer.UnitsConsumed < 0 {
		return ErrNegativeUnits
	}
	return nil
}

// Create persists a new record and assigns its id. Duplicate account numbers
// are rejected on every creation path; the unique index backs the check up
// against concurrent creates.
func (s *CustomerService) Create(customer *model.Customer) error {
	if err := s.validate(customer); err != nil {
		return err
	}

	db := database.GetDB()

	var count int64
	err := db.Model(model.Customer{}).
		Where("account_number = ?", customer.AccountNumber).
		Count(&count).
		Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAccountExists
	}

	customer.Id = ""
	return db.Create(customer).Error
}

// GetByAccountNumber looks a record up by its business key.
func (s *CustomerService) GetByAccountNumber(accountNumber string) (*model.Customer, error) {
	db := database.GetDB()

	customer := &model.Customer{}
	err := db.Model(model.Customer{}).
		Where("account_number = ?", accountNumber).
		First(customer).
		Error
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// GetAll returns every record. No ordering is promised.
func (s *CustomerService) GetAll() ([]*model.Customer, error) {
	db := database.GetDB()

	var customers []*model.Customer
	err := db.Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// Update replaces the mutable fields of the record with the given id. The id
// itself is immutable. Moving to an account number held by another record
// fails with ErrAccountExists.
func (s *CustomerService) Update(id string, fields *model.Customer) (*model.Customer, error) {
	if err := s.validate(fields); err != nil {
		return nil, err
	}

	db := database.GetDB()

	customer := &model.Customer{}
	err := db.First(customer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	if fields.AccountNumber != customer.AccountNumber {
		var count int64
		err = db.Model(model.Customer{}).
			Where("account_number = ? AND id <> ?", fields.AccountNumber, id).
			Count(&count).
			Error
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrAccountExists
		}
	}

	customer.AccountNumber = fields.AccountNumber
	customer.Name = fields.Name
	customer.Address = fields.Address
	customer.TelephoneNumber = fields.TelephoneNumber
	customer.UnitsConsumed = fields.UnitsConsumed

	if err := db.Save(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a record by id. A repeated delete reports ErrRecordNotFound
// instead of succeeding.
func (s *CustomerService) Delete(id string) error {
	db := database.GetDB()

	result := db.Delete(&model.Customer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
