package service

import (
	"testing"

	"github.com/pahanaedu/bill-ui/database"
	"github.com/pahanaedu/bill-ui/database/model"

	"github.com/stretchr/testify/assert"
)

func TestCustomerRoundTrip(t *testing.T) {
	dbPath := "customer_test.db"
	setup(t, dbPath)
	defer teardown(dbPath)

	service := CustomerService{}

	customer := &model.Customer{
		AccountNumber:   "AC100",
		Name:            "Jane",
		Address:         "1 Main St",
		TelephoneNumber: "555-1000",
		UnitsConsumed:   50,
	}
	err := service.Create(customer)
	assert.NoError(t, err)
	assert.NotEmpty(t, customer.Id)

	got, err := service.GetByAccountNumber("AC100")
	assert.NoError(t, err)
	assert.Equal(t, customer.Id, got.Id)
	assert.Equal(t, "Jane", got.Name)
	assert.Equal(t, "1 Main St", got.Address)
	assert.Equal(t, "555-1000", got.TelephoneNumber)
	assert.Equal(t, 50, got.UnitsConsumed)

	_, err = service.GetByAccountNumber("AC999")
	assert.True(t, database.IsNotFound(err))
}

func TestCustomerCreateRejectsDuplicates(t *testing.T) {
	dbPath := "customer_test.db"
	setup(t, dbPath)
	defer teardown(dbPath)

	service := CustomerService{}

	err := service.Create(&model.Customer{AccountNumber: "AC100", Name: "Jane"})
	assert.NoError(t, err)

	err = service.Create(&model.Customer{AccountNumber: "AC100", Name: "John"})
	assert.ErrorIs(t, err, ErrAccountExists)

	err = service.Create(&model.Customer{Name: "NoAccount"})
	assert.ErrorIs(t, err, ErrEmptyAccount)

	err = service.Create(&model.Customer{AccountNumber: "AC101", UnitsConsumed: -1})
	assert.ErrorIs(t, err, ErrNegativeUnits)
}

func TestCustomerUpdate(t *testing.T) {
	dbPath := "customer_test.db"
	setup(t, dbPath)
	defer teardown(dbPath)

	service := CustomerService{}

	customer := &model.Customer{AccountNumber: "AC100", Name: "Jane", UnitsConsumed: 50}
	err := service.Create(customer)
	assert.NoError(t, err)

	updated, err := service.Update(customer.Id, &model.Customer{
		AccountNumber:   "AC200",
		Name:            "Jane Doe",
		Address:         "2 High St",
		TelephoneNumber: "555-2000",
		UnitsConsumed:   75,
	})
	assert.NoError(t, err)
	assert.Equal(t, customer.Id, updated.Id)
	assert.Equal(t, "AC200", updated.AccountNumber)

	got, err := service.GetByAccountNumber("AC200")
	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, 75, got.UnitsConsumed)

	_, err = service.GetByAccountNumber("AC100")
	assert.True(t, database.IsNotFound(err))

	_, err = service.Update("missing-id", &model.Customer{AccountNumber: "AC300"})
	assert.True(t, database.IsNotFound(err))

	other := &model.Customer{AccountNumber: "AC300", Name: "Other"}
	assert.NoError(t, service.Create(other))
	_, err = service.Update(other.Id, &model.Customer{AccountNumber: "AC200"})
	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestCustomerDeleteIsNotIdempotent(t *testing.T) {
	dbPath := "customer_test.db"
	setup(t, dbPath)
	defer teardown(dbPath)

	service := CustomerService{}

	customer := &model.Customer{AccountNumber: "AC100", Name: "Jane"}
	assert.NoError(t, service.Create(customer))

	assert.NoError(t, service.Delete(customer.Id))

	err := service.Delete(customer.Id)
	assert.True(t, database.IsNotFound(err))
}

func TestCustomerGetAll(t *testing.T) {
	dbPath := "customer_test.db"
	setup(t, dbPath)
	defer teardown(dbPath)

	service := CustomerService{}

	customers, err := service.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, customers)

	assert.NoError(t, service.Create(&model.Customer{AccountNumber: "AC100", Name: "Jane"}))
	assert.NoError(t, service.Create(&model.Customer{AccountNumber: "AC200", Name: "John"}))

	customers, err = service.GetAll()
	assert.NoError(t, err)
	assert.Len(t, customers, 2)
}
