package controller

import (
	"errors"
	"net/http"

	"github.com/pahanaedu/bill-ui/database"
	"github.com/pahanaedu/bill-ui/database/model"
	"github.com/pahanaedu/bill-ui/logger"
	"github.com/pahanaedu/bill-ui/web/service"

	"github.com/gin-gonic/gin"
)

// CustomerController handles CRUD over customer billing records. Role gating
// happens in the policy middleware before these handlers run.
type CustomerController struct {
	customerService service.CustomerService
}

// NewCustomerController creates a CustomerController and registers its routes.
func NewCustomerController(g *gin.RouterGroup) *CustomerController {
	a := &CustomerController{}
	a.initRouter(g)
	return a
}

func (a *CustomerController) initRouter(g *gin.RouterGroup) {
	g.POST("", a.createCustomer)
	g.GET("", a.getAllCustomers)
	g.GET("/account/:accountNumber", a.getCustomerByAccountNumber)
	g.PUT("/:id", a.updateCustomer)
	g.DELETE("/:id", a.deleteCustomer)
}

// createCustomer stores a new record and returns it with its generated id.
func (a *CustomerController) createCustomer(c *gin.Context) {
	customer := &model.Customer{}
	if err := c.ShouldBindJSON(customer); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid customer data")
		return
	}

	err := a.customerService.Create(customer)
	if err != nil {
		a.respondError(c, "create customer", err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// getCustomerByAccountNumber returns one record by its business key.
func (a *CustomerController) getCustomerByAccountNumber(c *gin.Context) {
	customer, err := a.customerService.GetByAccountNumber(c.Param("accountNumber"))
	if err != nil {
		a.respondError(c, "get customer", err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// getAllCustomers returns every record.
func (a *CustomerController) getAllCustomers(c *gin.Context) {
	customers, err := a.customerService.GetAll()
	if err != nil {
		a.respondError(c, "list customers", err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// updateCustomer replaces the mutable fields of a record.
func (a *CustomerController) updateCustomer(c *gin.Context) {
	fields := &model.Customer{}
	if err := c.ShouldBindJSON(fields); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid customer data")
		return
	}

	customer, err := a.customerService.Update(c.Param("id"), fields)
	if err != nil {
		a.respondError(c, "update customer", err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// deleteCustomer removes a record by id.
func (a *CustomerController) deleteCustomer(c *gin.Context) {
	err := a.customerService.Delete(c.Param("id"))
	if err != nil {
		a.respondError(c, "delete customer", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// respondError maps domain errors to HTTP statuses. Anything unexpected is
// logged and reported as a generic failure so storage internals never reach
// the client.
func (a *CustomerController) respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrAccountExists):
		pureJsonMsg(c, http.StatusConflict, false, err.Error())
	case errors.Is(err, service.ErrEmptyAccount), errors.Is(err, service.ErrNegativeUnits):
		pureJsonMsg(c, http.StatusBadRequest, false, err.Error())
	case database.IsNotFound(err):
		pureJsonMsg(c, http.StatusNotFound, false, "Customer not found")
	default:
		logger.Errorf("%s failed: %v", op, err)
		pureJsonMsg(c, http.StatusInternalServerError, false, "Something went wrong")
	}
}
