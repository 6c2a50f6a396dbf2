package controllers

import (
	"net/http"

	"cashback-backend/services"
	"cashback-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerController struct {
	Customers *services.CustomerService
}

// GetCustomers lists the top customers, optionally filtered by ?search=.
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := cc.Customers.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err, "Failed to fetch customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomerOptions feeds the customer picker of the manual transaction form.
func (cc *CustomerController) GetCustomerOptions(c *gin.Context) {
	options, err := cc.Customers.Options(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch customers")
		return
	}
	c.JSON(http.StatusOK, options)
}

func (cc *CustomerController) GetCustomer(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	customer, err := cc.Customers.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// GetCustomerTransactions returns the latest entries of one customer, ?limit=
// defaulting to 10.
func (cc *CustomerController) GetCustomerTransactions(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	transactions, err := cc.Customers.History(c.Request.Context(), id, queryInt(c, "limit"))
	if err != nil {
		respondError(c, err, "Failed to fetch transactions")
		return
	}
	c.JSON(http.StatusOK, transactions)
}

func customerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return uuid.Nil, false
	}
	return id, true
}
