// controllers/transaction.go
package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"cashback-backend/models"
	"cashback-backend/services"

	"github.com/gin-gonic/gin"
)

type TransactionController struct {
	Transactions *services.TransactionService
}

// CreateTransaction posts a manual credit or debit.
func (tc *TransactionController) CreateTransaction(c *gin.Context) {
	var input services.ManualTransaction
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.TransactionResult{
			Success: false,
			Message: "invalid JSON body",
			Errors:  []string{err.Error()},
		})
		return
	}

	balance, err := tc.Transactions.PostManual(c.Request.Context(), input)
	if err != nil {
		status, message, issues := failure(err, "Failed to process transaction")
		c.JSON(status, models.TransactionResult{Success: false, Message: message, Errors: issues})
		return
	}

	verb := "added"
	if input.Type == models.TransactionTypeDebit {
		verb = "removed"
	}
	c.JSON(http.StatusOK, models.TransactionResult{
		Success:    true,
		Message:    fmt.Sprintf("%d points %s", input.Points, verb),
		NewBalance: &balance,
	})
}

// GetTransactions returns one page of the points statement.
func (tc *TransactionController) GetTransactions(c *gin.Context) {
	page, err := tc.Transactions.Statement(c.Request.Context(), services.StatementQuery{
		CustomerID: c.Query("customerId"),
		Type:       c.Query("type"),
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
		Page:       queryInt(c, "page"),
		Limit:      queryInt(c, "limit"),
	})
	if err != nil {
		respondError(c, err, "Failed to load transactions")
		return
	}
	c.JSON(http.StatusOK, page)
}

// queryInt reads an integer query parameter; absent or malformed values are 0.
func queryInt(c *gin.Context, key string) int {
	n, _ := strconv.Atoi(c.Query(key))
	return n
}

func respondError(c *gin.Context, err error, fallback string) {
	status, message, issues := failure(err, fallback)
	body := gin.H{"success": false, "error": message, "message": message}
	if len(issues) > 0 && status != http.StatusInternalServerError {
		body["errors"] = issues
	}
	c.AbortWithStatusJSON(status, body)
}
