package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoice-dashboard-backend/internal/repository"
)

type CustomerHandler struct {
	repo *repository.CustomerRepository
}

func NewCustomerHandler(repo *repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{repo: repo}
}

// List returns all customers as id/name options for the invoice form.
func (h *CustomerHandler) List(c *gin.Context) {
	options, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": options})
}

// Filtered returns the customer table with per-customer invoice totals.
func (h *CustomerHandler) Filtered(c *gin.Context) {
	rows, err := h.repo.FindFiltered(c.Request.Context(), c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": rows})
}
