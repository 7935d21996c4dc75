package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"invoice-dashboard-backend/internal/repository"
	invoicesvc "invoice-dashboard-backend/internal/services/invoices"
	"invoice-dashboard-backend/internal/validation"
)

type InvoiceHandler struct {
	service *invoicesvc.Service
	repo    *repository.InvoiceRepository
}

func NewInvoiceHandler(service *invoicesvc.Service, repo *repository.InvoiceRepository) *InvoiceHandler {
	return &InvoiceHandler{service: service, repo: repo}
}

// List returns one page of the filtered invoice table plus the total
// page count for the pager.
func (h *InvoiceHandler) List(c *gin.Context) {
	query := c.Query("query")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	rows, err := h.repo.FindFilteredPage(c.Request.Context(), query, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch invoices"})
		return
	}
	totalPages, err := h.repo.CountPages(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch invoices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invoices":    rows,
		"total_pages": totalPages,
	})
}

// Get returns the editable form fields of one invoice.
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	form, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch invoice"})
		return
	}
	if form == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}

	c.JSON(http.StatusOK, form)
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var in validation.InvoiceInput
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	writeMutationResult(c, h.service.Create(c.Request.Context(), in))
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	var in validation.InvoiceInput
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	writeMutationResult(c, h.service.Update(c.Request.Context(), id, in))
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	h.service.Delete(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"message": "invoice deleted"})
}

// writeMutationResult maps the orchestrator's result onto HTTP: field
// errors as 422, persistence failures as 500, success as 200 with the
// redirect target.
func writeMutationResult(c *gin.Context, res invoicesvc.MutationResult) {
	switch {
	case len(res.Errors) > 0:
		c.JSON(http.StatusUnprocessableEntity, res)
	case res.Message != "":
		c.JSON(http.StatusInternalServerError, res)
	default:
		c.JSON(http.StatusOK, res)
	}
}
