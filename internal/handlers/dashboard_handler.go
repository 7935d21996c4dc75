package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoice-dashboard-backend/internal/services/dashboard"
)

type DashboardHandler struct {
	service *dashboard.Service
}

func NewDashboardHandler(service *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Cards returns the summary card values.
func (h *DashboardHandler) Cards(c *gin.Context) {
	data, err := h.service.CardData(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch card data"})
		return
	}
	c.JSON(http.StatusOK, data)
}

// LatestInvoices returns the five most recent invoices.
func (h *DashboardHandler) LatestInvoices(c *gin.Context) {
	latest, err := h.service.LatestInvoices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch the latest invoices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": latest})
}

// Revenue returns the monthly revenue history.
func (h *DashboardHandler) Revenue(c *gin.Context) {
	revenue, err := h.service.Revenue(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch revenue data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue": revenue})
}
