package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/money"
)

// CustomerOption is the id/name pair used by the invoice form dropdown.
type CustomerOption struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CustomerRow is the customer table projection with per-customer invoice
// totals, formatted at this boundary.
type CustomerRow struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  string    `json:"total_pending"`
	TotalPaid     string    `json:"total_paid"`
}

type customerAggScan struct {
	ID            uuid.UUID
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int64
	TotalPending  int64
	TotalPaid     int64
}

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// List returns all customers as form options, name ascending.
func (r *CustomerRepository) List(ctx context.Context) ([]CustomerOption, error) {
	var options []CustomerOption
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Select("id, name").
		Order("name ASC").
		Scan(&options).Error
	return options, persistErr(OpRead, err)
}

// FindFiltered returns customers matching the query by name or email,
// with their invoice counts and pending/paid totals.
func (r *CustomerRepository) FindFiltered(ctx context.Context, query string) ([]CustomerRow, error) {
	like := "%" + strings.ToLower(query) + "%"

	var scans []customerAggScan
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Select(`customers.id, customers.name, customers.email, customers.image_url,
			COUNT(invoices.id) AS total_invoices,
			COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
			COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid`).
		Joins("LEFT JOIN invoices ON invoices.customer_id = customers.id").
		Where("LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ?", like, like).
		Group("customers.id, customers.name, customers.email, customers.image_url").
		Order("customers.name ASC").
		Scan(&scans).Error
	if err != nil {
		return nil, persistErr(OpRead, err)
	}

	rows := make([]CustomerRow, len(scans))
	for i, s := range scans {
		rows[i] = CustomerRow{
			ID:            s.ID,
			Name:          s.Name,
			Email:         s.Email,
			ImageURL:      s.ImageURL,
			TotalInvoices: s.TotalInvoices,
			TotalPending:  money.FormatCurrency(s.TotalPending),
			TotalPaid:     money.FormatCurrency(s.TotalPaid),
		}
	}
	return rows, nil
}

// Count returns the total customer count.
func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error
	return count, persistErr(OpRead, err)
}
