package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/money"
	"invoice-dashboard-backend/internal/validation"
)

// FilteredInvoiceRow is the invoice/customer join projection for the
// listing table. Amount is formatted for display at this boundary.
type FilteredInvoiceRow struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ImageURL   string    `json:"image_url"`
	Date       string    `json:"date"`
	Amount     string    `json:"amount"`
	Status     string    `json:"status"`
}

// LatestInvoice is a dashboard panel row, amount pre-formatted.
type LatestInvoice struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
	Amount   string    `json:"amount"`
}

// InvoiceForm carries the editable fields of a single invoice. Amount is
// in dollars here so the form shows what the operator typed.
type InvoiceForm struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
}

type invoiceJoinScan struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Name       string
	Email      string
	ImageURL   string
	Date       time.Time
	Amount     int64
	Status     string
}

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create inserts a validated invoice. The date comes from the normalized
// record and is never touched again.
func (r *InvoiceRepository) Create(ctx context.Context, rec *validation.NormalizedInvoice) error {
	date, err := time.Parse("2006-01-02", rec.Date)
	if err != nil {
		return persistErr(OpCreate, err)
	}

	invoice := models.Invoice{
		ID:         uuid.New(),
		CustomerID: rec.CustomerID,
		Amount:     rec.AmountCents,
		Status:     rec.Status,
		Date:       datatypes.Date(date),
	}
	return persistErr(OpCreate, r.db.WithContext(ctx).Create(&invoice).Error)
}

// Update writes customer_id, amount and status only. Date is write-once.
func (r *InvoiceRepository) Update(ctx context.Context, id uuid.UUID, rec *validation.NormalizedInvoice) error {
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id": rec.CustomerID,
			"amount":      rec.AmountCents,
			"status":      rec.Status,
		}).Error
	return persistErr(OpUpdate, err)
}

// Delete removes an invoice. A missing id is not an error.
func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&models.Invoice{}, "id = ?", id).Error
	return persistErr(OpDelete, err)
}

// GetByID returns the editable form fields, or nil when the invoice does
// not exist.
func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceForm, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, persistErr(OpRead, err)
	}
	return &InvoiceForm{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     money.ToDollars(invoice.Amount),
		Status:     invoice.Status,
	}, nil
}

func (r *InvoiceRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Joins("JOIN customers ON customers.id = invoices.customer_id")
}

// FindFilteredPage returns one page of the filtered listing, newest
// first, ties broken by insertion order.
func (r *InvoiceRepository) FindFilteredPage(ctx context.Context, query string, page int) ([]FilteredInvoiceRow, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize

	var scans []invoiceJoinScan
	err := r.joined(ctx).
		Select("invoices.id, invoices.customer_id, customers.name, customers.email, customers.image_url, invoices.date, invoices.amount, invoices.status").
		Scopes(invoiceSearchScope(query)).
		Order("invoices.date DESC, invoices.created_at ASC").
		Limit(PageSize).
		Offset(offset).
		Scan(&scans).Error
	if err != nil {
		return nil, persistErr(OpRead, err)
	}

	rows := make([]FilteredInvoiceRow, len(scans))
	for i, s := range scans {
		rows[i] = FilteredInvoiceRow{
			ID:         s.ID,
			CustomerID: s.CustomerID,
			Name:       s.Name,
			Email:      s.Email,
			ImageURL:   s.ImageURL,
			Date:       s.Date.Format("2006-01-02"),
			Amount:     money.FormatCurrency(s.Amount),
			Status:     s.Status,
		}
	}
	return rows, nil
}

// CountPages returns the number of listing pages for a query, using the
// same predicate as FindFilteredPage. Zero matches means zero pages.
func (r *InvoiceRepository) CountPages(ctx context.Context, query string) (int, error) {
	var count int64
	err := r.joined(ctx).
		Scopes(invoiceSearchScope(query)).
		Count(&count).Error
	if err != nil {
		return 0, persistErr(OpRead, err)
	}
	return int((count + PageSize - 1) / PageSize), nil
}

// FindLatest returns the n most recent invoices joined with customer
// display fields.
func (r *InvoiceRepository) FindLatest(ctx context.Context, n int) ([]LatestInvoice, error) {
	var scans []invoiceJoinScan
	err := r.joined(ctx).
		Select("invoices.id, customers.name, customers.email, customers.image_url, invoices.amount").
		Order("invoices.date DESC, invoices.created_at ASC").
		Limit(n).
		Scan(&scans).Error
	if err != nil {
		return nil, persistErr(OpRead, err)
	}

	latest := make([]LatestInvoice, len(scans))
	for i, s := range scans {
		latest[i] = LatestInvoice{
			ID:       s.ID,
			Name:     s.Name,
			Email:    s.Email,
			ImageURL: s.ImageURL,
			Amount:   money.FormatCurrency(s.Amount),
		}
	}
	return latest, nil
}

// CountInvoices returns the total invoice count.
func (r *InvoiceRepository) CountInvoices(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Invoice{}).Count(&count).Error
	return count, persistErr(OpRead, err)
}

type statusSums struct {
	Paid    int64
	Pending int64
}

// SumAmountsByStatus returns the paid and pending amount totals in cents
// over the invoice table alone, so invoices without a matching customer
// are still counted once.
func (r *InvoiceRepository) SumAmountsByStatus(ctx context.Context) (paid, pending int64, err error) {
	var sums statusSums
	err = r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Select(`COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending`).
		Scan(&sums).Error
	if err != nil {
		return 0, 0, persistErr(OpRead, err)
	}
	return sums.Paid, sums.Pending, nil
}
