package validation

import (
	"time"

	"github.com/google/uuid"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/money"
)

// Mode selects the messaging and date handling for invoice validation.
// The field rules themselves are shared between modes.
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

// modeConfig makes the per-mode differences explicit instead of hiding
// them in shared schema state.
type modeConfig struct {
	failureMessage string
	computeDate    bool
}

var modeConfigs = map[Mode]modeConfig{
	ModeCreate: {
		failureMessage: "Missing Fields. Failed to Create Invoice.",
		computeDate:    true,
	},
	ModeUpdate: {
		failureMessage: "Invalid Fields. Failed to Update Invoice.",
		// Date is write-once; updates never recompute it.
		computeDate: false,
	},
}

// InvoiceInput is the raw form payload. Everything arrives as text from
// the boundary.
type InvoiceInput struct {
	CustomerID string `json:"customer_id"`
	Amount     string `json:"amount"`
	Status     string `json:"status"`
}

// InvoiceErrors collects every field violation plus a mode-specific
// summary message. A field absent from Errors has no violation.
type InvoiceErrors struct {
	Errors  map[string][]string `json:"errors"`
	Message string              `json:"message"`
}

// NormalizedInvoice is a validated record ready for persistence. Amount
// is in cents; Date is set only in create mode, as today's YYYY-MM-DD.
type NormalizedInvoice struct {
	CustomerID  uuid.UUID
	AmountCents int64
	Status      string
	Date        string
}

// ValidateInvoice checks all fields independently and collects every
// violation rather than stopping at the first one. It returns either a
// normalized record or the error set, never both.
func ValidateInvoice(in InvoiceInput, mode Mode) (*NormalizedInvoice, *InvoiceErrors) {
	cfg := modeConfigs[mode]
	fieldErrors := map[string][]string{}

	customerID, err := uuid.Parse(in.CustomerID)
	if in.CustomerID == "" || err != nil {
		fieldErrors["customerId"] = append(fieldErrors["customerId"], "Please select a customer.")
	}

	amountCents, err := money.ToCents(in.Amount)
	if err != nil {
		fieldErrors["amount"] = append(fieldErrors["amount"], "Please enter an amount greater than $0.")
	}

	if in.Status != models.InvoiceStatusPending && in.Status != models.InvoiceStatusPaid {
		fieldErrors["status"] = append(fieldErrors["status"], "Please select an invoice status.")
	}

	if len(fieldErrors) > 0 {
		return nil, &InvoiceErrors{Errors: fieldErrors, Message: cfg.failureMessage}
	}

	rec := &NormalizedInvoice{
		CustomerID:  customerID,
		AmountCents: amountCents,
		Status:      in.Status,
	}
	if cfg.computeDate {
		rec.Date = time.Now().Format("2006-01-02")
	}
	return rec, nil
}
