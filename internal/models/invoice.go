package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Invoice stores amount in minor currency units (cents). Date is set at
// creation and never written by updates.
type Invoice struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Amount     int64     `gorm:"index"`
	Status     string    `gorm:"index"`
	Date       datatypes.Date
	CreatedAt  time.Time
}
