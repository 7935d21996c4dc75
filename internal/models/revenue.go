package models

// Revenue is a monthly revenue figure for the dashboard chart, in minor
// currency units.
type Revenue struct {
	Month   string `gorm:"primaryKey;size:4"`
	Revenue int64
}
