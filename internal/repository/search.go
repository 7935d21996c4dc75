package repository

import (
	"strings"

	"gorm.io/gorm"
)

// PageSize is the fixed number of invoices per listing page.
const PageSize = 6

// invoiceSearchScope builds the free-text predicate for the invoice
// table. The same scope is applied to both the paged fetch and the page
// count so the two can never disagree on which rows match. An empty
// query matches every row.
func invoiceSearchScope(query string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if query == "" {
			return db
		}
		like := "%" + strings.ToLower(query) + "%"
		return db.Where(
			"LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ? OR CAST(invoices.amount AS TEXT) LIKE ? OR LOWER(invoices.status) LIKE ? OR to_char(invoices.date, 'YYYY-MM-DD') LIKE ?",
			like, like, like, like, like,
		)
	}
}
