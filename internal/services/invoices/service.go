package invoices

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"invoice-dashboard-backend/internal/cache"
	"invoice-dashboard-backend/internal/validation"
)

// InvoicesViewPath is the logical path of the invoice collection view,
// invalidated after every successful mutation.
const InvoicesViewPath = "/dashboard/invoices"

// InvoiceStore is the persistence surface the orchestrator needs.
type InvoiceStore interface {
	Create(ctx context.Context, rec *validation.NormalizedInvoice) error
	Update(ctx context.Context, id uuid.UUID, rec *validation.NormalizedInvoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MutationResult is what a mutation hands back to the transport layer:
// field errors with a summary message, a bare failure message, a redirect
// target, or nothing (delete success).
type MutationResult struct {
	Errors   map[string][]string `json:"errors,omitempty"`
	Message  string              `json:"message,omitempty"`
	Redirect string              `json:"redirect,omitempty"`
}

// Failed reports whether the mutation did not persist.
func (r MutationResult) Failed() bool {
	return r.Message != "" || len(r.Errors) > 0
}

// Service runs the validate -> persist -> invalidate -> redirect pipeline
// for invoice mutations.
type Service struct {
	store  InvoiceStore
	views  cache.ViewCache
	logger *zap.Logger
}

func NewService(store InvoiceStore, views cache.ViewCache, logger *zap.Logger) *Service {
	return &Service{store: store, views: views, logger: logger}
}

// Create validates the raw form input and inserts a new invoice.
// Validation failures return before any side effect.
func (s *Service) Create(ctx context.Context, in validation.InvoiceInput) MutationResult {
	rec, verrs := validation.ValidateInvoice(in, validation.ModeCreate)
	if verrs != nil {
		return MutationResult{Errors: verrs.Errors, Message: verrs.Message}
	}

	if err := s.store.Create(ctx, rec); err != nil {
		s.logger.Error("invoice create failed", zap.Error(err))
		return MutationResult{
			Errors:  map[string][]string{},
			Message: "Database Error: Failed to Create Invoice.",
		}
	}

	s.invalidateInvoicesView(ctx)
	return MutationResult{Redirect: InvoicesViewPath}
}

// Update validates the raw form input and writes the mutable fields of
// an existing invoice. The stored date is never rewritten.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in validation.InvoiceInput) MutationResult {
	rec, verrs := validation.ValidateInvoice(in, validation.ModeUpdate)
	if verrs != nil {
		return MutationResult{Errors: verrs.Errors, Message: verrs.Message}
	}

	if err := s.store.Update(ctx, id, rec); err != nil {
		s.logger.Error("invoice update failed", zap.String("invoice_id", id.String()), zap.Error(err))
		return MutationResult{
			Errors:  map[string][]string{},
			Message: "Database Error: Failed to Update Invoice.",
		}
	}

	s.invalidateInvoicesView(ctx)
	return MutationResult{Redirect: InvoicesViewPath}
}

// Delete removes an invoice. Persistence failures are logged and
// absorbed so bulk cleanup never blocks; the view is invalidated either
// way and there is no redirect.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) MutationResult {
	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Error("invoice delete failed", zap.String("invoice_id", id.String()), zap.Error(err))
	}

	s.invalidateInvoicesView(ctx)
	return MutationResult{}
}

// invalidateInvoicesView signals the view cache after a successful write.
// It is fire-and-forget relative to the mutation outcome.
func (s *Service) invalidateInvoicesView(ctx context.Context) {
	if err := s.views.Invalidate(ctx, InvoicesViewPath); err != nil {
		s.logger.Warn("view cache invalidation failed",
			zap.String("path", InvoicesViewPath), zap.Error(err))
	}
}
