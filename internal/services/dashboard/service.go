package dashboard

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/money"
	"invoice-dashboard-backend/internal/repository"
)

// InvoiceReader covers the invoice-side aggregate and panel reads.
type InvoiceReader interface {
	CountInvoices(ctx context.Context) (int64, error)
	SumAmountsByStatus(ctx context.Context) (paid, pending int64, err error)
	FindLatest(ctx context.Context, n int) ([]repository.LatestInvoice, error)
}

// CustomerCounter covers the customer-side count.
type CustomerCounter interface {
	Count(ctx context.Context) (int64, error)
}

// RevenueReader covers the revenue chart read.
type RevenueReader interface {
	List(ctx context.Context) ([]models.Revenue, error)
}

// CardData holds the dashboard card values, sums pre-formatted.
type CardData struct {
	NumberOfInvoices     int64  `json:"numberOfInvoices"`
	NumberOfCustomers    int64  `json:"numberOfCustomers"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

type Service struct {
	invoices  InvoiceReader
	customers CustomerCounter
	revenue   RevenueReader
	logger    *zap.Logger
}

func NewService(invoices InvoiceReader, customers CustomerCounter, revenue RevenueReader, logger *zap.Logger) *Service {
	return &Service{invoices: invoices, customers: customers, revenue: revenue, logger: logger}
}

// CardData issues the two counts and the conditional sums concurrently
// and joins them before returning. An empty dataset yields zero counts
// and $0.00 sums.
func (s *Service) CardData(ctx context.Context) (*CardData, error) {
	var (
		wg            sync.WaitGroup
		invoiceCount  int64
		customerCount int64
		paid, pending int64
		errs          [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		invoiceCount, errs[0] = s.invoices.CountInvoices(ctx)
	}()
	go func() {
		defer wg.Done()
		customerCount, errs[1] = s.customers.Count(ctx)
	}()
	go func() {
		defer wg.Done()
		paid, pending, errs[2] = s.invoices.SumAmountsByStatus(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			s.logger.Error("card data fetch failed", zap.Error(err))
			return nil, err
		}
	}

	return &CardData{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    money.FormatCurrency(paid),
		TotalPendingInvoices: money.FormatCurrency(pending),
	}, nil
}

// LatestInvoices returns the five most recent invoices for the panel.
func (s *Service) LatestInvoices(ctx context.Context) ([]repository.LatestInvoice, error) {
	return s.invoices.FindLatest(ctx, 5)
}

// Revenue returns the monthly revenue history for the chart.
func (s *Service) Revenue(ctx context.Context) ([]models.Revenue, error) {
	return s.revenue.List(ctx)
}
