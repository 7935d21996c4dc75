package main

import (
	"log"
	"time"

	"invoice-dashboard-backend/internal/config"
	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// Seeds the database with placeholder operators, customers, invoices and
// revenue so the dashboard has something to show.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db := config.InitDB(logger)

	if err := db.AutoMigrate(
		&models.Invoice{},
		&models.Customer{},
		&models.User{},
		&models.Revenue{},
	); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("123456"), 10)
	if err != nil {
		logger.Fatal("password hashing failed", zap.Error(err))
	}
	user := models.User{
		ID:       uuid.New(),
		Name:     "Operator",
		Email:    "operator@example.com",
		Password: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		logger.Fatal("user seeding failed", zap.Error(err))
	}

	customers := []models.Customer{
		{ID: uuid.New(), Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
		{ID: uuid.New(), Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
		{ID: uuid.New(), Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
		{ID: uuid.New(), Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
		{ID: uuid.New(), Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
		{ID: uuid.New(), Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
	}
	if err := db.Create(&customers).Error; err != nil {
		logger.Fatal("customer seeding failed", zap.Error(err))
	}

	type seedInvoice struct {
		customer int
		amount   int64
		status   string
		date     string
	}
	seedInvoices := []seedInvoice{
		{0, 15795, models.InvoiceStatusPending, "2025-12-06"},
		{1, 20348, models.InvoiceStatusPending, "2025-11-14"},
		{4, 3040, models.InvoiceStatusPaid, "2025-10-29"},
		{3, 44800, models.InvoiceStatusPaid, "2025-09-10"},
		{5, 34577, models.InvoiceStatusPending, "2025-08-05"},
		{2, 54246, models.InvoiceStatusPending, "2025-07-16"},
		{0, 66600, models.InvoiceStatusPending, "2025-06-27"},
		{3, 32545, models.InvoiceStatusPaid, "2025-06-09"},
		{4, 1250, models.InvoiceStatusPaid, "2025-06-17"},
		{5, 8546, models.InvoiceStatusPaid, "2025-06-07"},
		{1, 500, models.InvoiceStatusPaid, "2025-08-19"},
		{5, 8945, models.InvoiceStatusPaid, "2025-06-03"},
		{2, 1000, models.InvoiceStatusPaid, "2025-06-05"},
	}

	invoices := make([]models.Invoice, len(seedInvoices))
	for i, s := range seedInvoices {
		date, err := time.Parse("2006-01-02", s.date)
		if err != nil {
			logger.Fatal("invalid seed date", zap.String("date", s.date), zap.Error(err))
		}
		invoices[i] = models.Invoice{
			ID:         uuid.New(),
			CustomerID: customers[s.customer].ID,
			Amount:     s.amount,
			Status:     s.status,
			Date:       datatypes.Date(date),
		}
	}
	if err := db.Create(&invoices).Error; err != nil {
		logger.Fatal("invoice seeding failed", zap.Error(err))
	}

	revenue := []models.Revenue{
		{Month: "Jan", Revenue: 200000}, {Month: "Feb", Revenue: 180000},
		{Month: "Mar", Revenue: 220000}, {Month: "Apr", Revenue: 250000},
		{Month: "May", Revenue: 230000}, {Month: "Jun", Revenue: 320000},
		{Month: "Jul", Revenue: 350000}, {Month: "Aug", Revenue: 370000},
		{Month: "Sep", Revenue: 250000}, {Month: "Oct", Revenue: 280000},
		{Month: "Nov", Revenue: 300000}, {Month: "Dec", Revenue: 480000},
	}
	if err := db.Create(&revenue).Error; err != nil {
		logger.Fatal("revenue seeding failed", zap.Error(err))
	}

	logger.Info("seeding complete",
		zap.Int("customers", len(customers)),
		zap.Int("invoices", len(invoices)),
		zap.Int("revenue_months", len(revenue)),
	)
}
