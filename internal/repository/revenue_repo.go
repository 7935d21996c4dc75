package repository

import (
	"context"

	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/models"
)

type RevenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// List returns the monthly revenue figures for the dashboard chart.
func (r *RevenueRepository) List(ctx context.Context) ([]models.Revenue, error) {
	var revenue []models.Revenue
	err := r.db.WithContext(ctx).Find(&revenue).Error
	return revenue, persistErr(OpRead, err)
}
