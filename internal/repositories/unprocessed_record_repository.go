package repositories

import (
	"fmt"

	"records-dashboard/internal/models"

	"gorm.io/gorm"
)

// unprocessedRecordRepository implements UnprocessedRecordRepositoryInterface
type unprocessedRecordRepository struct {
	db *gorm.DB
}

// NewUnprocessedRecordRepository creates a new unprocessed record repository
func NewUnprocessedRecordRepository(db *gorm.DB) UnprocessedRecordRepositoryInterface {
	return &unprocessedRecordRepository{
		db: db,
	}
}

// List retrieves unprocessed records newest transaction first, with the total
// row count for pagination.
func (r *unprocessedRecordRepository) List(offset, limit int) ([]models.UnprocessedRecord, int64, error) {
	var records []models.UnprocessedRecord
	var total int64

	if err := r.db.Model(&models.UnprocessedRecord{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count unprocessed records: %w", err)
	}

	if err := r.db.Offset(offset).Limit(limit).
		Order("transaction_date DESC").
		Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get unprocessed records: %w", err)
	}

	return records, total, nil
}
