package repositories

import (
	"fmt"
	"strings"

	"records-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// processedRecordRepository implements ProcessedRecordRepositoryInterface
type processedRecordRepository struct {
	db *gorm.DB
}

// NewProcessedRecordRepository creates a new processed record repository
func NewProcessedRecordRepository(db *gorm.DB) ProcessedRecordRepositoryInterface {
	return &processedRecordRepository{
		db: db,
	}
}

// GetWithFilters retrieves processed records matching the filters, with the
// total matching row count. The count and the page fetch share one query
// chain so pagination totals cannot drift from the row fetch.
func (r *processedRecordRepository) GetWithFilters(filters models.RecordFilters) ([]models.ProcessedRecord, int64, error) {
	var records []models.ProcessedRecord
	var total int64

	query := r.db.Model(&models.ProcessedRecord{})

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Search != "" {
		query = query.Where("LOWER(description) LIKE LOWER(?)", "%"+filters.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count processed records: %w", err)
	}

	if err := query.Offset(filters.Offset).Limit(filters.Limit).
		Order(filters.OrderClause()).
		Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get processed records: %w", err)
	}

	return records, total, nil
}

// DistinctCategories returns all assigned categories for the filter dropdown.
func (r *processedRecordRepository) DistinctCategories() ([]string, error) {
	var categories []string

	if err := r.db.Model(&models.ProcessedRecord{}).
		Distinct("category").
		Where("category IS NOT NULL").
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get distinct categories: %w", err)
	}

	return categories, nil
}

// SpendingByCategory sums amounts per category within the given bounds.
// NULL categories are coalesced to the Uncategorized label inside the query,
// so they form one group regardless of how the store orders NULLs.
func (r *processedRecordRepository) SpendingByCategory(filters SpendingFilters) ([]models.SpendingSummary, error) {
	query := `SELECT COALESCE(category, 'Uncategorized') AS category, SUM(amount) AS total_amount FROM processed_records`

	var conditions []string
	var args []interface{}

	if filters.From != nil {
		conditions = append(conditions, "transaction_date >= ?")
		args = append(args, *filters.From)
	}
	if filters.To != nil {
		conditions = append(conditions, "transaction_date <= ?")
		args = append(args, *filters.To)
	}
	if filters.Until != nil {
		conditions = append(conditions, "transaction_date < ?")
		args = append(args, *filters.Until)
	}
	if filters.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filters.Category)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " GROUP BY COALESCE(category, 'Uncategorized') ORDER BY total_amount DESC"

	var rows []spendingRow
	if err := r.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get spending by category: %w", err)
	}

	summaries := make([]models.SpendingSummary, 0, len(rows))
	for _, row := range rows {
		amount := decimal.Zero
		if row.TotalAmount.Valid {
			amount = row.TotalAmount.Decimal
		}
		summaries = append(summaries, models.SpendingSummary{
			Category: row.Category,
			Amount:   amount,
		})
	}

	return summaries, nil
}

// MonthlyBalances sums amounts per (year, month) of the transaction date,
// most recent first.
func (r *processedRecordRepository) MonthlyBalances() ([]models.BalancePoint, error) {
	query := `
		SELECT
			EXTRACT(YEAR FROM transaction_date) AS year,
			EXTRACT(MONTH FROM transaction_date) AS month,
			SUM(amount) AS total_amount
		FROM processed_records
		GROUP BY EXTRACT(YEAR FROM transaction_date), EXTRACT(MONTH FROM transaction_date)
		ORDER BY year DESC, month DESC
	`

	var rows []balanceRow
	if err := r.db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get monthly balances: %w", err)
	}

	points := make([]models.BalancePoint, 0, len(rows))
	for _, row := range rows {
		amount := decimal.Zero
		if row.TotalAmount.Valid {
			amount = row.TotalAmount.Decimal
		}
		points = append(points, models.BalancePoint{
			Year:      row.Year,
			Month:     row.Month,
			MonthName: models.MonthName(row.Month),
			Amount:    amount,
			Status:    models.BalanceStatus(amount),
		})
	}

	return points, nil
}

// YearlyBalances sums amounts per year of the transaction date, most recent
// first.
func (r *processedRecordRepository) YearlyBalances() ([]models.BalancePoint, error) {
	query := `
		SELECT
			EXTRACT(YEAR FROM transaction_date) AS year,
			SUM(amount) AS total_amount
		FROM processed_records
		GROUP BY EXTRACT(YEAR FROM transaction_date)
		ORDER BY year DESC
	`

	var rows []balanceRow
	if err := r.db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get yearly balances: %w", err)
	}

	points := make([]models.BalancePoint, 0, len(rows))
	for _, row := range rows {
		amount := decimal.Zero
		if row.TotalAmount.Valid {
			amount = row.TotalAmount.Decimal
		}
		points = append(points, models.BalancePoint{
			Year:   row.Year,
			Amount: amount,
			Status: models.BalanceStatus(amount),
		})
	}

	return points, nil
}

// UpdateCategories assigns the category to every processed record whose bank
// record id is in the set, returning the number of rows actually updated.
func (r *processedRecordRepository) UpdateCategories(bankIDs []string, category string) (int64, error) {
	result := r.db.Model(&models.ProcessedRecord{}).
		Where("record_id_bank IN ?", bankIDs).
		Update("category", category)

	if result.Error != nil {
		return 0, fmt.Errorf("failed to update categories: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// DeleteByBankIDs deletes every processed record whose bank record id is in
// the set, returning the number of rows actually deleted.
func (r *processedRecordRepository) DeleteByBankIDs(bankIDs []string) (int64, error) {
	result := r.db.Where("record_id_bank IN ?", bankIDs).
		Delete(&models.ProcessedRecord{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete records: %w", result.Error)
	}

	return result.RowsAffected, nil
}
