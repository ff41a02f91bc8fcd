package repositories

import (
	"time"

	"records-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// SpendingFilters bound the spending-by-category aggregation. From/To are
// inclusive (explicit user-supplied range, applied verbatim); Until is an
// exclusive upper bound used for resolved calendar windows. All values are
// passed as bound parameters.
type SpendingFilters struct {
	From     *time.Time
	To       *time.Time
	Until    *time.Time
	Category string
}

// UnprocessedRecordRepositoryInterface defines read access to the raw
// imported records.
type UnprocessedRecordRepositoryInterface interface {
	List(offset, limit int) ([]models.UnprocessedRecord, int64, error)
}

// ProcessedRecordRepositoryInterface defines data access for categorized
// records: browsing, reporting aggregations, and the two bulk mutations.
type ProcessedRecordRepositoryInterface interface {
	GetWithFilters(filters models.RecordFilters) ([]models.ProcessedRecord, int64, error)
	DistinctCategories() ([]string, error)
	SpendingByCategory(filters SpendingFilters) ([]models.SpendingSummary, error)
	MonthlyBalances() ([]models.BalancePoint, error)
	YearlyBalances() ([]models.BalancePoint, error)
	UpdateCategories(bankIDs []string, category string) (int64, error)
	DeleteByBankIDs(bankIDs []string) (int64, error)
}

// spendingRow is the scan target for the category aggregation query.
type spendingRow struct {
	Category    string
	TotalAmount decimal.NullDecimal
}

// balanceRow is the scan target for the monthly/yearly balance queries.
// TotalAmount is nullable so a NULL sum can be substituted with zero at the
// formatting boundary.
type balanceRow struct {
	Year        int
	Month       int
	TotalAmount decimal.NullDecimal
}
