package services

import (
	"records-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// ReportServiceInterface produces the dashboard aggregations. Report reads
// never fail: data-access errors are logged and degraded to empty results.
type ReportServiceInterface interface {
	SpendingByCategory(timePeriod, categoryFilter, startDate, endDate string) ([]models.SpendingSummary, decimal.Decimal)
	MonthlyYearlyBalances() ([]models.BalancePoint, []models.BalancePoint)
}

// TriageServiceInterface performs the bulk mutations on processed records.
type TriageServiceInterface interface {
	RecategorizeRecords(recordIDs []string, newCategory string) (*TriageResult, error)
	DeleteRecords(recordIDs []string) (*TriageResult, error)
}

// TriageResult reports the outcome of a bulk mutation. SubmittedCount is the
// number of ids the caller submitted, which is what the response reports;
// RowsAffected is what the store actually touched and is only logged.
type TriageResult struct {
	SubmittedCount int
	RowsAffected   int64
}

// MetricsRecorderInterface records operational metrics for reports and
// mutations.
type MetricsRecorderInterface interface {
	RecordReportQuery(report, status string)
	ObserveReportDuration(report string, milliseconds float64)
	RecordMutation(operation, status string, submittedIDs int)
}
