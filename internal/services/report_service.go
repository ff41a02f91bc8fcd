package services

import (
	"log/slog"
	"time"

	"records-dashboard/internal/models"
	"records-dashboard/internal/repositories"

	"github.com/shopspring/decimal"
)

// Time periods recognized by the spending report. Anything else means no
// date restriction.
const (
	TimePeriodDay   = "day"
	TimePeriodWeek  = "week"
	TimePeriodMonth = "month"
	TimePeriodYear  = "year"
)

const dateLayout = "2006-01-02"

type reportService struct {
	recordRepo repositories.ProcessedRecordRepositoryInterface
	metrics    MetricsRecorderInterface
	now        func() time.Time
}

func NewReportService(
	recordRepo repositories.ProcessedRecordRepositoryInterface,
	metrics MetricsRecorderInterface,
) ReportServiceInterface {
	return &reportService{
		recordRepo: recordRepo,
		metrics:    metrics,
		now:        time.Now,
	}
}

// SpendingByCategory returns per-category totals for the resolved window plus
// the arithmetic total of the returned amounts. An explicit start/end pair
// always wins over timePeriod. Data-access failures degrade to an empty
// result.
func (s *reportService) SpendingByCategory(timePeriod, categoryFilter, startDate, endDate string) ([]models.SpendingSummary, decimal.Decimal) {
	started := s.now()

	filters, ok := s.resolveSpendingFilters(timePeriod, startDate, endDate)
	if !ok {
		s.metrics.RecordReportQuery("spending", "invalid_range")
		return []models.SpendingSummary{}, decimal.Zero
	}
	filters.Category = categoryFilter

	summaries, err := s.recordRepo.SpendingByCategory(filters)
	if err != nil {
		slog.Error("failed to fetch spending data",
			"time_period", timePeriod,
			"category_filter", categoryFilter,
			"error", err)
		s.metrics.RecordReportQuery("spending", "error")
		return []models.SpendingSummary{}, decimal.Zero
	}

	total := decimal.Zero
	for _, summary := range summaries {
		total = total.Add(summary.Amount)
	}

	s.metrics.RecordReportQuery("spending", "ok")
	s.metrics.ObserveReportDuration("spending", float64(time.Since(started).Milliseconds()))

	slog.Info("spending report generated",
		"time_period", timePeriod,
		"categories", len(summaries),
		"total", total.String())

	return summaries, total
}

// resolveSpendingFilters turns the request parameters into query bounds.
// Returns ok=false only when an explicit range was supplied but unparseable,
// which the store would have rejected anyway.
func (s *reportService) resolveSpendingFilters(timePeriod, startDate, endDate string) (repositories.SpendingFilters, bool) {
	if startDate != "" && endDate != "" {
		from, errFrom := time.Parse(dateLayout, startDate)
		to, errTo := time.Parse(dateLayout, endDate)
		if errFrom != nil || errTo != nil {
			slog.Warn("invalid explicit date range",
				"start_date", startDate,
				"end_date", endDate)
			return repositories.SpendingFilters{}, false
		}
		return repositories.SpendingFilters{From: &from, To: &to}, true
	}

	from, until, restricted := resolveCalendarWindow(timePeriod, s.now())
	if !restricted {
		return repositories.SpendingFilters{}, true
	}
	return repositories.SpendingFilters{From: &from, Until: &until}, true
}

// resolveCalendarWindow maps a time period onto the half-open [from, until)
// window containing now. The "week" window is the ISO week, Monday-based.
func resolveCalendarWindow(timePeriod string, now time.Time) (from, until time.Time, restricted bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch timePeriod {
	case TimePeriodDay:
		return today, today.AddDate(0, 0, 1), true
	case TimePeriodWeek:
		weekday := int(today.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		monday := today.AddDate(0, 0, 1-weekday)
		return monday, monday.AddDate(0, 0, 7), true
	case TimePeriodMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return first, first.AddDate(0, 1, 0), true
	case TimePeriodYear:
		first := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return first, first.AddDate(1, 0, 0), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// MonthlyYearlyBalances returns the monthly and yearly balance series. Either
// query failing degrades both to empty slices.
func (s *reportService) MonthlyYearlyBalances() ([]models.BalancePoint, []models.BalancePoint) {
	started := s.now()

	monthly, err := s.recordRepo.MonthlyBalances()
	if err != nil {
		slog.Error("failed to fetch monthly balances", "error", err)
		s.metrics.RecordReportQuery("balances", "error")
		return []models.BalancePoint{}, []models.BalancePoint{}
	}

	yearly, err := s.recordRepo.YearlyBalances()
	if err != nil {
		slog.Error("failed to fetch yearly balances", "error", err)
		s.metrics.RecordReportQuery("balances", "error")
		return []models.BalancePoint{}, []models.BalancePoint{}
	}

	s.metrics.RecordReportQuery("balances", "ok")
	s.metrics.ObserveReportDuration("balances", float64(time.Since(started).Milliseconds()))

	return monthly, yearly
}
