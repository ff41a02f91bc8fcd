package handlers

import (
	"net/http"

	"records-dashboard/internal/models"
	"records-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// DashboardHandler serves the spending and balance dashboard
type DashboardHandler struct {
	reportService services.ReportServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(reportService services.ReportServiceInterface) *DashboardHandler {
	return &DashboardHandler{reportService: reportService}
}

// dashboardPage is the template data for index.html
type dashboardPage struct {
	SpendingData   []models.SpendingSummary
	TotalSpending  decimal.Decimal
	TimePeriod     string
	CategoryFilter string
	StartDate      string
	EndDate        string

	MonthlyBalances   []models.BalancePoint
	YearlyBalances    []models.BalancePoint
	MonthlyPage       int
	YearlyPage        int
	PerPage           int
	MonthlyTotalPages int
	YearlyTotalPages  int
}

// Dashboard renders the main reporting page. Report data never fails the
// request: a failed aggregation renders as an empty section.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	timePeriod := c.QueryParam("time_period")
	if timePeriod == "" {
		timePeriod = services.TimePeriodMonth
	}
	categoryFilter := c.QueryParam("category")
	startDate := c.QueryParam("start_date")
	endDate := c.QueryParam("end_date")

	spendingData, totalSpending := h.reportService.SpendingByCategory(timePeriod, categoryFilter, startDate, endDate)
	monthlyBalances, yearlyBalances := h.reportService.MonthlyYearlyBalances()

	perPage := getIntParam(c, "per_page", models.DefaultPerPage)
	monthlyParams := models.NewPageParams(getIntParam(c, "monthly_page", 1), perPage)
	yearlyParams := models.NewPageParams(getIntParam(c, "yearly_page", 1), perPage)

	monthlySlice, monthlyTotalPages := paginateBalances(monthlyBalances, monthlyParams)
	yearlySlice, yearlyTotalPages := paginateBalances(yearlyBalances, yearlyParams)

	return c.Render(http.StatusOK, "index.html", dashboardPage{
		SpendingData:   spendingData,
		TotalSpending:  totalSpending,
		TimePeriod:     timePeriod,
		CategoryFilter: categoryFilter,
		StartDate:      startDate,
		EndDate:        endDate,

		MonthlyBalances:   monthlySlice,
		YearlyBalances:    yearlySlice,
		MonthlyPage:       monthlyParams.Page,
		YearlyPage:        yearlyParams.Page,
		PerPage:           monthlyParams.PerPage,
		MonthlyTotalPages: monthlyTotalPages,
		YearlyTotalPages:  yearlyTotalPages,
	})
}

// paginateBalances slices an already-fetched balance series in memory. The
// aggregation result is small (one row per month or year), so there is no
// benefit to pushing pagination into the query.
func paginateBalances(points []models.BalancePoint, params models.PageParams) ([]models.BalancePoint, int) {
	totalPages := params.TotalPages(int64(len(points)))

	start := params.Offset()
	if start >= len(points) {
		return []models.BalancePoint{}, totalPages
	}

	end := start + params.PerPage
	if end > len(points) {
		end = len(points)
	}

	return points[start:end], totalPages
}
