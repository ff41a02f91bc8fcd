package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"records-dashboard/internal/models"
	"records-dashboard/internal/repositories"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves the raw imported records for inspection
type AdminHandler struct {
	unprocessedRepo repositories.UnprocessedRecordRepositoryInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(unprocessedRepo repositories.UnprocessedRecordRepositoryInterface) *AdminHandler {
	return &AdminHandler{unprocessedRepo: unprocessedRepo}
}

// adminPage is the template data for admin.html
type adminPage struct {
	Records    []models.UnprocessedRecord
	Page       int
	PerPage    int
	TotalPages int
	TotalCount int64
}

// ListUnprocessedRecords renders a paginated view of unprocessed records,
// newest first.
func (h *AdminHandler) ListUnprocessedRecords(c echo.Context) error {
	params := models.NewPageParams(
		getIntParam(c, "page", 1),
		getIntParam(c, "per_page", models.DefaultPerPage),
	)

	records, totalCount, err := h.unprocessedRepo.List(params.Offset(), params.PerPage)
	if err != nil {
		slog.Error("Error in admin route", "error", err.Error())
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Error fetching records: %s", err.Error()))
	}

	return c.Render(http.StatusOK, "admin.html", adminPage{
		Records:    records,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: params.TotalPages(totalCount),
		TotalCount: totalCount,
	})
}
