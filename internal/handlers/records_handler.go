package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"records-dashboard/internal/models"
	"records-dashboard/internal/repositories"
	"records-dashboard/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RecordsHandler serves the processed-record browser and the bulk
// recategorize/delete actions
type RecordsHandler struct {
	processedRepo repositories.ProcessedRecordRepositoryInterface
	triageService services.TriageServiceInterface
}

// NewRecordsHandler creates a new records handler
func NewRecordsHandler(
	processedRepo repositories.ProcessedRecordRepositoryInterface,
	triageService services.TriageServiceInterface,
) *RecordsHandler {
	return &RecordsHandler{
		processedRepo: processedRepo,
		triageService: triageService,
	}
}

// recordsPage is the template data for record_transformer.html
type recordsPage struct {
	Records    []models.ProcessedRecord
	Page       int
	PerPage    int
	TotalPages int
	TotalCount int64

	Categories     []string
	CategoryFilter string
	Search         string
	SortBy         string
	SortOrder      string
}

// UpdateCategoriesRequest is the form payload for the bulk recategorize action
type UpdateCategoriesRequest struct {
	RecordIDs   string `form:"record_ids" validate:"required,record_ids"`
	NewCategory string `form:"new_category" validate:"required"`
}

// DeleteRecordsRequest is the form payload for the bulk delete action
type DeleteRecordsRequest struct {
	RecordIDs string `form:"record_ids" validate:"required,record_ids"`
}

// mutationValidationMessage maps a failed form validation onto the two
// plain-text rejections: an absent field reads as missing, while a record_ids
// value with no usable entry reads as invalid. Missing fields win when both
// failures are present.
func mutationValidationMessage(err error, missingMessage string) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return missingMessage
	}

	for _, fieldError := range fieldErrors {
		if fieldError.Tag() == "required" {
			return missingMessage
		}
	}
	for _, fieldError := range fieldErrors {
		if fieldError.Tag() == "record_ids" {
			return "No valid record IDs provided"
		}
	}
	return missingMessage
}

// BrowseRecords renders the filterable, sortable record browser.
func (h *RecordsHandler) BrowseRecords(c echo.Context) error {
	params := models.NewPageParams(
		getIntParam(c, "page", 1),
		getIntParam(c, "per_page", models.DefaultPerPage),
	)

	filters := models.RecordFilters{
		Category:  c.QueryParam("category"),
		Search:    c.QueryParam("search"),
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: c.QueryParam("sort_order"),
		Offset:    params.Offset(),
		Limit:     params.PerPage,
	}
	filters.NormalizeSort()

	records, totalCount, err := h.processedRepo.GetWithFilters(filters)
	if err != nil {
		slog.Error("Error in record browser", "error", err.Error())
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Error fetching records: %s", err.Error()))
	}

	categories, err := h.processedRepo.DistinctCategories()
	if err != nil {
		slog.Error("Error in record browser", "error", err.Error())
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Error fetching records: %s", err.Error()))
	}

	return c.Render(http.StatusOK, "record_transformer.html", recordsPage{
		Records:    records,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: params.TotalPages(totalCount),
		TotalCount: totalCount,

		Categories:     categories,
		CategoryFilter: filters.Category,
		Search:         filters.Search,
		SortBy:         filters.SortBy,
		SortOrder:      filters.SortOrder,
	})
}

// UpdateCategories applies a new category to the submitted record IDs. The
// success message reports the number of IDs submitted, not the number of rows
// the store matched.
func (h *RecordsHandler) UpdateCategories(c echo.Context) error {
	var req UpdateCategoriesRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Missing record IDs or category")
	}
	if err := c.Validate(&req); err != nil {
		return c.String(http.StatusBadRequest, mutationValidationMessage(err, "Missing record IDs or category"))
	}

	recordIDs := services.ParseRecordIDs(req.RecordIDs)

	result, err := h.triageService.RecategorizeRecords(recordIDs, req.NewCategory)
	if err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Error updating categories: %s", err.Error()))
	}

	return c.String(http.StatusOK,
		fmt.Sprintf("Successfully updated %d records to category '%s'", result.SubmittedCount, req.NewCategory))
}

// DeleteRecords removes the submitted record IDs. Like UpdateCategories, the
// success message reports the submitted count.
func (h *RecordsHandler) DeleteRecords(c echo.Context) error {
	var req DeleteRecordsRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Missing record IDs")
	}
	if err := c.Validate(&req); err != nil {
		return c.String(http.StatusBadRequest, mutationValidationMessage(err, "Missing record IDs"))
	}

	recordIDs := services.ParseRecordIDs(req.RecordIDs)

	result, err := h.triageService.DeleteRecords(recordIDs)
	if err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Error deleting records: %s", err.Error()))
	}

	return c.String(http.StatusOK, fmt.Sprintf("Successfully deleted %d records", result.SubmittedCount))
}
