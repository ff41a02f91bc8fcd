package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"records-dashboard/internal/repositories"
)

var (
	ErrNoRecordIDs      = errors.New("no valid record IDs provided")
	ErrCategoryRequired = errors.New("category is required")
)

type triageService struct {
	recordRepo repositories.ProcessedRecordRepositoryInterface
	metrics    MetricsRecorderInterface
}

func NewTriageService(
	recordRepo repositories.ProcessedRecordRepositoryInterface,
	metrics MetricsRecorderInterface,
) TriageServiceInterface {
	return &triageService{
		recordRepo: recordRepo,
		metrics:    metrics,
	}
}

// ParseRecordIDs splits a comma-separated id list, trimming whitespace and
// dropping empty entries.
func ParseRecordIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// RecategorizeRecords overwrites the category of every record in the id set.
// The result reports the submitted id count; ids that repeat or match no row
// still count.
func (s *triageService) RecategorizeRecords(recordIDs []string, newCategory string) (*TriageResult, error) {
	if len(recordIDs) == 0 {
		return nil, ErrNoRecordIDs
	}
	if newCategory == "" {
		return nil, ErrCategoryRequired
	}

	affected, err := s.recordRepo.UpdateCategories(recordIDs, newCategory)
	if err != nil {
		s.metrics.RecordMutation("recategorize", "error", len(recordIDs))
		return nil, fmt.Errorf("failed to update categories: %w", err)
	}

	s.metrics.RecordMutation("recategorize", "ok", len(recordIDs))
	slog.Info("records recategorized",
		"new_category", newCategory,
		"submitted_ids", len(recordIDs),
		"rows_affected", affected)

	return &TriageResult{
		SubmittedCount: len(recordIDs),
		RowsAffected:   affected,
	}, nil
}

// DeleteRecords removes every record in the id set. Reporting follows the
// same submitted-count contract as RecategorizeRecords.
func (s *triageService) DeleteRecords(recordIDs []string) (*TriageResult, error) {
	if len(recordIDs) == 0 {
		return nil, ErrNoRecordIDs
	}

	affected, err := s.recordRepo.DeleteByBankIDs(recordIDs)
	if err != nil {
		s.metrics.RecordMutation("delete", "error", len(recordIDs))
		return nil, fmt.Errorf("failed to delete records: %w", err)
	}

	s.metrics.RecordMutation("delete", "ok", len(recordIDs))
	slog.Info("records deleted",
		"submitted_ids", len(recordIDs),
		"rows_affected", affected)

	return &TriageResult{
		SubmittedCount: len(recordIDs),
		RowsAffected:   affected,
	}, nil
}
