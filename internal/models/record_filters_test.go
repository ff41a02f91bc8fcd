package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordFilters_NormalizeSort(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		wantBy    string
		wantOrder string
	}{
		{"valid field and order", "amount", "asc", "amount", "asc"},
		{"unknown field falls back", "drop table", "asc", DefaultSortField, "asc"},
		{"injection attempt falls back", "amount; DELETE FROM processed_records", "desc", DefaultSortField, "desc"},
		{"invalid order falls back", "category", "sideways", "category", SortOrderDesc},
		{"empty input", "", "", DefaultSortField, SortOrderDesc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := RecordFilters{SortBy: tt.sortBy, SortOrder: tt.sortOrder}
			f.NormalizeSort()
			assert.Equal(t, tt.wantBy, f.SortBy)
			assert.Equal(t, tt.wantOrder, f.SortOrder)
		})
	}
}

func TestRecordFilters_OrderClauseAllowListedFields(t *testing.T) {
	for _, field := range []string{
		"record_id_bank", "transaction_date", "currency_date", "account",
		"description", "amount", "currency", "category",
	} {
		f := RecordFilters{SortBy: field, SortOrder: "asc"}
		assert.Equal(t, field+" asc", f.OrderClause())
	}
}

func TestRecordFilters_OrderClauseWithoutNormalize(t *testing.T) {
	// OrderClause must be safe even when NormalizeSort was never called.
	f := RecordFilters{SortBy: "1; DROP TABLE processed_records", SortOrder: "; --"}
	assert.Equal(t, DefaultSortField+" "+SortOrderDesc, f.OrderClause())
}

func TestProcessedRecord_CategoryOrUncategorized(t *testing.T) {
	groceries := "Groceries"
	r := ProcessedRecord{Category: &groceries}
	assert.Equal(t, "Groceries", r.CategoryOrUncategorized())

	r.Category = nil
	assert.Equal(t, UncategorizedLabel, r.CategoryOrUncategorized())
}
