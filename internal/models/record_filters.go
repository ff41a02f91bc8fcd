package models

// Sort directions accepted by the record browser.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// DefaultSortField is used whenever the requested sort column is not in the
// allow-list.
const DefaultSortField = "transaction_date"

// sortableFields is the allow-list of columns that may be interpolated into
// ORDER BY. Sort identifiers cannot be bound parameters, so anything outside
// this set falls back to DefaultSortField.
var sortableFields = map[string]bool{
	"record_id_bank":   true,
	"transaction_date": true,
	"currency_date":    true,
	"account":          true,
	"description":      true,
	"amount":           true,
	"currency":         true,
	"category":         true,
}

// RecordFilters contains filtering and sorting options for processed-record
// queries. Category and Search values are always bound parameters; SortBy and
// SortOrder are validated identifiers.
type RecordFilters struct {
	Category  string
	Search    string
	SortBy    string
	SortOrder string
	Offset    int
	Limit     int
}

// NormalizeSort validates the sort column against the allow-list and the
// direction against asc/desc, substituting the defaults for anything else.
func (f *RecordFilters) NormalizeSort() {
	if !sortableFields[f.SortBy] {
		f.SortBy = DefaultSortField
	}
	if f.SortOrder != SortOrderAsc && f.SortOrder != SortOrderDesc {
		f.SortOrder = SortOrderDesc
	}
}

// OrderClause returns the ORDER BY expression. It re-validates both
// identifiers so the result only ever contains allow-listed values, even if
// NormalizeSort was skipped.
func (f *RecordFilters) OrderClause() string {
	sortBy := f.SortBy
	if !sortableFields[sortBy] {
		sortBy = DefaultSortField
	}
	sortOrder := f.SortOrder
	if sortOrder != SortOrderAsc && sortOrder != SortOrderDesc {
		sortOrder = SortOrderDesc
	}
	return sortBy + " " + sortOrder
}
