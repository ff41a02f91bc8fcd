package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mutationRecordRepo fakes only the mutation paths.
type mutationRecordRepo struct {
	fakeRecordRepo
	updatedIDs      []string
	updatedCategory string
	updateAffected  int64
	updateErr       error
	deletedIDs      []string
	deleteAffected  int64
	deleteErr       error
}

func (f *mutationRecordRepo) UpdateCategories(bankIDs []string, category string) (int64, error) {
	f.updatedIDs = bankIDs
	f.updatedCategory = category
	return f.updateAffected, f.updateErr
}

func (f *mutationRecordRepo) DeleteByBankIDs(bankIDs []string) (int64, error) {
	f.deletedIDs = bankIDs
	return f.deleteAffected, f.deleteErr
}

func TestParseRecordIDs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"trims and drops empties", "A, B ,,C", []string{"A", "B", "C"}},
		{"single id", "TXN-1", []string{"TXN-1"}},
		{"only separators", " , ,  ", []string{}},
		{"empty string", "", []string{}},
		{"tabs and spaces", "\tA\t, B ", []string{"A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRecordIDs(tt.raw))
		})
	}
}

func TestRecategorizeRecords_ReportsSubmittedCount(t *testing.T) {
	repo := &mutationRecordRepo{updateAffected: 1}
	svc := NewTriageService(repo, NoopMetrics{})

	// Three submitted ids, only one row matched: the result still reports 3
	result, err := svc.RecategorizeRecords([]string{"A", "B", "C"}, "Groceries")
	require.NoError(t, err)

	assert.Equal(t, 3, result.SubmittedCount)
	assert.Equal(t, int64(1), result.RowsAffected)
	assert.Equal(t, []string{"A", "B", "C"}, repo.updatedIDs)
	assert.Equal(t, "Groceries", repo.updatedCategory)
}

func TestRecategorizeRecords_Validation(t *testing.T) {
	svc := NewTriageService(&mutationRecordRepo{}, NoopMetrics{})

	_, err := svc.RecategorizeRecords(nil, "Groceries")
	assert.ErrorIs(t, err, ErrNoRecordIDs)

	_, err = svc.RecategorizeRecords([]string{"A"}, "")
	assert.ErrorIs(t, err, ErrCategoryRequired)
}

func TestRecategorizeRecords_StoreError(t *testing.T) {
	repo := &mutationRecordRepo{updateErr: errors.New("deadlock detected")}
	svc := NewTriageService(repo, NoopMetrics{})

	result, err := svc.RecategorizeRecords([]string{"A"}, "Groceries")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "deadlock detected")
}

func TestDeleteRecords_ReportsSubmittedCount(t *testing.T) {
	repo := &mutationRecordRepo{deleteAffected: 2}
	svc := NewTriageService(repo, NoopMetrics{})

	result, err := svc.DeleteRecords([]string{"A", "B", "B"})
	require.NoError(t, err)

	assert.Equal(t, 3, result.SubmittedCount)
	assert.Equal(t, int64(2), result.RowsAffected)
	assert.Equal(t, []string{"A", "B", "B"}, repo.deletedIDs)
}

func TestDeleteRecords_Validation(t *testing.T) {
	svc := NewTriageService(&mutationRecordRepo{}, NoopMetrics{})

	_, err := svc.DeleteRecords([]string{})
	assert.ErrorIs(t, err, ErrNoRecordIDs)
}

func TestDeleteRecords_StoreError(t *testing.T) {
	repo := &mutationRecordRepo{deleteErr: errors.New("permission denied")}
	svc := NewTriageService(repo, NoopMetrics{})

	result, err := svc.DeleteRecords([]string{"A"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "permission denied")
}
