package repositories

import (
	"errors"
	"testing"

	"records-dashboard/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The balance queries use EXTRACT, which the sqlite test driver does not
// support, so they are exercised against a mocked postgres connection.
func setupMockRepo(t *testing.T) (ProcessedRecordRepositoryInterface, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewProcessedRecordRepository(db), mock
}

func TestMonthlyBalances(t *testing.T) {
	repo, mock := setupMockRepo(t)

	rows := sqlmock.NewRows([]string{"year", "month", "total_amount"}).
		AddRow(2024, 3, "150.25").
		AddRow(2024, 2, "-42.10").
		AddRow(2024, 1, "0")

	mock.ExpectQuery(`EXTRACT\(MONTH FROM transaction_date\)`).WillReturnRows(rows)

	points, err := repo.MonthlyBalances()
	require.NoError(t, err)

	require.Len(t, points, 3)

	assert.Equal(t, 2024, points[0].Year)
	assert.Equal(t, 3, points[0].Month)
	assert.Equal(t, "March", points[0].MonthName)
	assert.True(t, points[0].Amount.Equal(decimal.RequireFromString("150.25")))
	assert.Equal(t, models.BalanceStatusPositive, points[0].Status)

	assert.Equal(t, "February", points[1].MonthName)
	assert.Equal(t, models.BalanceStatusNegative, points[1].Status)

	assert.Equal(t, "January", points[2].MonthName)
	assert.Equal(t, models.BalanceStatusZero, points[2].Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonthlyBalances_NullSumSubstitutedWithZero(t *testing.T) {
	repo, mock := setupMockRepo(t)

	rows := sqlmock.NewRows([]string{"year", "month", "total_amount"}).
		AddRow(2023, 12, nil)

	mock.ExpectQuery(`EXTRACT\(MONTH FROM transaction_date\)`).WillReturnRows(rows)

	points, err := repo.MonthlyBalances()
	require.NoError(t, err)

	require.Len(t, points, 1)
	assert.True(t, points[0].Amount.IsZero())
	assert.Equal(t, models.BalanceStatusZero, points[0].Status)
}

func TestYearlyBalances(t *testing.T) {
	repo, mock := setupMockRepo(t)

	rows := sqlmock.NewRows([]string{"year", "total_amount"}).
		AddRow(2024, "1200.00").
		AddRow(2023, "-300.50")

	mock.ExpectQuery(`EXTRACT\(YEAR FROM transaction_date\)`).WillReturnRows(rows)

	points, err := repo.YearlyBalances()
	require.NoError(t, err)

	require.Len(t, points, 2)
	assert.Equal(t, 2024, points[0].Year)
	assert.Zero(t, points[0].Month)
	assert.Empty(t, points[0].MonthName)
	assert.Equal(t, models.BalanceStatusPositive, points[0].Status)
	assert.Equal(t, models.BalanceStatusNegative, points[1].Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestYearlyBalances_QueryError(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery(`EXTRACT\(YEAR FROM transaction_date\)`).
		WillReturnError(errors.New("connection reset"))

	points, err := repo.YearlyBalances()
	require.Error(t, err)
	assert.Nil(t, points)
	assert.Contains(t, err.Error(), "failed to get yearly balances")
}
