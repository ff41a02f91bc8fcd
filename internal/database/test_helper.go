package database

import (
	"testing"
	"time"

	"records-dashboard/internal/config"
	"records-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestUnprocessedRecord(t *testing.T, db *DB, transactionDate time.Time) *models.UnprocessedRecord {
	t.Helper()

	record := &models.UnprocessedRecord{
		RecordIDBank:    gofakeit.UUID(),
		TransactionDate: transactionDate,
		CurrencyDate:    transactionDate,
		Account:         gofakeit.AchAccount(),
		Description:     gofakeit.Sentence(4),
		Amount:          decimal.NewFromFloat(gofakeit.Float64Range(-500, 500)).Round(2),
		Currency:        "EUR",
	}

	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test unprocessed record: %v", err)
	}

	return record
}

func CreateTestProcessedRecord(t *testing.T, db *DB, category *string, amount decimal.Decimal, transactionDate time.Time) *models.ProcessedRecord {
	t.Helper()

	record := &models.ProcessedRecord{
		RecordIDBank:    gofakeit.UUID(),
		TransactionDate: transactionDate,
		CurrencyDate:    transactionDate,
		Account:         gofakeit.AchAccount(),
		Description:     gofakeit.Sentence(4),
		Amount:          amount,
		Currency:        "EUR",
		Category:        category,
	}

	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test processed record: %v", err)
	}

	return record
}
