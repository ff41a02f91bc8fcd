package repositories

import (
	"testing"
	"time"

	"records-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type UnprocessedRecordRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo UnprocessedRecordRepositoryInterface
}

func (s *UnprocessedRecordRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&models.UnprocessedRecord{})
	require.NoError(s.T(), err)

	s.db = db
	s.repo = NewUnprocessedRecordRepository(db)
}

func (s *UnprocessedRecordRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func TestUnprocessedRecordRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UnprocessedRecordRepositoryTestSuite))
}

func (s *UnprocessedRecordRepositoryTestSuite) createRecord(date time.Time) *models.UnprocessedRecord {
	record := &models.UnprocessedRecord{
		RecordIDBank:    gofakeit.UUID(),
		TransactionDate: date,
		CurrencyDate:    date,
		Account:         gofakeit.AchAccount(),
		Description:     gofakeit.Sentence(4),
		Amount:          decimal.NewFromFloat(gofakeit.Float64Range(-500, 500)).Round(2),
		Currency:        "EUR",
	}
	require.NoError(s.T(), s.db.Create(record).Error)
	return record
}

func (s *UnprocessedRecordRepositoryTestSuite) TestList_NewestTransactionFirst() {
	oldest := s.createRecord(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	newest := s.createRecord(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	middle := s.createRecord(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	records, total, err := s.repo.List(0, 10)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), int64(3), total)
	require.Len(s.T(), records, 3)
	assert.Equal(s.T(), newest.RecordIDBank, records[0].RecordIDBank)
	assert.Equal(s.T(), middle.RecordIDBank, records[1].RecordIDBank)
	assert.Equal(s.T(), oldest.RecordIDBank, records[2].RecordIDBank)
}

func (s *UnprocessedRecordRepositoryTestSuite) TestList_Pagination() {
	for i := 0; i < 12; i++ {
		s.createRecord(time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC))
	}

	records, total, err := s.repo.List(10, 5)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), int64(12), total)
	assert.Len(s.T(), records, 2)
}

func (s *UnprocessedRecordRepositoryTestSuite) TestList_Empty() {
	records, total, err := s.repo.List(0, 10)
	require.NoError(s.T(), err)

	assert.Zero(s.T(), total)
	assert.Empty(s.T(), records)
}
