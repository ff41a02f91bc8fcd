package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnprocessedRecord is a raw bank record as delivered by the upstream import.
// This system only ever reads these rows.
type UnprocessedRecord struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	RecordIDBank    string          `gorm:"type:varchar(100);not null;index" json:"record_id_bank"`
	TransactionDate time.Time       `gorm:"type:date;not null;index" json:"transaction_date"`
	CurrencyDate    time.Time       `gorm:"type:date" json:"currency_date"`
	Account         string          `gorm:"type:varchar(100)" json:"account"`
	Description     string          `gorm:"type:text" json:"description"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2)" json:"amount"`
	Currency        string          `gorm:"type:varchar(10)" json:"currency"`
}

// TableName returns the table name for UnprocessedRecord
func (r *UnprocessedRecord) TableName() string {
	return "unprocessed_records"
}
