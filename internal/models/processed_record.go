package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcessedRecord is a categorized bank record. Category is the only mutable
// field; rows may also be bulk-deleted by bank record id.
type ProcessedRecord struct {
	RecordIDBank    string          `gorm:"type:varchar(100);primaryKey" json:"record_id_bank"`
	TransactionDate time.Time       `gorm:"type:date;not null;index" json:"transaction_date"`
	CurrencyDate    time.Time       `gorm:"type:date" json:"currency_date"`
	Account         string          `gorm:"type:varchar(100)" json:"account"`
	Description     string          `gorm:"type:text" json:"description"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2)" json:"amount"`
	Currency        string          `gorm:"type:varchar(10)" json:"currency"`
	Category        *string         `gorm:"type:varchar(100);index" json:"category,omitempty"`
}

// TableName returns the table name for ProcessedRecord
func (r *ProcessedRecord) TableName() string {
	return "processed_records"
}

// UncategorizedLabel is substituted for a NULL category in reporting output.
const UncategorizedLabel = "Uncategorized"

// CategoryOrUncategorized returns the record's category, or the
// Uncategorized label when none is assigned. Value receiver so templates can
// call it on ranged elements.
func (r ProcessedRecord) CategoryOrUncategorized() string {
	if r.Category == nil {
		return UncategorizedLabel
	}
	return *r.Category
}
