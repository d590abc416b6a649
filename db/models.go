package db

import (
	"time"

	"github.com/shopspring/decimal"
)

// MergeRun is one invocation of the merge over a set of explorer exports.
type MergeRun struct {
	ID           uint
	CreatedAt    time.Time
	Chain        string `gorm:"index"`
	Format       string
	Groups       int
	MergedGroups int
	FailedGroups int
	Records      []LedgerRecord
}

// LedgerRecord is a transaction record left after the merge, with the export
// line it came from.
type LedgerRecord struct {
	ID           uint
	MergeRunID   uint `gorm:"index"`
	MergeRun     MergeRun `json:"-"`
	Source       string
	LineNum      int
	Txhash       string `gorm:"index"`
	Type         string
	Timestamp    time.Time
	BuyQuantity  decimal.NullDecimal `gorm:"type:decimal(78,18)"`
	BuyAsset     string
	SellQuantity decimal.NullDecimal `gorm:"type:decimal(78,18)"`
	SellAsset    string
	FeeQuantity  decimal.NullDecimal `gorm:"type:decimal(78,18)"`
	FeeAsset     string
	Wallet       string
	Note         string
}
