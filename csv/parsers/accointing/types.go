package accointing

import "time"

const (
	ParserKey  = "accointing"
	TimeLayout = "01/02/2006 15:04:05"
)

type Parser struct {
	Rows []Row
}

type Row struct {
	Date            time.Time
	InBuyAmount     string
	InBuyAsset      string
	OutSellAmount   string
	OutSellAsset    string
	FeeAmount       string
	FeeAsset        string
	Classification  Classification
	TransactionType Transaction
	OperationID     string
	Comments        string
}

type Transaction int

const (
	Deposit Transaction = iota
	Withdraw
	Order
)

func (at Transaction) String() string {
	return [...]string{"deposit", "withdraw", "order"}[at]
}

type Classification int

const (
	None Classification = iota
	Staked
	Payment
	Fee
)

func (ac Classification) String() string {
	// None is empty, the column is optional for Accointing
	return [...]string{"", "staked", "payment", "fee"}[ac]
}
