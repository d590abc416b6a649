package koinly

import "time"

const (
	ParserKey  = "koinly"
	TimeLayout = "2006-01-02 15:04:05 UTC"
)

type Parser struct {
	Rows []Row
}

type Row struct {
	Date             time.Time
	SentAmount       string
	SentCurrency     string
	ReceivedAmount   string
	ReceivedCurrency string
	FeeAmount        string
	FeeCurrency      string
	NetWorthAmount   string
	NetWorthCurrency string
	Label            Label
	Description      string
	TxHash           string
}

type Label int

const (
	None Label = iota
	Reward
	Cost
)

func (l Label) String() string {
	return [...]string{"", "reward", "cost"}[l]
}
