package parsers

import (
	"sort"
	"time"

	"github.com/DefiantLabs/explorer-tax-cli/ledger"
)

// SortAndFilterByDate orders rows by date and keeps those on or after
// startDate and before endDate. Either bound may be nil.
func SortAndFilterByDate[T DatedRow](rows []T, startDate, endDate *time.Time) []CsvRow {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].GetDate().Before(rows[j].GetDate())
	})

	csvRows := make([]CsvRow, 0, len(rows))
	for _, row := range rows {
		date := row.GetDate()
		if startDate != nil && date.Before(*startDate) {
			continue
		}
		if endDate != nil && !date.Before(*endDate) {
			continue
		}
		csvRows = append(csvRows, row)
	}
	return csvRows
}

// FeeOnly reports whether the record is a zero Spend kept only to carry a
// fee. Most tax tools want these as a plain outgoing fee.
func FeeOnly(tr *ledger.TransactionRecord) bool {
	return tr.Type == ledger.Spend && tr.SellQuantity.Decimal.IsZero() && tr.HasFee()
}

// Fee returns the record's fee columns, empty when it carries no fee.
func Fee(tr *ledger.TransactionRecord) (string, string) {
	if !tr.HasFee() {
		return "", ""
	}
	return ledger.FormatQuantity(tr.FeeQuantity), tr.FeeAsset
}

// OutputRows keeps the rows that still produce a record.
func OutputRows(rows []*ledger.Row) []*ledger.Row {
	var out []*ledger.Row
	for _, row := range rows {
		if row.Output() {
			out = append(out, row)
		}
	}
	return out
}
