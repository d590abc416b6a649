package csv

import (
	"fmt"
	"time"

	"github.com/DefiantLabs/explorer-tax-cli/csv/parsers"
	"github.com/DefiantLabs/explorer-tax-cli/csv/parsers/accointing"
	"github.com/DefiantLabs/explorer-tax-cli/csv/parsers/cointracker"
	"github.com/DefiantLabs/explorer-tax-cli/csv/parsers/cryptotaxcalculator"
	"github.com/DefiantLabs/explorer-tax-cli/csv/parsers/koinly"
	"github.com/DefiantLabs/explorer-tax-cli/csv/parsers/records"
	"github.com/DefiantLabs/explorer-tax-cli/csv/parsers/taxbit"
	"github.com/DefiantLabs/explorer-tax-cli/ledger"
)

// Register new parsers by adding them to this list
var supportedParsers = []string{
	records.ParserKey,
	accointing.ParserKey,
	koinly.ParserKey,
	cointracker.ParserKey,
	taxbit.ParserKey,
	cryptotaxcalculator.ParserKey,
}

func init() {
	parsers.RegisterParsers(supportedParsers)
}

func GetParser(parserKey string) parsers.Parser {
	switch parserKey {
	case records.ParserKey:
		return &records.Parser{}
	case accointing.ParserKey:
		return &accointing.Parser{}
	case koinly.ParserKey:
		return &koinly.Parser{}
	case cointracker.ParserKey:
		return &cointracker.Parser{}
	case taxbit.ParserKey:
		return &taxbit.Parser{}
	case cryptotaxcalculator.ParserKey:
		return &cryptotaxcalculator.Parser{}
	}
	return nil
}

// ParseFiles renders the rows of the merged data files that still carry a
// record in the requested format, limited to the date range.
func ParseFiles(files map[string]*ledger.DataFile, parserKey string, startDate, endDate *time.Time) ([]parsers.CsvRow, []string, error) {
	parser := GetParser(parserKey)
	if parser == nil {
		return nil, nil, fmt.Errorf("unsupported format %q, expected one of %v", parserKey, parsers.GetParserKeys())
	}

	var rows []*ledger.Row
	for _, df := range ledger.OrderedFiles(files) {
		rows = append(rows, df.Rows...)
	}

	if err := parser.ProcessRows(rows); err != nil {
		return nil, nil, err
	}

	// Get rows once right at the end, also filter them by date
	return parser.GetRows(startDate, endDate), parser.GetHeaders(), nil
}
