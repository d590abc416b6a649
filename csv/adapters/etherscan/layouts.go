package etherscan

import (
	"fmt"
	"strings"

	"github.com/DefiantLabs/explorer-tax-cli/ledger"
)

// Chain describes one Etherscan-like explorer and its native asset.
type Chain struct {
	Name     string `toml:"name" mapstructure:"name"`
	Asset    string `toml:"asset" mapstructure:"asset"`
	Explorer string `toml:"explorer" mapstructure:"explorer"`
	// PriceLabel is the suffix of the "Historical $Price/<label>" column.
	PriceLabel string `toml:"price-label" mapstructure:"price-label"`
	// Reduced explorers export transactions without contract, price or
	// status columns and have no internal transactions export.
	Reduced bool `toml:"reduced" mapstructure:"reduced"`
	// StakingAddresses are the chain's well-known staking pool contracts.
	StakingAddresses []string `toml:"staking-addresses" mapstructure:"staking-addresses"`
}

// Layout is a known export header and the handler for its rows.
type Layout struct {
	Name    string
	Source  string
	Asset   string
	Columns []string
	Handler Handler
}

// Matches reports whether header is this layout. An empty layout column
// matches any header cell.
func (l Layout) Matches(header []string) bool {
	header = trimTrailingEmpty(header)
	if len(header) != len(l.Columns) {
		return false
	}
	for i, col := range l.Columns {
		if col != "" && col != strings.TrimSpace(header[i]) {
			return false
		}
	}
	return true
}

func trimTrailingEmpty(cells []string) []string {
	for len(cells) > 0 && strings.TrimSpace(cells[len(cells)-1]) == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

func valueIn(asset string) string  { return fmt.Sprintf("Value_IN(%s)", asset) }
func valueOut(asset string) string { return fmt.Sprintf("Value_OUT(%s)", asset) }
func txnFee(asset string) string   { return fmt.Sprintf("TxnFee(%s)", asset) }

// TxnsColumns is the header of a chain's normal transactions export.
func TxnsColumns(c Chain) []string {
	if c.Reduced {
		return []string{"Txhash", "Blockno", "UnixTimestamp", "DateTime", "From", "To",
			valueIn(c.Asset), valueOut(c.Asset), "", txnFee(c.Asset), "TxnFee(USD)", "Method"}
	}
	return []string{"Txhash", "Blockno", "UnixTimestamp", "DateTime", "From", "To", "ContractAddress",
		valueIn(c.Asset), valueOut(c.Asset), "", txnFee(c.Asset), "TxnFee(USD)",
		"Historical $Price/" + c.PriceLabel, "Status", "ErrCode", "Method"}
}

// InternalColumns is the header of a chain's internal transactions export.
func InternalColumns(c Chain) []string {
	return []string{"Txhash", "Blockno", "UnixTimestamp", "DateTime", "ParentTxFrom", "ParentTxTo",
		fmt.Sprintf("ParentTx%s_Value", c.Asset), "From", "TxTo", "ContractAddress",
		valueIn(c.Asset), valueOut(c.Asset), "", "Historical $Price/" + c.PriceLabel,
		"Status", "ErrCode", "Type"}
}

var (
	tokenColumns = []string{"Txhash", "UnixTimestamp", "DateTime", "From", "To", "TokenValue", "",
		"ContractAddress", "TokenName", "TokenSymbol"}
	tokenColumnsBlockno = []string{"Txhash", "Blockno", "UnixTimestamp", "DateTime", "From", "To",
		"TokenValue", "", "ContractAddress", "TokenName", "TokenSymbol"}
	nftColumns = []string{"Txhash", "UnixTimestamp", "DateTime", "From", "To", "ContractAddress",
		"TokenId", "TokenName", "TokenSymbol"}
	nftColumnsBlockno = []string{"Txhash", "Blockno", "UnixTimestamp", "DateTime", "From", "To",
		"ContractAddress", "TokenId", "TokenName", "TokenSymbol"}
)

// Layouts returns every layout known for chain: its transactions and
// internal transactions exports plus the chain independent token and NFT
// exports.
func Layouts(c Chain) []Layout {
	layouts := []Layout{
		{
			Name:    fmt.Sprintf("%s (%s Transactions)", c.Explorer, c.Name),
			Source:  ledger.SourceTxns,
			Asset:   c.Asset,
			Columns: TxnsColumns(c),
			Handler: ParseTxns,
		},
	}
	if !c.Reduced {
		layouts = append(layouts, Layout{
			Name:    fmt.Sprintf("%s (%s Internal Transactions)", c.Explorer, c.Name),
			Source:  ledger.SourceInternal,
			Asset:   c.Asset,
			Columns: InternalColumns(c),
			Handler: ParseInternal,
		})
	}

	return append(layouts,
		Layout{Name: "Etherscan Like (ERC-20 Tokens)", Source: ledger.SourceTokens, Columns: tokenColumns, Handler: ParseTokens},
		Layout{Name: "Etherscan Like (ERC-20 Tokens)", Source: ledger.SourceTokens, Columns: tokenColumnsBlockno, Handler: ParseTokens},
		Layout{Name: "Etherscan Like (ERC-721 NFTs)", Source: ledger.SourceNFTs, Columns: nftColumns, Handler: ParseNFTs},
		Layout{Name: "Etherscan Like (ERC-721 NFTs)", Source: ledger.SourceNFTs, Columns: nftColumnsBlockno, Handler: ParseNFTs},
	)
}

// Detect returns the layout of source whose columns match header.
func Detect(layouts []Layout, source string, header []string) (Layout, bool) {
	for _, l := range layouts {
		if l.Source == source && l.Matches(header) {
			return l, true
		}
	}
	return Layout{}, false
}
