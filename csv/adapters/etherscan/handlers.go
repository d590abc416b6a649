package etherscan

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DefiantLabs/explorer-tax-cli/ledger"
	"github.com/DefiantLabs/explorer-tax-cli/util"
	"github.com/shopspring/decimal"
)

// Options carries what a row handler needs besides the row itself.
type Options struct {
	// Asset is the chain's native asset, taken from the detected layout.
	Asset string
	// Filename of the export; token and NFT exports embed the wallet address in it.
	Filename string
	// Banned token symbols and "<name> #<id>" NFTs that are skipped.
	Banned map[string]bool
}

// Handler turns one export row into a record. A nil record without an
// error means the row is skipped.
type Handler func(fields map[string]string, opts Options) (*ledger.TransactionRecord, error)

func parseTimestamp(fields map[string]string) (time.Time, error) {
	secs, err := strconv.ParseInt(strings.TrimSpace(fields["UnixTimestamp"]), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid UnixTimestamp %q: %w", fields["UnixTimestamp"], err)
	}
	return time.Unix(secs, 0).UTC(), nil
}

func quantity(fields map[string]string, column string) (decimal.Decimal, error) {
	q, err := ledger.QuantityFromString(fields[column])
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", column, err)
	}
	return q.Decimal, nil
}

func failed(fields map[string]string) bool {
	return fields["Status"] != ""
}

// Note is the note for a transactions row: the method, marked as a failure
// for failed transactions, otherwise the private note.
func Note(fields map[string]string) string {
	if failed(fields) {
		if fields["Method"] != "" {
			return fmt.Sprintf("Failure (%s)", fields["Method"])
		}
		return "Failure"
	}
	if fields["Method"] != "" {
		return fields["Method"]
	}
	return fields["PrivateNote"]
}

// ParseTxns handles normal transactions. Failed transactions move no value
// and only report their fee.
func ParseTxns(fields map[string]string, opts Options) (*ledger.TransactionRecord, error) {
	ts, err := parseTimestamp(fields)
	if err != nil {
		return nil, err
	}

	in, err := quantity(fields, valueIn(opts.Asset))
	if err != nil {
		return nil, err
	}
	out, err := quantity(fields, valueOut(opts.Asset))
	if err != nil {
		return nil, err
	}
	if failed(fields) {
		out = decimal.Zero
	}

	if in.IsPositive() {
		if failed(fields) {
			return nil, nil
		}
		return &ledger.TransactionRecord{
			Type:        ledger.Deposit,
			Timestamp:   ts,
			BuyQuantity: ledger.Quantity(in),
			BuyAsset:    opts.Asset,
			Wallet:      ledger.ShortWallet(fields["To"]),
			Note:        Note(fields),
		}, nil
	}

	fee, err := ledger.QuantityFromString(fields[txnFee(opts.Asset)])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", txnFee(opts.Asset), err)
	}

	txType := ledger.Spend
	if out.IsPositive() {
		txType = ledger.Withdrawal
	}
	return &ledger.TransactionRecord{
		Type:         txType,
		Timestamp:    ts,
		SellQuantity: ledger.Quantity(out),
		SellAsset:    opts.Asset,
		FeeQuantity:  fee,
		FeeAsset:     opts.Asset,
		Wallet:       ledger.ShortWallet(fields["From"]),
		Note:         Note(fields),
	}, nil
}

// ParseInternal handles internal transactions. Rows with a non-zero status
// failed and are skipped.
func ParseInternal(fields map[string]string, opts Options) (*ledger.TransactionRecord, error) {
	if status := fields["Status"]; status != "" && status != "0" {
		return nil, nil
	}

	ts, err := parseTimestamp(fields)
	if err != nil {
		return nil, err
	}
	in, err := quantity(fields, valueIn(opts.Asset))
	if err != nil {
		return nil, err
	}
	out, err := quantity(fields, valueOut(opts.Asset))
	if err != nil {
		return nil, err
	}

	switch {
	case in.IsPositive():
		return &ledger.TransactionRecord{
			Type:        ledger.Deposit,
			Timestamp:   ts,
			BuyQuantity: ledger.Quantity(in),
			BuyAsset:    opts.Asset,
			Wallet:      ledger.ShortWallet(fields["TxTo"]),
		}, nil
	case out.IsPositive():
		return &ledger.TransactionRecord{
			Type:         ledger.Withdrawal,
			Timestamp:    ts,
			SellQuantity: ledger.Quantity(out),
			SellAsset:    opts.Asset,
			Wallet:       ledger.ShortWallet(fields["From"]),
		}, nil
	}
	return nil, nil
}

// TokenAsset names a token. Liquidity pool tokens share symbols across
// pools so they are qualified with the start of their contract address.
func TokenAsset(symbol, contract string) string {
	if strings.HasSuffix(symbol, "-LP") {
		if len(contract) > ledger.WalletAddrLen {
			contract = contract[:ledger.WalletAddrLen]
		}
		return symbol + "-" + contract
	}
	return symbol
}

// NFTAsset names a single NFT.
func NFTAsset(name, id string) string {
	return fmt.Sprintf("%s #%s", name, id)
}

// transfer decides the direction of a token or NFT transfer from the wallet
// address embedded in the export's file name.
func transfer(fields map[string]string, opts Options, ts time.Time, q decimal.Decimal, asset string) (*ledger.TransactionRecord, error) {
	filename := strings.ToLower(opts.Filename)
	inFilename := func(address string) bool {
		return !util.StrNotSet(address) && strings.Contains(filename, strings.ToLower(strings.TrimSpace(address)))
	}

	switch {
	case inFilename(fields["To"]):
		return &ledger.TransactionRecord{
			Type:        ledger.Deposit,
			Timestamp:   ts,
			BuyQuantity: ledger.Quantity(q),
			BuyAsset:    asset,
			Wallet:      ledger.ShortWallet(fields["To"]),
		}, nil
	case inFilename(fields["From"]):
		return &ledger.TransactionRecord{
			Type:         ledger.Withdrawal,
			Timestamp:    ts,
			SellQuantity: ledger.Quantity(q),
			SellAsset:    asset,
			Wallet:       ledger.ShortWallet(fields["From"]),
		}, nil
	}
	return nil, &ledger.DataFilenameError{Filename: opts.Filename, Want: "Ethereum address"}
}

// ParseTokens handles ERC-20 token transfers.
func ParseTokens(fields map[string]string, opts Options) (*ledger.TransactionRecord, error) {
	if opts.Banned[fields["TokenSymbol"]] {
		return nil, nil
	}

	ts, err := parseTimestamp(fields)
	if err != nil {
		return nil, err
	}
	q, err := quantity(fields, "TokenValue")
	if err != nil {
		return nil, err
	}

	return transfer(fields, opts, ts, q, TokenAsset(fields["TokenSymbol"], fields["ContractAddress"]))
}

// ParseNFTs handles ERC-721 transfers, one token per row.
func ParseNFTs(fields map[string]string, opts Options) (*ledger.TransactionRecord, error) {
	asset := NFTAsset(fields["TokenName"], fields["TokenId"])
	if opts.Banned[asset] {
		return nil, nil
	}

	ts, err := parseTimestamp(fields)
	if err != nil {
		return nil, err
	}

	return transfer(fields, opts, ts, decimal.NewFromInt(1), asset)
}
