package merge

import (
	"github.com/DefiantLabs/explorer-tax-cli/ledger"
	"github.com/shopspring/decimal"
)

// Split divides total into n equal shares rounded down to ledger.QuantityScale
// digits. The last share takes whatever is left, so the shares always sum to total.
func Split(total decimal.Decimal, n int) []decimal.Decimal {
	if n <= 0 {
		return nil
	}

	shares := make([]decimal.Decimal, n)
	part, _ := total.QuoRem(decimal.NewFromInt(int64(n)), ledger.QuantityScale)
	allocated := decimal.Zero
	for i := 0; i < n-1; i++ {
		shares[i] = part
		allocated = allocated.Add(part)
	}
	shares[n-1] = total.Sub(allocated)
	return shares
}
