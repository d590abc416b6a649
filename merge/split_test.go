package merge

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSumsExactly(t *testing.T) {
	tests := []struct {
		total string
		n     int
		first string
		last  string
	}{
		{"1", 1, "1", "1"},
		{"1", 2, "0.5", "0.5"},
		{"0.01", 2, "0.005", "0.005"},
		{"1", 3, "0.333333333333333333", "0.333333333333333334"},
		{"2", 3, "0.666666666666666666", "0.666666666666666668"},
		{"0.000000000000000001", 2, "0", "0.000000000000000001"},
		{"0", 4, "0", "0"},
		{"123456789.123456789123456789", 7, "17636684.160493827017636684", "17636684.160493827017636685"},
	}

	for _, tt := range tests {
		total := dec(tt.total)
		shares := Split(total, tt.n)
		require.Len(t, shares, tt.n)

		sum := decimal.Zero
		for _, s := range shares {
			sum = sum.Add(s)
		}
		assert.Truef(t, sum.Equal(total), "%s / %d: shares sum to %s", tt.total, tt.n, sum)
		assert.Equal(t, tt.first, shares[0].String(), "first share of %s / %d", tt.total, tt.n)
		assert.Equal(t, tt.last, shares[tt.n-1].String(), "last share of %s / %d", tt.total, tt.n)

		for i := 0; i < tt.n-1; i++ {
			assert.Truef(t, shares[i].Equal(shares[0]), "all but the last share should be equal")
		}
	}
}

func TestSplitNothing(t *testing.T) {
	assert.Nil(t, Split(dec("1"), 0))
}
