package merge

import (
	"fmt"
	"io"

	"github.com/DefiantLabs/explorer-tax-cli/ledger"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Tracer observes the merge as it works through each group.
type Tracer interface {
	GroupStart(g *Group)
	Classified(stage string, c Classification)
	StakingFound(row *ledger.Row)
	TradeSplit(kind TradeKind, quantity decimal.Decimal, asset string, shares []decimal.Decimal)
	FeeSplit(fee Fee, shares []decimal.Decimal)
	GroupMerged(g *Group, c Classification)
	GroupFailed(f Failure, err error)
}

// NopTracer ignores every event.
type NopTracer struct{}

func (NopTracer) GroupStart(*Group) {}
func (NopTracer) Classified(string, Classification) {}
func (NopTracer) StakingFound(*ledger.Row) {}
func (NopTracer) TradeSplit(TradeKind, decimal.Decimal, string, []decimal.Decimal) {}
func (NopTracer) FeeSplit(Fee, []decimal.Decimal) {}
func (NopTracer) GroupMerged(*Group, Classification) {}
func (NopTracer) GroupFailed(Failure, error) {}

// LogTracer sends merge events to a zerolog logger at debug level.
type LogTracer struct {
	Logger *zerolog.Logger
}

func (t LogTracer) GroupStart(g *Group) {
	t.Logger.Debug().Str("txhash", g.Txhash).Int("rows", len(g.Rows)).Msg("merge group")
}

func (t LogTracer) Classified(stage string, c Classification) {
	t.Logger.Debug().Str("stage", stage).Int("ins", len(c.Ins)).Int("outs", len(c.Outs)).
		Bool("fee", c.Fee != nil).Msg("merge classified")
}

func (t LogTracer) StakingFound(row *ledger.Row) {
	t.Logger.Debug().Str("txhash", row.Txhash()).Str("row", row.String()).Msg("merge staking")
}

func (t LogTracer) TradeSplit(kind TradeKind, quantity decimal.Decimal, asset string, shares []decimal.Decimal) {
	t.Logger.Debug().Str("kind", kind.String()).Str("quantity", quantity.String()).Str("asset", asset).
		Strs("shares", decimalStrings(shares)).Msg("merge trade")
}

func (t LogTracer) FeeSplit(fee Fee, shares []decimal.Decimal) {
	t.Logger.Debug().Str("quantity", fee.Quantity.String()).Str("asset", fee.Asset).
		Strs("shares", decimalStrings(shares)).Msg("merge fee split")
}

func (t LogTracer) GroupMerged(g *Group, _ Classification) {
	t.Logger.Debug().Str("txhash", g.Txhash).Msg("merge done")
}

func (t LogTracer) GroupFailed(f Failure, err error) {
	t.Logger.Warn().Err(err).Str("txhash", f.Txhash).Int("rows", len(f.Rows)).Msg("Merge failure")
}

var (
	singleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	groupStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
)

// ConsoleTracer dumps groups and records to w in colour, one line per event.
type ConsoleTracer struct {
	W io.Writer
}

func (t ConsoleTracer) printf(style lipgloss.Style, format string, args ...interface{}) {
	fmt.Fprintln(t.W, style.Render(fmt.Sprintf(format, args...)))
}

func (t ConsoleTracer) GroupStart(g *Group) {
	style := groupStyle
	if len(g.Rows) == 1 {
		style = singleStyle
	}
	for _, row := range g.Rows {
		t.printf(style, "merge: %-5s:%s", row.SourceID, row)
	}
}

func (t ConsoleTracer) Classified(stage string, c Classification) {
	t.printf(detailStyle, "merge:     %s:", stage)
	t.records(c)
}

func (t ConsoleTracer) records(c Classification) {
	if c.Fee != nil && c.Fee.Record != nil {
		dup := ""
		if c.contains(c.Fee) {
			dup = "*"
		}
		t.printf(detailStyle, "merge:   TR-F%s: %s", dup, c.Fee.Record)
	}
	for _, row := range c.Ins {
		if row.Record != nil {
			t.printf(detailStyle, "merge:   TR-I%s: %s", feeMark(row, c), row.Record)
		}
	}
	for _, row := range c.Outs {
		if row.Record != nil {
			t.printf(detailStyle, "merge:   TR-O%s: %s", feeMark(row, c), row.Record)
		}
	}
}

func feeMark(row *ledger.Row, c Classification) string {
	if row == c.Fee {
		return "*"
	}
	return ""
}

func (t ConsoleTracer) StakingFound(row *ledger.Row) {
	t.printf(detailStyle, "merge:     staking: %s", row.Record)
}

func (t ConsoleTracer) TradeSplit(kind TradeKind, quantity decimal.Decimal, asset string, shares []decimal.Decimal) {
	t.printf(detailStyle, "merge:     trade %s: quantity=%s asset=%s", kind, quantity, asset)
	for _, s := range shares {
		t.printf(detailStyle, "merge:       split_quantity=%s", s)
	}
}

func (t ConsoleTracer) FeeSplit(fee Fee, shares []decimal.Decimal) {
	t.printf(detailStyle, "merge:     split fees: fee_quantity=%s fee_asset=%s", fee.Quantity, fee.Asset)
	for _, s := range shares {
		t.printf(detailStyle, "merge:       split_fee_quantity=%s", s)
	}
}

func (t ConsoleTracer) GroupMerged(_ *Group, c Classification) {
	t.printf(detailStyle, "merge:     merged:")
	t.records(c)
}

func (t ConsoleTracer) GroupFailed(f Failure, err error) {
	fmt.Fprintf(t.W, "%s %s for Txhash: %s\n", warningStyle.Render("WARNING"), err, f.Txhash)
	for _, row := range f.Rows {
		t.printf(detailStyle, "row[%d] %s", row.LineNum, row)
	}
}

func decimalStrings(ds []decimal.Decimal) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.String()
	}
	return out
}

var (
	_ Tracer = NopTracer{}
	_ Tracer = LogTracer{}
	_ Tracer = ConsoleTracer{}
)
