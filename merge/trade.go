package merge

import (
	"github.com/DefiantLabs/explorer-tax-cli/ledger"
	"github.com/shopspring/decimal"
)

// TradeKind describes how a group's ins and outs can be turned into trades.
type TradeKind int

const (
	// NoTrade groups have no ins or no outs and pass through unchanged.
	NoTrade TradeKind = iota
	// MultiSell groups have one in and at least one out.
	MultiSell
	// MultiBuy groups have one out and several ins.
	MultiBuy
	// MultiMulti groups have several ins and several outs and cannot be merged.
	MultiMulti
)

func (k TradeKind) String() string {
	return [...]string{"none", "multi-sell", "multi-buy", "multi-multi"}[k]
}

// KindOf decides the trade shape of a classified group.
func KindOf(ins, outs []*ledger.Row) TradeKind {
	switch {
	case len(ins) == 1 && len(outs) > 0:
		return MultiSell
	case len(outs) == 1 && len(ins) > 0:
		return MultiBuy
	case len(ins) > 1 && len(outs) > 1:
		return MultiMulti
	}
	return NoTrade
}

// SynthesizeSells turns every out into a Trade buying an equal share of the
// single in's quantity. The in's record is discarded afterwards.
func SynthesizeSells(in *ledger.Row, outs []*ledger.Row, note string, hasNote bool) []decimal.Decimal {
	quantity := in.Record.BuyQuantity.Decimal
	asset := in.Record.BuyAsset

	shares := Split(quantity, len(outs))
	for i, out := range outs {
		out.Record.Type = ledger.Trade
		out.Record.BuyQuantity = ledger.Quantity(shares[i])
		out.Record.BuyAsset = asset
		if hasNote {
			out.Record.Note = note
		}
	}

	in.Record = nil
	return shares
}

// SynthesizeBuys turns every in into a Trade selling an equal share of the
// single out's quantity. The out's record is discarded afterwards.
func SynthesizeBuys(ins []*ledger.Row, out *ledger.Row, note string, hasNote bool) []decimal.Decimal {
	quantity := out.Record.SellQuantity.Decimal
	asset := out.Record.SellAsset

	shares := Split(quantity, len(ins))
	for i, in := range ins {
		in.Record.Type = ledger.Trade
		in.Record.SellQuantity = ledger.Quantity(shares[i])
		in.Record.SellAsset = asset
		if hasNote {
			in.Record.Note = note
		}
	}

	out.Record = nil
	return shares
}
