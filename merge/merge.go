// Package merge reduces the explorer rows that share a Txhash (native
// transfer, token transfers, internal transfers and the fee) into a minimal
// set of records: nets duplicate native movements, detects staking payouts,
// turns one-to-many buys and sells into trades and spreads the single fee
// over what is left.
package merge

import (
	"fmt"

	"github.com/DefiantLabs/explorer-tax-cli/ledger"
)

// Merger holds the inputs a merge pass needs besides the rows themselves.
type Merger struct {
	StakingAddresses StakingAddresses
	// Note derives the note copied onto merged records from the fee row's
	// columns. When nil the fee row's own record note is used.
	Note   func(fields map[string]string) string
	Tracer Tracer
}

// Result summarises a merge pass.
type Result struct {
	Groups       int
	MergedGroups int
	Failures     []Failure
}

// Merged reports whether any group was merged.
func (r Result) Merged() bool {
	return r.MergedGroups > 0
}

// Failed reports whether any group could not be merged.
func (r Result) Failed() bool {
	return len(r.Failures) > 0
}

// New returns a Merger for the given staking contracts with no tracing.
func New(stakingAddresses ...string) *Merger {
	return &Merger{
		StakingAddresses: NewStakingAddresses(stakingAddresses...),
		Tracer:           NopTracer{},
	}
}

// Run merges every group of rows across files in place. Groups that cannot be
// merged are annotated on their rows and reported in the result; malformed
// groups (several fees, ambiguous staking) abort the pass with an error.
func (m *Merger) Run(files map[string]*ledger.DataFile) (Result, error) {
	var result Result
	if m.Tracer == nil {
		m.Tracer = NopTracer{}
	}

	for _, g := range GroupRows(files) {
		result.Groups++
		m.Tracer.GroupStart(g)
		if len(g.Rows) == 1 {
			continue
		}

		failure, err := m.mergeGroup(g)
		if err != nil {
			return result, fmt.Errorf("merge %s: %w", g.Txhash, err)
		}
		if failure != nil {
			result.Failures = append(result.Failures, *failure)
			continue
		}
		result.MergedGroups++
	}

	return result, nil
}

func (m *Merger) mergeGroup(g *Group) (*Failure, error) {
	c, err := Classify(g.Rows)
	if err != nil {
		return nil, err
	}
	m.Tracer.Classified("classify", c)

	rows := Consolidate(g.Rows, NettableSources)
	c, err = Classify(rows)
	if err != nil {
		return nil, err
	}
	m.Tracer.Classified("consolidate", c)

	var fee *Fee
	var hasNote bool
	var note string
	var staked *ledger.Row
	if c.Fee != nil {
		fee = &Fee{
			Row:      c.Fee,
			Quantity: c.Fee.Record.FeeQuantity.Decimal,
			Asset:    c.Fee.Record.FeeAsset,
			Note:     m.noteFor(c.Fee),
		}
		note, hasNote = fee.Note, true

		c.Ins, staked, err = ExtractStaking(c.Ins, c.Fee, m.StakingAddresses)
		if err != nil {
			return nil, err
		}
	}

	// trades discard records, fees go to whatever survives on either side
	ins := append([]*ledger.Row(nil), c.Ins...)

	kind := KindOf(c.Ins, c.Outs)
	if kind == MultiMulti {
		failure := reportFailure(g, rows)
		m.Tracer.GroupFailed(failure, ErrUnsupportedMerge)
		return &failure, nil
	}
	if staked != nil {
		staked.Record.Type = ledger.Staking
		m.Tracer.StakingFound(staked)
	}

	switch kind {
	case MultiSell:
		in := c.Ins[0]
		quantity, asset := in.Record.BuyQuantity.Decimal, in.Record.BuyAsset
		shares := SynthesizeSells(in, c.Outs, note, hasNote)
		m.Tracer.TradeSplit(kind, quantity, asset, shares)
	case MultiBuy:
		out := c.Outs[0]
		quantity, asset := out.Record.SellQuantity.Decimal, out.Record.SellAsset
		shares := SynthesizeBuys(c.Ins, out, note, hasNote)
		m.Tracer.TradeSplit(kind, quantity, asset, shares)
	}

	if fee != nil {
		candidates := make([]*ledger.Row, 0, len(ins)+len(c.Outs))
		candidates = append(candidates, ins...)
		candidates = append(candidates, c.Outs...)
		shares := AllocateFee(candidates, *fee)
		m.Tracer.FeeSplit(*fee, shares)
	}

	m.Tracer.GroupMerged(g, Classification{Ins: ins, Outs: c.Outs, Fee: c.Fee})
	return nil, nil
}

func (m *Merger) noteFor(row *ledger.Row) string {
	if m.Note != nil {
		return m.Note(row.Fields)
	}
	return row.Record.Note
}
