package merge

import (
	"fmt"

	"github.com/DefiantLabs/explorer-tax-cli/ledger"
	"github.com/DefiantLabs/explorer-tax-cli/util"
)

type methodAction int

const (
	transferMethod methodAction = iota
	stakingMethod
)

// methodActions maps explorer method labels to how the merge treats them.
// Unlisted methods are ordinary transfers.
var methodActions = map[string]methodAction{
	"Enter Staking": stakingMethod,
	"Leave Staking": stakingMethod,
	"Deposit":       stakingMethod,
	"Withdraw":      stakingMethod,
}

func actionForMethod(method string) methodAction {
	if action, ok := methodActions[method]; ok {
		return action
	}
	return transferMethod
}

// StakingAddresses is a set of known staking contract addresses.
type StakingAddresses map[string]struct{}

// NewStakingAddresses builds the set, normalising each address.
func NewStakingAddresses(addresses ...string) StakingAddresses {
	set := make(StakingAddresses, len(addresses))
	for _, a := range addresses {
		set[util.NormalizeAddress(a)] = struct{}{}
	}
	return set
}

// Contains reports whether address is a known staking contract.
func (s StakingAddresses) Contains(address string) bool {
	_, ok := s[util.NormalizeAddress(address)]
	return ok
}

// ExtractStaking finds the inbound row paid out by a staking contract and
// returns ins without it. The caller retypes it to Staking once the group is
// known to merge. It only applies when the fee row's
// method is a staking lifecycle action. A self-transfer back to the contract
// called by the fee row is not staking. More than one candidate is
// ErrAmbiguousStaking.
func ExtractStaking(ins []*ledger.Row, fee *ledger.Row, addresses StakingAddresses) ([]*ledger.Row, *ledger.Row, error) {
	if fee == nil || len(ins) == 0 {
		return ins, nil, nil
	}
	if actionForMethod(fee.Field("Method")) != stakingMethod {
		return ins, nil, nil
	}

	var candidates []*ledger.Row
	for _, row := range ins {
		if !addresses.Contains(row.Field("ContractAddress")) {
			continue
		}
		if util.SameAddress(row.Field("From"), fee.Field("To")) {
			continue
		}
		candidates = append(candidates, row)
	}

	switch len(candidates) {
	case 0:
		return ins, nil, nil
	case 1:
	default:
		return ins, nil, fmt.Errorf("%w: %d candidates", ErrAmbiguousStaking, len(candidates))
	}

	staked := candidates[0]
	remaining := make([]*ledger.Row, 0, len(ins)-1)
	for _, row := range ins {
		if row != staked {
			remaining = append(remaining, row)
		}
	}
	return remaining, staked, nil
}
