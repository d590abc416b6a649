package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/DefiantLabs/explorer-tax-cli/csv/adapters/etherscan"
	"github.com/imdario/mergo"
)

const pancakeSwapMainStaking = "0x73feaa1ee314f8c655e354234017be2193c9e24e"

// DefaultChains are the Etherscan-like explorers known without a chains file,
// keyed by the name used on the command line.
func DefaultChains() map[string]etherscan.Chain {
	return map[string]etherscan.Chain{
		"ETH": {Name: "ETH", Asset: "ETH", Explorer: "Etherscan", PriceLabel: "Eth"},
		"BSC": {
			Name: "BSC", Asset: "BNB", Explorer: "BscScan", PriceLabel: "BNB",
			StakingAddresses: []string{pancakeSwapMainStaking},
		},
		"ARBITRUM":  {Name: "Arbitrum", Asset: "ETH", Explorer: "ArbiScan", PriceLabel: "ETH"},
		"AVAX":      {Name: "Avax", Asset: "AVAX", Explorer: "SnowTrace", PriceLabel: "AVAX"},
		"CRONOS":    {Name: "Cronos", Asset: "CRO", Explorer: "CronoScan", PriceLabel: "CRO"},
		"FTM":       {Name: "FTM", Asset: "FTM", Explorer: "FTMScan", PriceLabel: "FTM"},
		"GNOSIS":    {Name: "Gnosis", Asset: "xDAI", Explorer: "GnosisScan", PriceLabel: "xDAI"},
		"HARMONY":   {Name: "Harmony", Asset: "ONE", Explorer: "Harmony", Reduced: true},
		"MOONRIVER": {Name: "Moonriver", Asset: "MOVR", Explorer: "MoonScan", PriceLabel: "MOVR"},
		"POLYGON":   {Name: "Polygon", Asset: "MATIC", Explorer: "PolygonScan", PriceLabel: "MATIC"},
	}
}

type chainsFile struct {
	Chains map[string]etherscan.Chain `toml:"chains"`
}

// LoadChains returns the default chains with the chains file laid over them.
// Fields left out of a chain in the file keep their default value.
func LoadChains(path string) (map[string]etherscan.Chain, error) {
	chains := DefaultChains()
	if path == "" {
		return chains, nil
	}

	var file chainsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to read chains file %s: %w", path, err)
	}

	return MergeChains(chains, file.Chains)
}

// MergeChains lays overrides over defaults, keyed case-insensitively.
func MergeChains(defaults, overrides map[string]etherscan.Chain) (map[string]etherscan.Chain, error) {
	merged := make(map[string]etherscan.Chain, len(defaults)+len(overrides))
	for key, chain := range defaults {
		merged[strings.ToUpper(key)] = chain
	}

	for key, override := range overrides {
		key = strings.ToUpper(key)
		if def, ok := merged[key]; ok {
			if err := mergo.Merge(&override, def); err != nil {
				return nil, fmt.Errorf("chain %s merge failed: %w", key, err)
			}
		}
		if err := validateChain(key, override); err != nil {
			return nil, err
		}
		merged[key] = override
	}
	return merged, nil
}

func validateChain(key string, c etherscan.Chain) error {
	if c.Asset == "" {
		return fmt.Errorf("chain %s: asset must be set", key)
	}
	if !c.Reduced && c.PriceLabel == "" {
		return fmt.Errorf("chain %s: price-label must be set", key)
	}
	return nil
}

// GetChain looks up a chain by name, ignoring case.
func GetChain(chains map[string]etherscan.Chain, name string) (etherscan.Chain, error) {
	if c, ok := chains[strings.ToUpper(name)]; ok {
		return c, nil
	}
	return etherscan.Chain{}, fmt.Errorf("unknown chain %q, expected one of %v", name, ChainNames(chains))
}

// ChainNames returns the chain keys, sorted.
func ChainNames(chains map[string]etherscan.Chain) []string {
	names := make([]string, 0, len(chains))
	for name := range chains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
