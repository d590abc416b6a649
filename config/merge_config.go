package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/DefiantLabs/explorer-tax-cli/ledger"
	"github.com/DefiantLabs/explorer-tax-cli/util"
	"github.com/spf13/cobra"
)

type MergeConfig struct {
	Database database
	Log      log
	Base     mergeBase
}

type mergeBase struct {
	Chain            string
	ChainsFile       string   `mapstructure:"chains-file"`
	Txns             string
	Internal         string
	Tokens           string
	NFTs             string   `mapstructure:"nfts"`
	StakingAddresses []string `mapstructure:"staking-addresses"`
	BannedTokens     []string `mapstructure:"banned-tokens"`
	Format           string
	Output           string
	StartDate        string `mapstructure:"start-date"`
	EndDate          string `mapstructure:"end-date"`
	Persist          bool
	Trace            bool
}

func SetupMergeSpecificFlags(validParserKeys []string, conf *MergeConfig, cmd *cobra.Command) {
	cmd.Flags().StringVar(&conf.Base.Chain, "base.chain", "ETH", "chain the exports were downloaded from")
	cmd.Flags().StringVar(&conf.Base.ChainsFile, "base.chains-file", "", "TOML file adding to or overriding the built-in chains")
	cmd.Flags().StringVar(&conf.Base.Txns, "base.txns", "", "normal transactions export")
	cmd.Flags().StringVar(&conf.Base.Internal, "base.internal", "", "internal transactions export")
	cmd.Flags().StringVar(&conf.Base.Tokens, "base.tokens", "", "token transfers export")
	cmd.Flags().StringVar(&conf.Base.NFTs, "base.nfts", "", "NFT transfers export")
	cmd.Flags().StringSliceVar(&conf.Base.StakingAddresses, "base.staking-addresses", nil, "staking pool contract addresses, in addition to those of the chain")
	cmd.Flags().StringSliceVar(&conf.Base.BannedTokens, "base.banned-tokens", nil, "token symbols to ignore when reading token exports")
	cmd.Flags().StringVar(&conf.Base.Format, "base.format", "records", fmt.Sprintf("the format to output the merged rows in. One of %v", validParserKeys))
	cmd.Flags().StringVar(&conf.Base.Output, "base.output", "", "file to write the CSV to (stdout when unset)")
	cmd.Flags().StringVar(&conf.Base.StartDate, "base.start-date", "", "if set, rows before this date are not written. Format 2006-01-02:15:04:05 or 2006-01-02")
	cmd.Flags().StringVar(&conf.Base.EndDate, "base.end-date", "", "if set, rows on or after this date are not written. Format 2006-01-02:15:04:05 or 2006-01-02")
	cmd.Flags().BoolVar(&conf.Base.Persist, "base.persist", false, "store the merged records in the database")
	cmd.Flags().BoolVar(&conf.Base.Trace, "base.trace", false, "print every merge step to stderr")
}

// Files returns the export paths keyed by source category.
func (conf *MergeConfig) Files() map[string]string {
	return map[string]string{
		ledger.SourceTxns:     conf.Base.Txns,
		ledger.SourceInternal: conf.Base.Internal,
		ledger.SourceTokens:   conf.Base.Tokens,
		ledger.SourceNFTs:     conf.Base.NFTs,
	}
}

// Banned returns the banned token symbols as a set.
func (conf *MergeConfig) Banned() map[string]bool {
	return BannedSet(conf.Base.BannedTokens)
}

// BannedSet turns a list of token symbols into a set, skipping blanks.
func BannedSet(symbols []string) map[string]bool {
	banned := make(map[string]bool, len(symbols))
	for _, symbol := range symbols {
		if symbol = strings.TrimSpace(symbol); symbol != "" {
			banned[symbol] = true
		}
	}
	return banned
}

func (conf *MergeConfig) Validate(validParserKeys []string) error {
	if util.StrNotSet(conf.Base.Chain) {
		return errors.New("base.chain must be set")
	}

	found := false
	for _, path := range conf.Files() {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			return err
		}
		found = true
	}
	if !found {
		return errors.New("at least one of base.txns, base.internal, base.tokens or base.nfts must be set")
	}

	if conf.Base.ChainsFile != "" {
		if _, err := os.Stat(conf.Base.ChainsFile); err != nil {
			return err
		}
	}

	for _, addr := range conf.Base.StakingAddresses {
		if !util.IsAddress(addr) {
			return fmt.Errorf("invalid staking address %q", addr)
		}
	}

	if !isValidParserKey(validParserKeys, conf.Base.Format) {
		return fmt.Errorf("invalid format %q, expected one of %v", conf.Base.Format, validParserKeys)
	}

	if conf.Base.Persist {
		return validateDatabaseConf(conf.Database)
	}

	return nil
}

func isValidParserKey(validParserKeys []string, key string) bool {
	for _, validKey := range validParserKeys {
		if key == validKey {
			return true
		}
	}
	return false
}
