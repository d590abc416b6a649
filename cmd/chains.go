package cmd

import (
	"fmt"
	"strings"

	"github.com/DefiantLabs/explorer-tax-cli/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var chainsFile string

func init() {
	chainsCmd.Flags().StringVar(&chainsFile, "base.chains-file", "", "TOML file adding to or overriding the built-in chains")
	rootCmd.AddCommand(chainsCmd)
}

var chainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "Lists the chains whose explorer exports can be merged.",
	PreRun: func(cmd *cobra.Command, args []string) {
		bindFlags(cmd, viperConf)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		chains, err := config.LoadChains(chainsFile)
		if err != nil {
			return err
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("CHAIN", "NAME", "ASSET", "EXPLORER", "STAKING CONTRACTS")
		for _, key := range config.ChainNames(chains) {
			c := chains[key]
			t.Row(key, c.Name, c.Asset, c.Explorer, strings.Join(c.StakingAddresses, " "))
		}
		fmt.Println(t.Render())
		return nil
	},
}
