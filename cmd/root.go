package cmd

import (
	"fmt"
	"os"

	"github.com/DefiantLabs/explorer-tax-cli/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile   string       // config file location to load
	viperConf = viper.New() // stores the config file values; bindFlags copies them onto unset flags
	rootCmd   = &cobra.Command{
		Use:   "explorer-tax-cli",
		Short: "A CLI tool for merging blockchain explorer exports into tax records",
		Long: `Explorer Tax CLI reads the CSV exports of Etherscan-like block explorers (transactions,
		internal transactions, token and NFT transfers), merges the rows belonging to the same
		transaction into trades, staking rewards and spends, and writes them out for tax tools.`,
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// initConfig on initialize of cobra guarantees config struct will be set before all subcommands are executed
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.explorer-tax-cli/config.toml)")
}

func initConfig() {
	if cfgFile != "" {
		viperConf.SetConfigFile(cfgFile)
		viperConf.SetConfigType("toml")
	} else {
		// Check in current working dir
		pwd, err := os.Getwd()
		if err != nil {
			config.Log.Fatal("Could not determine current working dir", err)
		}
		if _, err := os.Stat(fmt.Sprintf("%v/config.toml", pwd)); err == nil {
			cfgFile = pwd
		} else {
			// file not in current working dir. Check home dir instead
			home, err := os.UserHomeDir()
			if err != nil {
				config.Log.Fatal("Failed to find user home dir", err)
			}
			cfgFile = fmt.Sprintf("%s/.explorer-tax-cli", home)
		}
		viperConf.AddConfigPath(cfgFile)
		viperConf.SetConfigType("toml")
		viperConf.SetConfigName("config")
	}

	err := viperConf.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return
		}
		config.Log.Fatal("Failed to read config file", err)
	}

	config.Log.Infof("CFG successfully read from: %s", viperConf.ConfigFileUsed())

	ignoredKeys := config.CheckSuperfluousConfigKeys(viperConf.AllKeys())
	if len(ignoredKeys) > 0 {
		config.Log.Warnf("Warning, the following invalid keys will be ignored: %v", ignoredKeys)
	}
}

// bindFlags sets every flag the user did not pass on the command line to the
// config file value of the same key, if there is one.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}

		var err error
		if sliceValue, ok := f.Value.(pflag.SliceValue); ok {
			err = sliceValue.Replace(v.GetStringSlice(f.Name))
		} else {
			err = cmd.Flags().Set(f.Name, v.GetString(f.Name))
		}
		if err != nil {
			config.Log.Fatal(fmt.Sprintf("Invalid value for %s in config file", f.Name), err)
		}
	})
}
