package config

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

type ServeConfig struct {
	Database database
	Log      log
	Base     serveBase
}

type serveBase struct {
	Listen        string
	ChainsFile    string        `mapstructure:"chains-file"`
	Persist       bool
	Retention     time.Duration `mapstructure:"retention"`
	PruneInterval time.Duration `mapstructure:"prune-interval"`
}

func SetupServeSpecificFlags(conf *ServeConfig, cmd *cobra.Command) {
	cmd.Flags().StringVar(&conf.Base.Listen, "base.listen", ":8080", "address the HTTP server listens on")
	cmd.Flags().StringVar(&conf.Base.ChainsFile, "base.chains-file", "", "TOML file adding to or overriding the built-in chains")
	cmd.Flags().BoolVar(&conf.Base.Persist, "base.persist", false, "store every merge run in the database")
	cmd.Flags().DurationVar(&conf.Base.Retention, "base.retention", 0, "delete stored merge runs older than this (0 keeps them forever)")
	cmd.Flags().DurationVar(&conf.Base.PruneInterval, "base.prune-interval", time.Hour, "how often old merge runs are deleted")
}

func (conf *ServeConfig) Validate() error {
	if conf.Base.Listen == "" {
		return errors.New("base.listen must be set")
	}
	if conf.Base.Retention < 0 {
		return errors.New("base.retention must not be negative")
	}
	if !conf.Base.Persist {
		return nil
	}
	if conf.Base.Retention > 0 && conf.Base.PruneInterval <= 0 {
		return errors.New("base.prune-interval must be positive when base.retention is set")
	}
	return validateDatabaseConf(conf.Database)
}
