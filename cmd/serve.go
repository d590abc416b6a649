package cmd

import (
	"strings"

	"github.com/DefiantLabs/explorer-tax-cli/client"
	"github.com/DefiantLabs/explorer-tax-cli/config"
	dbTypes "github.com/DefiantLabs/explorer-tax-cli/db"
	"github.com/DefiantLabs/explorer-tax-cli/tasks"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var (
	serveConfig config.ServeConfig
	server      client.Server
)

func init() {
	config.SetupLogFlags(&serveConfig.Log, serveCmd)
	config.SetupDatabaseFlags(&serveConfig.Database, serveCmd)
	config.SetupServeSpecificFlags(&serveConfig, serveCmd)
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves merges over HTTP.",
	Long: `Starts an HTTP server that accepts explorer exports as JSON on POST /merge.csv and answers
	with the merged records as CSV in the requested format.`,
	PreRunE: setupServe,
	RunE: func(cmd *cobra.Command, args []string) error {
		if server.DB != nil && serveConfig.Base.Retention > 0 {
			scheduler, err := tasks.SchedulePruning(server.DB, serveConfig.Base.Retention, serveConfig.Base.PruneInterval)
			if err != nil {
				config.Log.Error("Error scheduling merge run pruning", err)
				return err
			}
			defer scheduler.Stop()
		}

		gin.SetMode(gin.ReleaseMode)
		r := client.NewRouter(&server)

		config.Log.Infof("Listening on %s", serveConfig.Base.Listen)
		err := r.Run(serveConfig.Base.Listen)
		if err != nil {
			config.Log.Error("Error starting server", err)
		}
		return err
	},
}

func setupServe(cmd *cobra.Command, args []string) error {
	bindFlags(cmd, viperConf)
	err := serveConfig.Validate()
	if err != nil {
		return err
	}

	// Logger
	logLevel := serveConfig.Log.Level
	logPath := serveConfig.Log.Path
	prettyLogging := serveConfig.Log.Pretty
	config.DoConfigureLogger(logPath, logLevel, prettyLogging)

	server.Chains, err = config.LoadChains(serveConfig.Base.ChainsFile)
	if err != nil {
		return err
	}

	if !serveConfig.Base.Persist {
		return nil
	}

	db, err := dbTypes.PostgresDbConnect(serveConfig.Database.Host, serveConfig.Database.Port, serveConfig.Database.Database,
		serveConfig.Database.User, serveConfig.Database.Password, strings.ToLower(serveConfig.Database.LogLevel))
	if err != nil {
		config.Log.Error("Could not establish connection to the database", err)
		return err
	}

	// run database migrations at every runtime
	err = dbTypes.MigrateModels(db)
	if err != nil {
		config.Log.Error("Error running DB migrations", err)
		return err
	}

	server.DB = db
	return nil
}
