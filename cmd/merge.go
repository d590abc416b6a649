package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/DefiantLabs/explorer-tax-cli/config"
	"github.com/DefiantLabs/explorer-tax-cli/csv"
	csvParsers "github.com/DefiantLabs/explorer-tax-cli/csv/parsers"
	dbTypes "github.com/DefiantLabs/explorer-tax-cli/db"
	"github.com/DefiantLabs/explorer-tax-cli/ledger"
	"github.com/DefiantLabs/explorer-tax-cli/merge"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	mergeConfig       config.MergeConfig
	mergeDbConnection *gorm.DB
	validParserKeys   = csvParsers.GetParserKeys()
)

func init() {
	config.SetupLogFlags(&mergeConfig.Log, mergeCmd)
	config.SetupDatabaseFlags(&mergeConfig.Database, mergeCmd)
	config.SetupMergeSpecificFlags(validParserKeys, &mergeConfig, mergeCmd)
	rootCmd.AddCommand(mergeCmd)
}

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merges explorer exports for one wallet into tax records.",
	Long: `Merges the CSV exports an Etherscan-like explorer produces for one wallet. Rows sharing
	a transaction hash are combined into trades, staking rewards and spends, the transaction fee is
	spread over the resulting records, and the records are written as CSV in the chosen format.`,
	PreRunE: setupMerge,
	RunE:    runMerge,
}

func setupMerge(cmd *cobra.Command, args []string) error {
	if len(validParserKeys) == 0 {
		return errors.New("error during setup, no CSV parsers found")
	}

	bindFlags(cmd, viperConf)
	err := mergeConfig.Validate(validParserKeys)
	if err != nil {
		return err
	}

	// Logger
	logLevel := mergeConfig.Log.Level
	logPath := mergeConfig.Log.Path
	prettyLogging := mergeConfig.Log.Pretty
	config.DoConfigureLogger(logPath, logLevel, prettyLogging)

	if !mergeConfig.Base.Persist {
		return nil
	}

	db, err := dbTypes.PostgresDbConnect(mergeConfig.Database.Host, mergeConfig.Database.Port, mergeConfig.Database.Database,
		mergeConfig.Database.User, mergeConfig.Database.Password, strings.ToLower(mergeConfig.Database.LogLevel))
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

	mergeDbConnection = db
	return nil
}

func runMerge(cmd *cobra.Command, args []string) error {
	job, err := mergeJob()
	if err != nil {
		return err
	}

	files, err := csv.LoadFiles(mergeConfig.Files(), job.LoadOptions())
	if err != nil {
		return err
	}
	for _, df := range ledger.OrderedFiles(files) {
		config.Log.Infof("%s: %s, %d rows", df.Name, df.Layout, len(df.Rows))
	}

	out, err := csv.MergeFiles(job, files)
	if err != nil {
		config.Log.Error("Merge aborted", err)
		return err
	}
	logMergeResult(out)

	buffer, err := csv.ToCsv(out.Rows, out.Headers)
	if err != nil {
		config.Log.Error("Error generating CSV", err)
		return err
	}

	if mergeConfig.Base.Output == "" {
		fmt.Print(buffer.String())
	} else {
		if err := os.WriteFile(mergeConfig.Base.Output, buffer.Bytes(), 0o644); err != nil {
			return err
		}
		config.Log.Infof("Wrote %d rows to %s", len(out.Rows), mergeConfig.Base.Output)
	}

	if mergeDbConnection != nil {
		run := dbTypes.NewMergeRun(job.Chain.Name, job.Format, out.Result, out.Files)
		if err := dbTypes.PersistMergeRun(mergeDbConnection, &run); err != nil {
			config.Log.Error("Error storing merge run", err)
			return err
		}
		config.Log.Infof("Stored merge run %d with %d records", run.ID, len(run.Records))
	}

	return nil
}

func mergeJob() (csv.MergeJob, error) {
	chains, err := config.LoadChains(mergeConfig.Base.ChainsFile)
	if err != nil {
		return csv.MergeJob{}, err
	}
	chain, err := config.GetChain(chains, mergeConfig.Base.Chain)
	if err != nil {
		return csv.MergeJob{}, err
	}

	startDate, err := csv.ParseDate(mergeConfig.Base.StartDate)
	if err != nil {
		return csv.MergeJob{}, err
	}
	endDate, err := csv.ParseDate(mergeConfig.Base.EndDate)
	if err != nil {
		return csv.MergeJob{}, err
	}

	job := csv.MergeJob{
		Chain:            chain,
		StakingAddresses: mergeConfig.Base.StakingAddresses,
		Banned:           mergeConfig.Banned(),
		Format:           mergeConfig.Base.Format,
		StartDate:        startDate,
		EndDate:          endDate,
		Tracer:           merge.LogTracer{Logger: config.Log.ZeroLogger},
	}
	if mergeConfig.Base.Trace {
		job.Tracer = merge.ConsoleTracer{W: os.Stderr}
	}
	return job, nil
}

func logMergeResult(out *csv.MergeOutput) {
	config.Log.Infof("Merged %d of %d transactions", out.Result.MergedGroups, out.Result.Groups)

	for _, f := range out.Result.Failures {
		config.Log.Warnf("Could not merge %s", f.Txhash)
	}
	for _, row := range ledger.FailedRows(out.Files) {
		config.Log.Warn(fmt.Sprintf("row[%d] %s", row.LineNum, row), row.Failure)
	}
}
