package db

import (
	"fmt"
	"time"

	"github.com/DefiantLabs/explorer-tax-cli/ledger"
	"github.com/DefiantLabs/explorer-tax-cli/merge"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const recordBatchSize = 500

// PostgresDbConnect connects to the database according to the passed in parameters
func PostgresDbConnect(host string, port string, database string, user string, password string, level string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=disable", host, port, database, user, password)
	gormLogLevel := logger.Silent

	if level == "info" {
		gormLogLevel = logger.Info
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(gormLogLevel)})
	if err != nil {
		return nil, err
	}

	sqldb, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqldb.SetMaxIdleConns(10)
	sqldb.SetMaxOpenConns(100)
	sqldb.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// MigrateModels runs the gorm automigrations with all the db models. This will migrate as needed and do nothing if nothing has changed.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&MergeRun{},
		&LedgerRecord{},
	)
}

// NewMergeRun describes a finished merge pass and the records it left behind.
func NewMergeRun(chain, format string, result merge.Result, files map[string]*ledger.DataFile) MergeRun {
	return MergeRun{
		Chain:        chain,
		Format:       format,
		Groups:       result.Groups,
		MergedGroups: result.MergedGroups,
		FailedGroups: len(result.Failures),
		Records:      NewLedgerRecords(files),
	}
}

// NewLedgerRecords converts every row that still produces a record.
func NewLedgerRecords(files map[string]*ledger.DataFile) []LedgerRecord {
	rows := ledger.OutputRows(files)
	records := make([]LedgerRecord, 0, len(rows))
	for _, row := range rows {
		tr := row.Record
		records = append(records, LedgerRecord{
			Source:       row.SourceID,
			LineNum:      row.LineNum,
			Txhash:       row.Txhash(),
			Type:         tr.Type.String(),
			Timestamp:    tr.Timestamp.UTC(),
			BuyQuantity:  tr.BuyQuantity,
			BuyAsset:     tr.BuyAsset,
			SellQuantity: tr.SellQuantity,
			SellAsset:    tr.SellAsset,
			FeeQuantity:  tr.FeeQuantity,
			FeeAsset:     tr.FeeAsset,
			Wallet:       tr.Wallet,
			Note:         tr.Note,
		})
	}
	return records
}

// PersistMergeRun stores the run and its records. Nothing is stored if any
// insert fails.
func PersistMergeRun(db *gorm.DB, run *MergeRun) error {
	return db.Transaction(func(dbTransaction *gorm.DB) error {
		// return any error will rollback
		records := run.Records
		run.Records = nil
		defer func() { run.Records = records }()

		if err := dbTransaction.Create(run).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}

		for i := range records {
			records[i].MergeRunID = run.ID
		}
		return dbTransaction.Omit("MergeRun").CreateInBatches(records, recordBatchSize).Error
	})
}

// GetMergeRun loads a stored run with its records in export order.
func GetMergeRun(db *gorm.DB, id uint) (MergeRun, error) {
	var run MergeRun
	err := db.Preload("Records", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id asc")
	}).First(&run, id).Error
	return run, err
}

// PruneMergeRuns deletes the runs created before cutoff together with their
// records and returns how many runs were removed.
func PruneMergeRuns(db *gorm.DB, cutoff time.Time) (int64, error) {
	var pruned int64
	err := db.Transaction(func(dbTransaction *gorm.DB) error {
		old := dbTransaction.Model(&MergeRun{}).Select("id").Where("created_at < ?", cutoff)
		if err := dbTransaction.Where("merge_run_id IN (?)", old).Delete(&LedgerRecord{}).Error; err != nil {
			return err
		}
		result := dbTransaction.Where("created_at < ?", cutoff).Delete(&MergeRun{})
		pruned = result.RowsAffected
		return result.Error
	})
	return pruned, err
}
