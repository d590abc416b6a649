package tasks

import (
	"time"

	"github.com/DefiantLabs/explorer-tax-cli/config"
	dbTypes "github.com/DefiantLabs/explorer-tax-cli/db"
	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// PruneMergeRunsTask removes stored merge runs older than retention.
func PruneMergeRunsTask(db *gorm.DB, retention time.Duration) {
	config.Log.Debug("Task started for PruneMergeRunsTask")
	pruned, err := dbTypes.PruneMergeRuns(db, time.Now().UTC().Add(-retention))
	if err != nil {
		config.Log.Error("Error pruning merge runs in PruneMergeRunsTask", err)
		return
	}
	config.Log.Infof("Task ended for PruneMergeRunsTask, pruned %d runs", pruned)
}

// SchedulePruning runs PruneMergeRunsTask every interval, starting now.
func SchedulePruning(db *gorm.DB, retention, interval time.Duration) (*gocron.Scheduler, error) {
	scheduler := gocron.NewScheduler(time.UTC)
	if _, err := scheduler.Every(interval).Do(PruneMergeRunsTask, db, retention); err != nil {
		return nil, err
	}
	scheduler.StartAsync()
	return scheduler, nil
}
