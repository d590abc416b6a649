package csv

import (
	"time"

	"github.com/DefiantLabs/explorer-tax-cli/csv/adapters/etherscan"
	"github.com/DefiantLabs/explorer-tax-cli/csv/parsers"
	"github.com/DefiantLabs/explorer-tax-cli/ledger"
	"github.com/DefiantLabs/explorer-tax-cli/merge"
)

// MergeJob is everything needed to turn a chain's exports into one output CSV.
type MergeJob struct {
	Chain            etherscan.Chain
	StakingAddresses []string
	Banned           map[string]bool
	Format           string
	StartDate        *time.Time
	EndDate          *time.Time
	Tracer           merge.Tracer
}

// MergeOutput is the merged data and the rendered rows.
type MergeOutput struct {
	Files   map[string]*ledger.DataFile
	Result  merge.Result
	Rows    []parsers.CsvRow
	Headers []string
}

// LoadOptions returns the layouts of the job's chain and its banned tokens.
func (job MergeJob) LoadOptions() LoadOptions {
	return LoadOptions{Layouts: etherscan.Layouts(job.Chain), Banned: job.Banned}
}

// Merger returns a merger for the chain's staking contracts plus the job's own.
func (job MergeJob) Merger() *merge.Merger {
	addresses := make([]string, 0, len(job.Chain.StakingAddresses)+len(job.StakingAddresses))
	addresses = append(addresses, job.Chain.StakingAddresses...)
	addresses = append(addresses, job.StakingAddresses...)

	m := merge.New(addresses...)
	m.Note = etherscan.Note
	if job.Tracer != nil {
		m.Tracer = job.Tracer
	}
	return m
}

// MergeFiles merges the loaded exports in place and renders them in the
// job's format.
func MergeFiles(job MergeJob, files map[string]*ledger.DataFile) (*MergeOutput, error) {
	result, err := job.Merger().Run(files)
	if err != nil {
		return nil, err
	}

	rows, headers, err := ParseFiles(files, job.Format, job.StartDate, job.EndDate)
	if err != nil {
		return nil, err
	}

	return &MergeOutput{Files: files, Result: result, Rows: rows, Headers: headers}, nil
}
