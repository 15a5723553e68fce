// Package job contains the scheduled background jobs of the web server.
package job

import (
	"github.com/pahanaedu/bill-ui/database"
	"github.com/pahanaedu/bill-ui/logger"
	"github.com/pahanaedu/bill-ui/util/common"
)

// CheckpointJob periodically flushes the sqlite WAL so the main database
// file stays current between restarts.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

func (j *CheckpointJob) Run() {
	defer common.Recover("checkpoint job")
	if err := database.Checkpoint(); err != nil {
		logger.Warning("wal checkpoint failed:", err)
	}
}
