package jobs

import (
	"fmt"
	"log/slog"

	"coffeeshop/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	baristaAssignmentJob *BaristaAssignmentJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	assignBaristaHandler commands.AssignBaristaCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		baristaAssignmentJob: NewBaristaAssignmentJob(assignBaristaHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.baristaAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start barista assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.baristaAssignmentJob.Stop()
}
