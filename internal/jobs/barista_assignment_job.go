package jobs

import (
	"context"
	"errors"
	"log/slog"

	"coffeeshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BaristaAssignmentJob manages the scheduled assignment of baristas to orders.
// Runs every second to match pending orders with free baristas.
type BaristaAssignmentJob struct {
	handler commands.AssignBaristaCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBaristaAssignmentJob creates a new job for assigning baristas.
// Uses AssignBaristaCommandHandler to process one assignment every second.
func NewBaristaAssignmentJob(handler commands.AssignBaristaCommandHandler, logger *slog.Logger) *BaristaAssignmentJob {
	return &BaristaAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "barista_assignment_job"),
	}
}

// Start begins the barista assignment job to run every second.
func (j *BaristaAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignBaristaCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingOrders) && !errors.Is(err, commands.ErrNoFreeBaristasFound) {
				j.logger.ErrorContext(ctx, "Barista assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Barista assignment job started (running every second)")
	return nil
}

// Stop stops the barista assignment job.
func (j *BaristaAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Barista assignment job stopped")
}
