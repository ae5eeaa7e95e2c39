// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3. The only job today is the fleet
// reconciliation sweep; JobManager exists so new jobs plug into the
// same start/stop lifecycle.
package jobs

import (
	"fmt"
	"log/slog"

	"dronedelivery/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	fleetReconciliationJob *FleetReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	reconcileFleetHandler commands.ReconcileFleetCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		fleetReconciliationJob: NewFleetReconciliationJob(reconcileFleetHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.fleetReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start fleet reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.fleetReconciliationJob.Stop()
}
