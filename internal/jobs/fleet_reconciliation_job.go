package jobs

import (
	"context"
	"log/slog"

	"dronedelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// FleetReconciliationJob runs the consistency sweep that reclaims
// drones stranded by partial dispatch failures. Runs every 30 seconds;
// the sweep is idempotent, so an overlapping run is harmless.
type FleetReconciliationJob struct {
	handler commands.ReconcileFleetCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewFleetReconciliationJob creates a new job for the fleet sweep.
func NewFleetReconciliationJob(
	handler commands.ReconcileFleetCommandHandler,
	logger *slog.Logger,
) *FleetReconciliationJob {
	return &FleetReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "fleet_reconciliation_job"),
	}
}

// Start begins the fleet reconciliation job to run every 30 seconds.
func (j *FleetReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileFleetCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Fleet reconciliation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fleet reconciliation job started (running every 30 seconds)")
	return nil
}

// Stop stops the fleet reconciliation job.
func (j *FleetReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fleet reconciliation job stopped")
}
