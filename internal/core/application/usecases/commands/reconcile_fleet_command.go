package commands

import (
	"errors"

	"dronedelivery/internal/pkg/guard"
)

// ReconcileFleetCommand triggers a sweep over busy drones, releasing any
// whose bound order already reached a terminal status. This repairs the
// divergence left by partial failures of the non-transactional dispatch
// and release paths.
//
// Example:
//
//	cmd := NewReconcileFleetCommand()
//	handler := NewReconcileFleetCommandHandler(uowFactory, logger)
//
//	// Run periodically from the job scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Fleet sweep failed: %v", err)
//	}
type ReconcileFleetCommand struct {
	guard guard.ConstructorGuard
}

var ErrReconcileFleetCommandIsNotConstructed = errors.New(
	"ReconcileFleetCommand must be created via NewReconcileFleetCommand constructor",
)

// NewReconcileFleetCommand creates a command to trigger a fleet sweep.
// This is a parameterless command that processes all busy drones.
func NewReconcileFleetCommand() ReconcileFleetCommand {
	return ReconcileFleetCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ReconcileFleetCommand) Validate() error {
	return c.guard.Validate(ErrReconcileFleetCommandIsNotConstructed)
}
