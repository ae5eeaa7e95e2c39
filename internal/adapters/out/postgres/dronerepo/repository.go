package dronerepo

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDroneRepository implements DroneRepository using GORM.
type GormDroneRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDroneRepository creates a new GORM drone repository.
func NewGormDroneRepository(db *gorm.DB, tracker aggregateTracker) *GormDroneRepository {
	return &GormDroneRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new drone to the database. A serial number collision
// surfaces as a conflict via the unique index.
func (r *GormDroneRepository) Add(ctx context.Context, aggregate *drone.Drone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("serialNumber", aggregate.SerialNumber(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing drone to the database unconditionally.
func (r *GormDroneRepository) Update(ctx context.Context, aggregate *drone.Drone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DroneDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("serialNumber", aggregate.SerialNumber(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("droneId", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateInStatus saves an existing drone only while its stored row is
// still in the expected status. This conditional write is what makes
// dispatch at-most-once: two racing assignments both read the drone as
// available, but only the first update from available affects a row.
func (r *GormDroneRepository) UpdateInStatus(
	ctx context.Context,
	aggregate *drone.Drone,
	expected drone.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DroneDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("droneId", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a drone by ID, including soft-deleted drones.
func (r *GormDroneRepository) Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DroneDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("droneId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySerial retrieves a drone by serial number, including
// soft-deleted drones. Registration uses this to keep retired serials
// reserved.
func (r *GormDroneRepository) GetBySerial(ctx context.Context, serialNumber string) (*drone.Drone, error) {
	if serialNumber == "" {
		return nil, errs.NewValueIsRequiredError("serialNumber")
	}

	var dto DroneDTO
	if err := r.db.WithContext(ctx).First(&dto, "serial_number = ?", serialNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("serialNumber", serialNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllBusy retrieves all active drones currently in the busy status.
func (r *GormDroneRepository) GetAllBusy(ctx context.Context) ([]*drone.Drone, error) {
	var dtos []DroneDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND is_active", drone.Busy.String()).Error
	if err != nil {
		return nil, err
	}

	drones := make([]*drone.Drone, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drones = append(drones, d)
	}

	return drones, nil
}
