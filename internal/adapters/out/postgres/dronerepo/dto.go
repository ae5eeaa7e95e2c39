// Package dronerepo provides data transfer objects and mapping functions for drone persistence.
// This package implements the repository pattern for the drone domain aggregate, handling
// the conversion between domain entities and database representations.
package dronerepo

import (
	"time"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DroneDTO represents the database structure for persisting drone aggregates.
// Maps drone domain entities to a relational table with a unique index on
// the serial number enforcing fleet-wide uniqueness at the database level.
type DroneDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShopID       uuid.UUID `gorm:"type:uuid;index"`
	Model        string    `gorm:"type:varchar(255);not null"`
	SerialNumber string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CapacityKg   float64
	MaxSpeedKmh  float64
	MaxAltitudeM float64
	MaxRangeKm   float64
	Status       string `gorm:"index"`
	Battery      int
	Latitude     *float64
	Longitude    *float64
	AltitudeM    *float64
	TelemetryAt  *time.Time
	TotalFlights int
	IsActive     bool `gorm:"index"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for drone entities.
// Overrides GORM's default naming convention to use "drones".
func (DroneDTO) TableName() string {
	return "drones"
}

// fromDomain converts a drone domain aggregate to its database representation.
// Telemetry is flattened into nullable columns; a drone that never reported
// its position persists with NULL coordinates.
func fromDomain(aggregate *drone.Drone) DroneDTO {
	dto := DroneDTO{
		ID:           aggregate.ID().Bytes(),
		ShopID:       aggregate.ShopID().Bytes(),
		Model:        aggregate.Model(),
		SerialNumber: aggregate.SerialNumber(),
		CapacityKg:   aggregate.CapacityKg(),
		MaxSpeedKmh:  aggregate.Specifications().MaxSpeedKmh,
		MaxAltitudeM: aggregate.Specifications().MaxAltitudeM,
		MaxRangeKm:   aggregate.Specifications().MaxRangeKm,
		Status:       aggregate.Status().String(),
		Battery:      aggregate.Battery().Value(),
		TotalFlights: aggregate.TotalFlights(),
		IsActive:     aggregate.IsActive(),
		CreatedAt:    aggregate.CreatedAt(),
	}

	if telemetry := aggregate.Telemetry(); telemetry != nil {
		lat := telemetry.Position.Lat()
		lng := telemetry.Position.Lng()
		alt := telemetry.AltitudeM
		at := telemetry.LastUpdated

		dto.Latitude = &lat
		dto.Longitude = &lng
		dto.AltitudeM = &alt
		dto.TelemetryAt = &at
	}

	return dto
}

// toDomain converts a database DTO to a drone domain aggregate.
// Reconstructs the complete aggregate including telemetry using RestoreDrone.
func toDomain(dto DroneDTO) (*drone.Drone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	battery, err := kernel.NewPercent(dto.Battery)
	if err != nil {
		return nil, err
	}

	var telemetry *drone.Telemetry
	if dto.Latitude != nil && dto.Longitude != nil {
		position, geoErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if geoErr != nil {
			return nil, geoErr
		}

		telemetry = &drone.Telemetry{Position: position}
		if dto.AltitudeM != nil {
			telemetry.AltitudeM = *dto.AltitudeM
		}
		if dto.TelemetryAt != nil {
			telemetry.LastUpdated = *dto.TelemetryAt
		}
	}

	return drone.RestoreDrone(
		id,
		shopID,
		dto.Model,
		dto.SerialNumber,
		dto.CapacityKg,
		drone.Specifications{
			MaxSpeedKmh:  dto.MaxSpeedKmh,
			MaxAltitudeM: dto.MaxAltitudeM,
			MaxRangeKm:   dto.MaxRangeKm,
		},
		drone.Status(dto.Status),
		battery,
		telemetry,
		dto.TotalFlights,
		dto.IsActive,
		dto.CreatedAt,
	)
}
