// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS
// architecture. Handlers read the database directly with raw SQL and
// return flat read models; they never rebuild aggregates.
package queries

import (
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
)

// OrderSummaryResponse is the flat order read model used by listings
// and detail views.
type OrderSummaryResponse struct {
	ID                    kernel.UUID
	UserID                kernel.UUID
	ShopID                kernel.UUID
	Status                string
	PaymentStatus         string
	PaymentMethod         string
	TotalAmount           float64
	Address               string
	City                  string
	ContactName           string
	ContactPhone          string
	DroneID               *kernel.UUID
	DroneBattery          int
	EstimatedDeliveryTime time.Time
	CreatedAt             time.Time
	DeliveredAt           *time.Time
	CancelledAt           *time.Time
	CancelReason          string
	Items                 []OrderItemResponse
}

// OrderItemResponse is one line of an order as captured at purchase
// time.
type OrderItemResponse struct {
	ItemID   kernel.UUID
	Name     string
	Image    string
	Category string
	Price    float64
	Quantity int
	Subtotal float64
}

// DroneResponse is the flat drone read model used by fleet listings and
// detail views.
type DroneResponse struct {
	ID           kernel.UUID
	ShopID       kernel.UUID
	Model        string
	SerialNumber string
	CapacityKg   float64
	MaxSpeedKmh  float64
	MaxAltitudeM float64
	MaxRangeKm   float64
	Status       string
	Battery      int
	Latitude     *float64
	Longitude    *float64
	AltitudeM    *float64
	TotalFlights int
	IsActive     bool
	CreatedAt    time.Time
}
