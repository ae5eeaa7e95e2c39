// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by buyer, shop owner, status, and drone assignment.
type OrderDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID `gorm:"type:uuid;index"`
	ShopID                uuid.UUID `gorm:"type:uuid;index"`
	ShopOwnerID           uuid.UUID `gorm:"type:uuid;index"`
	Status                string    `gorm:"index"`
	PaymentStatus         string
	PaymentMethod         string
	TotalAmount           float64
	Address               string
	City                  string
	Latitude              float64
	Longitude             float64
	Note                  string
	ContactName           string
	ContactPhone          string
	ContactEmail          string
	DroneID               *uuid.UUID `gorm:"type:uuid;index"`
	DroneBattery          int
	EstimatedDeliveryTime time.Time
	CreatedAt             time.Time
	DeliveredAt           *time.Time
	CancelledAt           *time.Time
	CancelReason          string

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line-item snapshot row. Rows are
// immutable after the order is created; only the parent order changes.
type OrderItemDTO struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ItemID      uuid.UUID `gorm:"type:uuid"`
	Name        string
	Image       string
	Category    string
	Price       float64
	Quantity    int
	Subtotal    float64
	ShopID      uuid.UUID `gorm:"type:uuid"`
	ShopOwnerID uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional drone assignment and terminal timestamps.
func fromDomain(aggregate *order.Order) OrderDTO {
	var droneID *uuid.UUID
	if id := aggregate.Drone(); id != nil {
		raw := id.Bytes()
		droneID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:     aggregate.ID().Bytes(),
			ItemID:      item.ItemID().Bytes(),
			Name:        item.Name(),
			Image:       item.Image(),
			Category:    item.Category(),
			Price:       item.Price(),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal(),
			ShopID:      item.ShopID().Bytes(),
			ShopOwnerID: item.ShopOwnerID().Bytes(),
		})
	}

	address := aggregate.DeliveryAddress()
	contact := aggregate.ContactInfo()

	return OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		UserID:                aggregate.UserID().Bytes(),
		ShopID:                aggregate.ShopID().Bytes(),
		ShopOwnerID:           aggregate.ShopOwnerID().Bytes(),
		Status:                aggregate.Status().String(),
		PaymentStatus:         aggregate.PaymentStatus().String(),
		PaymentMethod:         aggregate.PaymentMethod().String(),
		TotalAmount:           aggregate.TotalAmount(),
		Address:               address.Address(),
		City:                  address.City(),
		Latitude:              address.Coordinates().Lat(),
		Longitude:             address.Coordinates().Lng(),
		Note:                  address.Note(),
		ContactName:           contact.Name(),
		ContactPhone:          contact.Phone(),
		ContactEmail:          contact.Email(),
		DroneID:               droneID,
		DroneBattery:          aggregate.DroneBattery().Value(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		CreatedAt:             aggregate.CreatedAt(),
		DeliveredAt:           aggregate.DeliveredAt(),
		CancelledAt:           aggregate.CancelledAt(),
		CancelReason:          aggregate.CancelReason(),
		Items:                 items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line-item snapshots
// and drone assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var droneID *kernel.UUID
	if dto.DroneID != nil {
		dID, droneErr := kernel.UUIDFromBytes((*dto.DroneID)[:])
		if droneErr != nil {
			return nil, droneErr
		}

		droneID = &dID
	}

	items := make([]order.LineItemSnapshot, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	coordinates, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	address, err := order.NewDeliveryAddress(dto.Address, dto.City, coordinates, dto.Note)
	if err != nil {
		return nil, err
	}

	contact, err := order.NewContactInfo(dto.ContactName, dto.ContactPhone, dto.ContactEmail)
	if err != nil {
		return nil, err
	}

	battery, err := kernel.NewPercent(dto.DroneBattery)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		userID,
		items,
		address,
		contact,
		order.PaymentMethod(dto.PaymentMethod),
		order.PaymentStatus(dto.PaymentStatus),
		order.Status(dto.Status),
		droneID,
		battery,
		dto.EstimatedDeliveryTime,
		dto.CreatedAt,
		dto.DeliveredAt,
		dto.CancelledAt,
		dto.CancelReason,
	)
}

func itemToDomain(dto OrderItemDTO) (order.LineItemSnapshot, error) {
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return order.LineItemSnapshot{}, err
	}

	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return order.LineItemSnapshot{}, err
	}

	shopOwnerID, err := kernel.UUIDFromBytes(dto.ShopOwnerID[:])
	if err != nil {
		return order.LineItemSnapshot{}, err
	}

	return order.NewLineItemSnapshot(
		itemID,
		dto.Name,
		dto.Image,
		dto.Category,
		dto.Price,
		dto.Quantity,
		shopID,
		shopOwnerID,
	)
}
