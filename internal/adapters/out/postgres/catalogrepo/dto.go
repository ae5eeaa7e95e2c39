// Package catalogrepo provides read-only access to the shop catalog tables.
// The catalog is maintained by another context; this package only resolves
// the shop and item references that orders and drones hold into it.
package catalogrepo

import (
	"github.com/google/uuid"
)

// ShopDTO represents a registered shop row.
type ShopDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID  uuid.UUID `gorm:"type:uuid;index"`
	Name     string    `gorm:"type:varchar(255);not null"`
	IsActive bool
}

// TableName specifies the database table name for shop entities.
func (ShopDTO) TableName() string {
	return "shops"
}

// ItemDTO represents a menu item row.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShopID      uuid.UUID `gorm:"type:uuid;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Image       string
	Category    string
	Price       float64
	IsAvailable bool
}

// TableName specifies the database table name for menu item entities.
func (ItemDTO) TableName() string {
	return "items"
}
