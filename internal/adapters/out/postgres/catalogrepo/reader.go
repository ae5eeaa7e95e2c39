package catalogrepo

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogReader implements CatalogReader using GORM.
type GormCatalogReader struct {
	db *gorm.DB
}

// NewGormCatalogReader creates a new GORM catalog reader.
func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

// catalogItemRow carries the join of an item with its shop's owner.
type catalogItemRow struct {
	ID          uuid.UUID
	Name        string
	Image       string
	Category    string
	Price       float64
	IsAvailable bool
	ShopID      uuid.UUID
	ShopOwnerID uuid.UUID
}

// GetItems resolves menu items by their identifiers. Every requested
// item must exist; one missing identifier fails the whole lookup so an
// order can never be created against a half-resolved cart.
func (r *GormCatalogReader) GetItems(ctx context.Context, ids []kernel.UUID) ([]ports.CatalogItem, error) {
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError("itemIds")
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, errs.NewValueIsRequiredErrorWithCause("itemIds", err)
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var rows []catalogItemRow
	err := r.db.WithContext(ctx).
		Table("items").
		Select("items.id, items.name, items.image, items.category, items.price, " +
			"items.is_available, items.shop_id, shops.owner_id AS shop_owner_id").
		Joins("JOIN shops ON shops.id = items.shop_id").
		Where("items.id IN ?", rawIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]struct{}, len(rows))
	for _, row := range rows {
		found[row.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id.Bytes()]; !ok {
			return nil, errs.NewObjectNotFoundError("itemId", id)
		}
	}

	items := make([]ports.CatalogItem, 0, len(rows))
	for _, row := range rows {
		item, rowErr := rowToItem(row)
		if rowErr != nil {
			return nil, rowErr
		}
		items = append(items, item)
	}

	return items, nil
}

// GetShop resolves a shop by its identifier.
func (r *GormCatalogReader) GetShop(ctx context.Context, id kernel.UUID) (ports.CatalogShop, error) {
	if err := id.Validate(); err != nil {
		return ports.CatalogShop{}, errs.NewValueIsRequiredErrorWithCause("shopId", err)
	}

	var dto ShopDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CatalogShop{}, errs.NewObjectNotFoundError("shopId", id)
		}
		return ports.CatalogShop{}, err
	}

	shopID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.CatalogShop{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return ports.CatalogShop{}, err
	}

	return ports.CatalogShop{
		ID:       shopID,
		OwnerID:  ownerID,
		Name:     dto.Name,
		IsActive: dto.IsActive,
	}, nil
}

func rowToItem(row catalogItemRow) (ports.CatalogItem, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return ports.CatalogItem{}, err
	}

	shopID, err := kernel.UUIDFromBytes(row.ShopID[:])
	if err != nil {
		return ports.CatalogItem{}, err
	}

	shopOwnerID, err := kernel.UUIDFromBytes(row.ShopOwnerID[:])
	if err != nil {
		return ports.CatalogItem{}, err
	}

	return ports.CatalogItem{
		ID:          id,
		Name:        row.Name,
		Image:       row.Image,
		Category:    row.Category,
		Price:       row.Price,
		IsAvailable: row.IsAvailable,
		ShopID:      shopID,
		ShopOwnerID: shopOwnerID,
	}, nil
}
