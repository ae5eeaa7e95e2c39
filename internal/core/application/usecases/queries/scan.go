package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dronedelivery/internal/core/domain/model/kernel"
)

const orderColumns = `
	id,
	user_id,
	shop_id,
	status,
	payment_status,
	payment_method,
	total_amount,
	address,
	city,
	contact_name,
	contact_phone,
	drone_id,
	drone_battery,
	estimated_delivery_time,
	created_at,
	delivered_at,
	cancelled_at,
	cancel_reason
`

// scanOrders reads order summary rows and loads their line items with a
// single follow-up query.
func scanOrders(ctx context.Context, db *gorm.DB, rows *sql.Rows) ([]OrderSummaryResponse, error) {
	orders := make([]OrderSummaryResponse, 0)

	for rows.Next() {
		var (
			resp         OrderSummaryResponse
			id           uuid.UUID
			userID       uuid.UUID
			shopID       uuid.UUID
			droneID      uuid.NullUUID
			deliveredAt  sql.NullTime
			cancelledAt  sql.NullTime
			cancelReason sql.NullString
		)

		err := rows.Scan(
			&id,
			&userID,
			&shopID,
			&resp.Status,
			&resp.PaymentStatus,
			&resp.PaymentMethod,
			&resp.TotalAmount,
			&resp.Address,
			&resp.City,
			&resp.ContactName,
			&resp.ContactPhone,
			&droneID,
			&resp.DroneBattery,
			&resp.EstimatedDeliveryTime,
			&resp.CreatedAt,
			&deliveredAt,
			&cancelledAt,
			&cancelReason,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		if resp.ShopID, err = kernel.UUIDFromBytes(shopID[:]); err != nil {
			return nil, err
		}
		if droneID.Valid {
			bound, err := kernel.UUIDFromBytes(droneID.UUID[:])
			if err != nil {
				return nil, err
			}
			resp.DroneID = &bound
		}
		if deliveredAt.Valid {
			resp.DeliveredAt = &deliveredAt.Time
		}
		if cancelledAt.Valid {
			resp.CancelledAt = &cancelledAt.Time
		}
		resp.CancelReason = cancelReason.String

		orders = append(orders, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return loadOrderItems(ctx, db, orders)
}

func loadOrderItems(ctx context.Context, db *gorm.DB, orders []OrderSummaryResponse) ([]OrderSummaryResponse, error) {
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	index := make(map[kernel.UUID]int, len(orders))
	for i, ord := range orders {
		ids = append(ids, ord.ID.Bytes())
		index[ord.ID] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			item_id,
			name,
			image,
			category,
			price,
			quantity,
			subtotal
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item    OrderItemResponse
			orderID uuid.UUID
			itemID  uuid.UUID
		)

		err = rows.Scan(
			&orderID,
			&itemID,
			&item.Name,
			&item.Image,
			&item.Category,
			&item.Price,
			&item.Quantity,
			&item.Subtotal,
		)
		if err != nil {
			return nil, err
		}

		if item.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		key, err := kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return nil, err
		}
		if i, ok := index[key]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

const droneColumns = `
	id,
	shop_id,
	model,
	serial_number,
	capacity_kg,
	max_speed_kmh,
	max_altitude_m,
	max_range_km,
	status,
	battery,
	latitude,
	longitude,
	altitude_m,
	total_flights,
	is_active,
	created_at
`

// scanDrones reads drone rows into the flat fleet read model.
func scanDrones(rows *sql.Rows) ([]DroneResponse, error) {
	drones := make([]DroneResponse, 0)

	for rows.Next() {
		var (
			resp      DroneResponse
			id        uuid.UUID
			shopID    uuid.UUID
			latitude  sql.NullFloat64
			longitude sql.NullFloat64
			altitude  sql.NullFloat64
		)

		err := rows.Scan(
			&id,
			&shopID,
			&resp.Model,
			&resp.SerialNumber,
			&resp.CapacityKg,
			&resp.MaxSpeedKmh,
			&resp.MaxAltitudeM,
			&resp.MaxRangeKm,
			&resp.Status,
			&resp.Battery,
			&latitude,
			&longitude,
			&altitude,
			&resp.TotalFlights,
			&resp.IsActive,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ShopID, err = kernel.UUIDFromBytes(shopID[:]); err != nil {
			return nil, err
		}
		if latitude.Valid {
			resp.Latitude = &latitude.Float64
		}
		if longitude.Valid {
			resp.Longitude = &longitude.Float64
		}
		if altitude.Valid {
			resp.AltitudeM = &altitude.Float64
		}

		drones = append(drones, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return drones, nil
}
