package kernel

import (
	"errors"
	"fmt"

	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

const (
	// GeoLatitudeMin is the minimum valid latitude in degrees.
	GeoLatitudeMin = -90.0
	// GeoLatitudeMax is the maximum valid latitude in degrees.
	GeoLatitudeMax = 90.0
	// GeoLongitudeMin is the minimum valid longitude in degrees.
	GeoLongitudeMin = -180.0
	// GeoLongitudeMax is the maximum valid longitude in degrees.
	GeoLongitudeMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when using an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable latitude/longitude pair in decimal degrees.
// It is used for order delivery destinations and reported drone positions.
// The zero value is invalid and fails validation; use NewGeoPoint.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(10.7769, 106.7009)
//	if err != nil {
//	    // out-of-range coordinates
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint after range-checking both coordinates.
// Latitude must lie within [-90, 90] and longitude within [-180, 180].
func NewGeoPoint(lat float64, lng float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLat(lat), point.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in decimal degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsEqual reports whether two points carry identical coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.lat, p.lng)
}

// Validate ensures the point was created through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < GeoLatitudeMin || lat > GeoLatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, GeoLatitudeMin, GeoLatitudeMax)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if lng < GeoLongitudeMin || lng > GeoLongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, GeoLongitudeMin, GeoLongitudeMax)
	}
	p.lng = lng
	return nil
}
