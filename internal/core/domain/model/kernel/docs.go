// Package kernel provides core domain primitives shared by the order and
// drone models.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GeoPoint: a validated latitude/longitude pair used for delivery
//     destinations and drone telemetry
//   - Percent: a 0-100 value used for battery readings
//
// These primitives enforce their invariants at construction time and are
// immutable afterwards, making them safe for concurrent use.
package kernel
