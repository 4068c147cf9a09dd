// Package kernel contains shared value objects used across the domain model.
//
// The kernel provides:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - Money: non-negative monetary amount with exact decimal arithmetic
//
// Value objects in this package are immutable and validate themselves at
// construction time. Zero values are invalid and are rejected by Validate.
package kernel
