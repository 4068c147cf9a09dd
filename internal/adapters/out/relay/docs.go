// Package relay delivers committed domain events to in-process listeners.
//
// The relay is the default EventPublisher when no message broker is
// configured. Subscribers receive events over buffered channels scoped to a
// branch; a slow subscriber loses events rather than blocking the writer.
package relay
