// Package kernel contains the shared building blocks of the domain model:
// the UUID identifier, the Money and Quantity value objects, the DomainEvent
// contract, and the Aggregate base that supplies every aggregate root with its
// domain event buffer and optimistic concurrency version.
//
// All value objects here are immutable and constructed through validating
// factory functions; their zero values are invalid and fail Validate.
package kernel
