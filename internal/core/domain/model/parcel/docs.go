// Package parcel provides domain entities and business logic for tracked
// packages. It implements the Package aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Package: the aggregate root owning identity, item list and handling metadata
//   - Status: a state machine enforcing the collection workflow
//   - Transition: caller-requested status changes with their role gates
//   - Item: a quantity/description line on the package
//
// Key business rules:
//   - Packages must have a valid tracking reference, receiver email and at
//     least one item
//   - Statuses follow Pending/Notified -> InTransit -> ReadyForCollection ->
//     Collected, with an admin-only return path from the non-transit states
//   - Re-applying an applied transition fails with InvalidTransition
//   - Correlated who/when metadata is set atomically with each transition
package parcel
