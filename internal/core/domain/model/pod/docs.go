// Package pod provides domain entities and business logic for proof-of-delivery
// records. It implements the Pod aggregate root with its lock-once lifecycle.
//
// The package includes:
//   - Pod: the aggregate root owning the signature evidence, document
//     attachment and lock state
//   - Snapshot: package and staff values frozen at creation time
//
// Key business rules:
//   - At most one pod per package, created only for collected packages
//   - A pod is created unlocked; a document may be attached while unlocked
//   - Locking is permanent and not idempotent; once locked nothing changes
//   - Only the creating staff member or an admin may attach or lock
package pod
