// Package staff provides the authorization identity aggregate and the closed
// role set for the delivery ledger.
//
// The package includes:
//   - Staff: an identity bound to an external account, with role and active flag
//   - Role: the closed {warehouse, driver, collection, admin} set, where admin
//     satisfies every role gate (superset, not separate logic)
//
// Key business rules:
//   - Deactivation is a soft-disable; profiles are never deleted so audit
//     history remains attributable
//   - Deactivated staff may still authenticate upstream but fail EnsureActive
//     on every operation in this system
package staff
