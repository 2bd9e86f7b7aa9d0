// Package errs provides the standardized error taxonomy for the delivery
// ledger. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// Two groups of error kinds exist:
//
//   - Structural errors (ObjectNotFoundError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ValueIsRequiredError): malformed input or missing
//     entities. These are returned to the caller without an audit side effect.
//   - Compliance errors (ForbiddenError, DeactivatedError, LockedError,
//     AlreadyLockedError, DuplicatePodError, AlreadyCollectedError,
//     InvalidTransitionError): rejections that matter for compliance
//     reconstruction. Mutation paths returning a Locked, AlreadyLocked,
//     DuplicatePod or Forbidden kind must record the denied attempt in the
//     audit log before returning.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrLocked) matched via errors.Is
//   - A struct type carrying enough context to render a user-facing message
//     without a second lookup (e.g. pod reference and lock timestamp)
//   - Constructor functions, an Error() method and an Unwrap() method
package errs
