// Package audit provides the append-only history record. An Entry is
// immutable after construction, its creation timestamp comes from the server
// clock only, and the persistence contract exposes no update or delete: the
// prohibition is structural, not a permission check.
package audit
