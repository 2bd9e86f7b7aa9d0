package audit

import (
	"errors"
	"time"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not created
// through NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Action tags an audit entry with the event it records. Tags are free-form
// strings on the wire; the constants below cover every event this service
// emits itself.
type Action string

const (
	ActionPackageCreated   Action = "PACKAGE_CREATED"
	ActionPackageNotified  Action = "PACKAGE_NOTIFIED"
	ActionPackagePickedUp  Action = "PACKAGE_PICKED_UP"
	ActionPackageReceived  Action = "PACKAGE_RECEIVED"
	ActionPackageCollected Action = "PACKAGE_COLLECTED"
	ActionPackageReturned  Action = "PACKAGE_RETURNED"

	ActionPodCreated          Action = "POD_CREATED"
	ActionPodLocked           Action = "POD_LOCKED"
	ActionPodDocumentAttached Action = "POD_DOCUMENT_ATTACHED"

	ActionStaffRegistered  Action = "STAFF_REGISTERED"
	ActionStaffDeactivated Action = "STAFF_DEACTIVATED"

	// Compliance denials. Rejected attempts are part of the history too.
	ActionPackageCreateDenied Action = "PACKAGE_CREATE_DENIED"
	ActionTransitionDenied    Action = "PACKAGE_TRANSITION_DENIED"
	ActionPodCreateDenied     Action = "POD_CREATE_DENIED"
	ActionPodLockDenied       Action = "POD_LOCK_DENIED"
	ActionPodDocumentDenied   Action = "POD_DOCUMENT_DENIED"
	ActionStaffChangeDenied   Action = "STAFF_CHANGE_DENIED"
)

// Entity types this service writes entries for.
const (
	EntityPackage = "package"
	EntityPod     = "pod"
	EntityStaff   = "staff"
)

// Entry is an immutable audit record. Entries are append-only: the type has no
// mutating methods, and the repository contract carries no update or delete.
type Entry struct {
	id          kernel.UUID
	action      Action
	entityType  string
	entityID    string
	performedBy kernel.UUID
	metadata    map[string]any
	createdAt   time.Time

	isConstructed bool
}

// NewEntry creates an audit entry. createdAt must come from the server clock;
// caller-supplied timestamps are never accepted upstream of this constructor.
func NewEntry(
	id kernel.UUID,
	action Action,
	entityType string,
	entityID string,
	performedBy kernel.UUID,
	metadata map[string]any,
	createdAt time.Time,
) (Entry, error) {
	e := Entry{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setAction(action),
		e.setEntityType(entityType),
		e.setEntityID(entityID),
		e.setPerformedBy(performedBy),
	); err != nil {
		return Entry{}, err
	}

	e.metadata = copyMetadata(metadata)
	return e, nil
}

// RestoreEntry reconstructs an entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	action Action,
	entityType string,
	entityID string,
	performedBy kernel.UUID,
	metadata map[string]any,
	createdAt time.Time,
) (Entry, error) {
	return NewEntry(id, action, entityType, entityID, performedBy, metadata, createdAt)
}

// Validate ensures the Entry instance was properly constructed.
func (e Entry) Validate() error {
	if !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e Entry) ID() kernel.UUID {
	return e.id
}

// Action returns the event tag.
func (e Entry) Action() Action {
	return e.action
}

// EntityType returns the kind of entity the entry refers to.
func (e Entry) EntityType() string {
	return e.entityType
}

// EntityID returns the identifier of the entity the entry refers to.
func (e Entry) EntityID() string {
	return e.entityID
}

// PerformedBy returns the staff member the entry is attributed to.
func (e Entry) PerformedBy() kernel.UUID {
	return e.performedBy
}

// Metadata returns a copy of the structured payload.
func (e Entry) Metadata() map[string]any {
	return copyMetadata(e.metadata)
}

// CreatedAt returns the server-assigned creation time.
func (e Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setAction(action Action) error {
	if action == "" {
		return errs.NewValueIsRequiredError("action")
	}
	e.action = action
	return nil
}

func (e *Entry) setEntityType(entityType string) error {
	if entityType == "" {
		return errs.NewValueIsRequiredError("entityType")
	}
	e.entityType = entityType
	return nil
}

func (e *Entry) setEntityID(entityID string) error {
	if entityID == "" {
		return errs.NewValueIsRequiredError("entityId")
	}
	e.entityID = entityID
	return nil
}

func (e *Entry) setPerformedBy(performedBy kernel.UUID) error {
	if err := performedBy.Validate(); err != nil {
		return err
	}
	e.performedBy = performedBy
	return nil
}

func copyMetadata(metadata map[string]any) map[string]any {
	if metadata == nil {
		return nil
	}
	copied := make(map[string]any, len(metadata))
	for k, v := range metadata {
		copied[k] = v
	}
	return copied
}
