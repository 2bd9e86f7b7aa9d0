package commands

import (
	"errors"

	"deliveryledger/internal/core/domain/model/audit"
	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/pkg/errs"
	"deliveryledger/internal/pkg/guard"
)

var ErrAppendAuditCommandIsNotConstructed = errors.New(
	"AppendAuditCommand must be created via NewAppendAuditCommand constructor",
)

// AppendAuditCommand represents a request by an active staff member to append
// a custom entry to the audit history. The entry's timestamp is assigned by
// the server during handling; a caller-supplied timestamp is never accepted.
type AppendAuditCommand struct { //nolint:recvcheck //using for validation
	entryID    kernel.UUID
	action     audit.Action
	entityType string
	entityID   string
	metadata   map[string]any
	callerID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAppendAuditCommand creates a command to append an audit entry.
func NewAppendAuditCommand(
	entryID kernel.UUID,
	action audit.Action,
	entityType string,
	entityID string,
	metadata map[string]any,
	callerID kernel.UUID,
) (AppendAuditCommand, error) {
	cmd := AppendAuditCommand{
		metadata: metadata,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEntryID(entryID),
		cmd.setAction(action),
		cmd.setEntityType(entityType),
		cmd.setEntityID(entityID),
		cmd.setCallerID(callerID),
	); err != nil {
		return AppendAuditCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendAuditCommand) Validate() error {
	return c.guard.Validate(ErrAppendAuditCommandIsNotConstructed)
}

// EntryID returns the identifier assigned to the new entry.
func (c AppendAuditCommand) EntryID() kernel.UUID {
	return c.entryID
}

// Action returns the event tag.
func (c AppendAuditCommand) Action() audit.Action {
	return c.action
}

// EntityType returns the kind of entity the entry refers to.
func (c AppendAuditCommand) EntityType() string {
	return c.entityType
}

// EntityID returns the identifier of the entity the entry refers to.
func (c AppendAuditCommand) EntityID() string {
	return c.entityID
}

// Metadata returns the structured payload, possibly nil.
func (c AppendAuditCommand) Metadata() map[string]any {
	return c.metadata
}

// CallerID returns the staff member the entry is attributed to.
func (c AppendAuditCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *AppendAuditCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}

func (c *AppendAuditCommand) setAction(action audit.Action) error {
	if action == "" {
		return errs.NewValueIsRequiredError("action")
	}

	c.action = action
	return nil
}

func (c *AppendAuditCommand) setEntityType(entityType string) error {
	if entityType == "" {
		return errs.NewValueIsRequiredError("entityType")
	}

	c.entityType = entityType
	return nil
}

func (c *AppendAuditCommand) setEntityID(entityID string) error {
	if entityID == "" {
		return errs.NewValueIsRequiredError("entityId")
	}

	c.entityID = entityID
	return nil
}

func (c *AppendAuditCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}
