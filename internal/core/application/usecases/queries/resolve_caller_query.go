package queries

import (
	"errors"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/pkg/errs"
	"deliveryledger/internal/pkg/guard"
)

var (
	ErrResolveCallerQueryIsNotConstructed = errors.New(
		"ResolveCallerQuery must be created via NewResolveCallerQuery constructor",
	)
)

// ResolveCallerQuery maps an external identity-provider account to the staff
// member it belongs to. The HTTP authentication middleware runs this on every
// request to turn a verified token subject into a caller.
type ResolveCallerQuery struct {
	guard guard.ConstructorGuard

	externalAccountID string
}

// NewResolveCallerQuery creates a caller resolution query.
func NewResolveCallerQuery(externalAccountID string) (ResolveCallerQuery, error) {
	if externalAccountID == "" {
		return ResolveCallerQuery{}, errs.NewValueIsRequiredError("externalAccountID")
	}
	return ResolveCallerQuery{
		guard:             guard.NewConstructorGuard(),
		externalAccountID: externalAccountID,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ResolveCallerQuery) Validate() error {
	return q.guard.Validate(ErrResolveCallerQueryIsNotConstructed)
}

// ResolveCallerQueryResponse identifies the staff member behind an external
// account. IsActive false means the account resolves but every privileged
// operation must be refused.
type ResolveCallerQueryResponse struct {
	StaffID  kernel.UUID
	Role     string
	IsActive bool
}
