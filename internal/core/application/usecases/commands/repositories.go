// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, caller gating,
// transaction management, persistence and audit propagation.
package commands

import (
	"context"

	"deliveryledger/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PackageRepoFactory provides access to the package repository within a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// PodRepoFactory provides access to the pod repository within a transaction.
	PodRepoFactory interface {
		PodRepository() ports.PodRepository
	}

	// StaffRepoFactory provides access to the staff repository within a transaction.
	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	// AuditRepoFactory provides access to the audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// UoW manages transactions across all ledger aggregates. Every command
	// resolves its caller through the staff repository and appends its success
	// audit entries in the same transaction as the mutation, so all handlers
	// share this one unit of work shape.
	UoW interface {
		TxManager
		PackageRepoFactory
		PodRepoFactory
		StaffRepoFactory
		AuditRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
