// Package repository provides data access interfaces and implementations.
package repository

import (
	"context"

	"github.com/sebasr/information-service/internal/models"
)

// LookupRepository defines the interface for the information lookup audit log
type LookupRepository interface {
	// Record stores a served lookup and assigns its ID
	Record(ctx context.Context, record *models.LookupRecord) error

	// Recent returns the most recent lookups, newest first
	Recent(ctx context.Context, limit int) ([]*models.LookupRecord, error)
}
