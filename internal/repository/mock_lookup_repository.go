package repository

import (
	"context"
	"sync"

	"github.com/sebasr/information-service/internal/models"
)

// MockLookupRepository is a mock implementation of LookupRepository for testing.
// The default functions keep records in memory.
type MockLookupRepository struct {
	RecordFunc func(ctx context.Context, record *models.LookupRecord) error
	RecentFunc func(ctx context.Context, limit int) ([]*models.LookupRecord, error)

	mu      sync.Mutex
	records []*models.LookupRecord
}

// NewMockLookupRepository creates a new mock lookup repository
func NewMockLookupRepository() *MockLookupRepository {
	m := &MockLookupRepository{}
	m.RecordFunc = func(_ context.Context, record *models.LookupRecord) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		record.ID = int64(len(m.records) + 1)
		m.records = append(m.records, record)
		return nil
	}
	m.RecentFunc = func(_ context.Context, limit int) ([]*models.LookupRecord, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		recent := []*models.LookupRecord{}
		for i := len(m.records) - 1; i >= 0 && len(recent) < limit; i-- {
			recent = append(recent, m.records[i])
		}
		return recent, nil
	}
	return m
}

// Record implements LookupRepository.Record
func (m *MockLookupRepository) Record(ctx context.Context, record *models.LookupRecord) error {
	return m.RecordFunc(ctx, record)
}

// Recent implements LookupRepository.Recent
func (m *MockLookupRepository) Recent(ctx context.Context, limit int) ([]*models.LookupRecord, error) {
	return m.RecentFunc(ctx, limit)
}

// Records returns everything stored by the default RecordFunc
func (m *MockLookupRepository) Records() []*models.LookupRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.LookupRecord, len(m.records))
	copy(out, m.records)
	return out
}
