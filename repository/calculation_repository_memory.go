package repository

import (
	"context"
	"sync"

	"compound-interest/domain"
)

// CalculationRepositoryMemory is an in-memory implementation of CalculationRepository.
type CalculationRepositoryMemory struct {
	mu   sync.RWMutex
	data []domain.CalculationRecord
}

// NewCalculationRepositoryMemory creates a new in-memory calculation repository.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		data: []domain.CalculationRecord{},
	}
}

// Save appends the record to the history.
func (r *CalculationRepositoryMemory) Save(
	_ context.Context,
	record domain.CalculationRecord,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, record)
	return nil
}

// List returns the history, oldest first.
func (r *CalculationRepositoryMemory) List(_ context.Context) ([]domain.CalculationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.CalculationRecord, len(r.data))
	copy(out, r.data)
	return out, nil
}
