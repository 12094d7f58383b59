package repository

import (
	"context"

	"compound-interest/domain"
)

type CalculationRepository interface {
	Save(ctx context.Context, record domain.CalculationRecord) error
	List(ctx context.Context) ([]domain.CalculationRecord, error)
}
