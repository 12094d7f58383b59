package domain

import (
	"time"

	"github.com/google/uuid"
)

// CalculationRecord is one successful calculation kept in the history.
type CalculationRecord struct {
	ID        uuid.UUID        `json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	Input     InvestmentInput  `json:"input"`
	Result    InvestmentResult `json:"result"`
}
