package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"compound-interest/domain"
)

// DefaultStateKey is the fixed key the calculator state is saved under.
const DefaultStateKey = "compoundInterestState"

var ErrStateNotFound = errors.New("form state not found")

type FormStateRepository interface {
	Load(ctx context.Context) (domain.FormState, error)
	Save(ctx context.Context, state domain.FormState) error
}

// FormStateStore keeps the calculator state as JSON under a single key of a
// CacheRepository.
type FormStateStore struct {
	cache CacheRepository
	key   string
}

func NewFormStateStore(cache CacheRepository, key string) *FormStateStore {
	if key == "" {
		key = DefaultStateKey
	}
	return &FormStateStore{cache: cache, key: key}
}

// Load returns the saved state, or ErrStateNotFound when nothing was saved.
// A store failure is returned as is and never reported as not found.
func (s *FormStateStore) Load(ctx context.Context) (domain.FormState, error) {
	raw, ok, err := s.cache.Get(ctx, s.key)
	if err != nil {
		return domain.FormState{}, fmt.Errorf("load form state %q: %w", s.key, err)
	}
	if !ok {
		return domain.FormState{}, ErrStateNotFound
	}

	state := domain.DefaultFormState()
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return domain.FormState{}, fmt.Errorf("decode form state %q: %w", s.key, err)
	}
	return state, nil
}

func (s *FormStateStore) Save(ctx context.Context, state domain.FormState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode form state: %w", err)
	}
	if err := s.cache.Set(ctx, s.key, string(raw)); err != nil {
		return fmt.Errorf("save form state %q: %w", s.key, err)
	}
	return nil
}
