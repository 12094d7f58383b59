package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"compound-interest/domain"
	"compound-interest/repository"
)

// ErrValidation marks a calculation refused because of invalid fields.
var ErrValidation = errors.New("validation failed")

// ErrResultOutOfRange marks valid input whose result overflows float64.
var ErrResultOutOfRange = errors.New(MsgResultOutOfRange)

// RefusalError is returned when a calculation is refused. Its message is the
// general one shown to the user; Fields holds the per-field messages.
type RefusalError struct {
	Fields domain.ValidationErrors
}

func (e *RefusalError) Error() string {
	return MsgCheckFields
}

func (e *RefusalError) Unwrap() []error {
	return []error{ErrValidation, e.Fields}
}

type InterestService struct {
	history repository.CalculationRepository
	states  repository.FormStateRepository
	now     func() time.Time
}

// NewInterestService creates a new InterestService with the given repositories.
func NewInterestService(
	history repository.CalculationRepository,
	states repository.FormStateRepository,
) *InterestService {
	return &InterestService{history: history, states: states, now: time.Now}
}

// Calculate validates the raw form, computes the result and saves the form
// together with the result as the current calculator state.
func (s *InterestService) Calculate(
	ctx context.Context,
	form domain.InvestmentForm,
) (domain.InvestmentResult, error) {

	form = NormalizeForm(form)

	// Validar entrada
	if errs := ValidateAll(form); len(errs) > 0 {
		return domain.InvestmentResult{}, &RefusalError{Fields: errs}
	}

	in := ParseForm(form)
	result, err := s.CalculateInput(ctx, in)
	if err != nil {
		return domain.InvestmentResult{}, err
	}

	// Opciones vacías se guardan con el valor usado
	form.ContributionFrequency = in.ContributionFrequency
	form.DurationUnit = in.DurationUnit
	form.ContributionTiming = in.ContributionTiming

	// Guardar el estado (no crítico si falla)
	state := domain.FormState{InvestmentForm: form}.WithResult(result)
	if err := s.states.Save(ctx, state); err != nil {
		slog.WarnContext(ctx, "failed to save form state", "error", err)
	}

	return result, nil
}

// CalculateInput computes already parsed input after checking it against
// the engine contract, and records it in the history.
func (s *InterestService) CalculateInput(
	ctx context.Context,
	in domain.InvestmentInput,
) (domain.InvestmentResult, error) {

	if err := CheckInput(in); err != nil {
		var fields domain.ValidationErrors
		if errors.As(err, &fields) {
			return domain.InvestmentResult{}, &RefusalError{Fields: fields}
		}
		return domain.InvestmentResult{}, err
	}

	result := Compute(in)
	if !isFinite(result) {
		return domain.InvestmentResult{}, ErrResultOutOfRange
	}

	record := domain.CalculationRecord{
		ID:        uuid.New(),
		CreatedAt: s.now().UTC(),
		Input:     in,
		Result:    result,
	}
	if err := s.history.Save(ctx, record); err != nil {
		slog.WarnContext(ctx, "failed to save calculation", "error", err)
	}

	return result, nil
}

// LoadState returns the saved calculator state, or the defaults when nothing
// has been saved yet.
func (s *InterestService) LoadState(ctx context.Context) (domain.FormState, error) {
	state, err := s.states.Load(ctx)
	if errors.Is(err, repository.ErrStateNotFound) {
		return domain.DefaultFormState(), nil
	}
	return state, err
}

// SaveState persists state as is. Fields are not validated: an in-progress
// form is saved on every edit.
func (s *InterestService) SaveState(ctx context.Context, state domain.FormState) error {
	return s.states.Save(ctx, state)
}

func (s *InterestService) History(ctx context.Context) ([]domain.CalculationRecord, error) {
	return s.history.List(ctx)
}

func isFinite(r domain.InvestmentResult) bool {
	for _, v := range []float64{r.FutureValue, r.DailyIncome, r.MonthlyIncome, r.YearlyIncome} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
