package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"compound-interest/domain"
	"compound-interest/service"
)

const maxBodyBytes = 1 << 20

type InterestHandler struct {
	service *service.InterestService
	symbol  string
}

func NewInterestHandler(service *service.InterestService, currencySymbol string) *InterestHandler {
	return &InterestHandler{service: service, symbol: currencySymbol}
}

// CalculateResponse is the body of a successful calculation.
type CalculateResponse struct {
	Result    domain.InvestmentResult `json:"result"`
	Formatted domain.FormattedResult  `json:"formatted"`
	CopyText  string                  `json:"copyText"`
}

type ValidateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type ValidateFieldResponse struct {
	Field string `json:"field"`
	Error string `json:"error,omitempty"`
}

func (h *InterestHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var form domain.InvestmentForm
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&form); err != nil {
		slog.DebugContext(r.Context(), "error decoding request body", "error", err)
		respondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Calculate(r.Context(), form)
	if err != nil {
		var refusal *service.RefusalError
		if errors.As(err, &refusal) {
			respondWithJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
				Error:  refusal.Error(),
				Fields: refusal.Fields,
			})
			return
		}
		if errors.Is(err, service.ErrResultOutOfRange) {
			respondWithError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "calculation failed", "error", err)
		respondWithError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, CalculateResponse{
		Result:    result,
		Formatted: service.FormatResult(result, h.symbol),
		CopyText:  service.CopyText(result),
	})
}

// ValidateField answers the per-keystroke check for one field.
func (h *InterestHandler) ValidateField(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ValidateFieldRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if !service.IsFormField(req.Field) {
		respondWithError(w, r, http.StatusBadRequest, "unknown field")
		return
	}

	respondWithJSON(w, http.StatusOK, ValidateFieldResponse{
		Field: req.Field,
		Error: service.ValidateField(req.Field, service.NormalizeNumber(req.Value)),
	})
}

func (h *InterestHandler) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.History(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to list calculations", "error", err)
		respondWithError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	respondWithJSON(w, http.StatusOK, records)
}
