package v1handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"taxapp/internal/tax"
	"taxapp/pkg/domain"
	"taxapp/pkg/logger"
	"taxapp/pkg/serrors"

	"go.uber.org/zap"
)

// calculateRequest mirrors the payload submitted by the frontend form. The
// form posts every field as a string, API clients send numbers, so age and
// income accept both representations.
type calculateRequest struct {
	Name   string    `json:"name"`
	Age    flexInt   `json:"age"`
	Email  string    `json:"email"`
	Mobile string    `json:"mobile"`
	Income flexFloat `json:"income"`
}

type calculateResponse struct {
	domain.TaxResult

	Message string `json:"message"`
}

// flexInt decodes from a JSON number or a numeric string.
// Absent, null and empty-string values decode to zero.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = 0

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err //nolint: wrapcheck
		}
		if s == "" {
			*f = 0

			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*f = flexInt(v)

		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err //nolint: wrapcheck
	}
	*f = flexInt(v)

	return nil
}

// flexFloat decodes from a JSON number or a numeric string.
// Absent, null and empty-string values decode to zero.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = 0

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err //nolint: wrapcheck
		}
		if s == "" {
			*f = 0

			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", s)
		}
		*f = flexFloat(v)

		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err //nolint: wrapcheck
	}
	*f = flexFloat(v)

	return nil
}

// Calculate parses the submitted income details, computes the tax liability
// and dispatches the result over the active notification channel. The tax is
// logged before the dispatch attempt so a provider failure never hides the
// computed value.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.deps.Metrics.RecordRequest(ctx, "bad_request")
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not parse request body"))

		return
	}

	if req.Income < 0 {
		h.deps.Metrics.RecordRequest(ctx, "bad_request")
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "income must not be negative"))

		return
	}

	result := domain.TaxResult{
		TaxpayerRequest: domain.TaxpayerRequest{
			Name:   req.Name,
			Age:    int(req.Age),
			Email:  req.Email,
			Mobile: req.Mobile,
			Income: float64(req.Income),
		},
		Tax: tax.Compute(float64(req.Income)),
	}
	logger.Info(ctx, "tax calculated", zap.Float64("income", result.Income), zap.Float64("tax", result.Tax))

	outcome := h.deps.Dispatcher.Dispatch(ctx, result)
	if outcome.Failed() {
		h.deps.Metrics.RecordRequest(ctx, "dispatch_failed")
		h.writeError(w, r, serrors.Wrap(serrors.ErrUnavailable, outcome.Err, "could not deliver notification"))

		return
	}

	message := fmt.Sprintf("Hello %s, your calculated tax is ₹%.2f", result.Name, result.Tax)
	if outcome.Detail != "" {
		message += ". " + outcome.Detail
	}

	h.deps.Metrics.RecordRequest(ctx, "ok")
	writeJSON(w, http.StatusOK, calculateResponse{
		TaxResult: result,
		Message:   message,
	})
}
