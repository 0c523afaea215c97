package v1handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"taxapp/internal/api/handler/v1handler"
	mocknotify "taxapp/internal/notify/mock"
	"taxapp/pkg/domain"
	"taxapp/pkg/logger"
)

func init() {
	logger.Setup(logger.DevelopmentEnvironment)
}

func newHandler(t *testing.T) (*v1handler.Handler, *mocknotify.MockDispatcher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	dispatcher := mocknotify.NewMockDispatcher(ctrl)

	return v1handler.New(v1handler.Deps{Dispatcher: dispatcher}), dispatcher
}

func doCalculate(t *testing.T, h *v1handler.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Calculate(rec, req)

	return rec
}

func TestHandler_Index(t *testing.T) {
	h, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Index(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "Income Tax Calculator") {
		t.Fatalf("expected form page, got %q", rec.Body.String())
	}
}

func TestHandler_Calculate_Success(t *testing.T) {
	h, dispatcher := newHandler(t)

	var dispatched domain.TaxResult
	dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, result domain.TaxResult) domain.NotificationOutcome {
			dispatched = result

			return domain.NotificationOutcome{
				Channel: domain.ChannelJSON,
				Status:  domain.OutcomeSuccess,
			}
		})

	rec := doCalculate(t, h, `{"name":"Asha Verma","age":31,"email":"asha@example.com","mobile":"+911234567890","income":800000}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Name    string  `json:"name"`
		Age     int     `json:"age"`
		Email   string  `json:"email"`
		Mobile  string  `json:"mobile"`
		Income  float64 `json:"income"`
		Tax     float64 `json:"tax"`
		Message string  `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if resp.Tax != 72500 {
		t.Fatalf("tax = %v", resp.Tax)
	}
	if resp.Name != "Asha Verma" || resp.Age != 31 || resp.Email != "asha@example.com" {
		t.Fatalf("echoed fields = %+v", resp)
	}
	if resp.Mobile != "+911234567890" || resp.Income != 800000 {
		t.Fatalf("echoed fields = %+v", resp)
	}
	if want := "Hello Asha Verma, your calculated tax is ₹72500.00"; resp.Message != want {
		t.Fatalf("message = %q, want %q", resp.Message, want)
	}

	if dispatched.Tax != 72500 {
		t.Fatalf("dispatched tax = %v", dispatched.Tax)
	}
}

func TestHandler_Calculate_StringNumbersAccepted(t *testing.T) {
	// The embedded form submits every field as a string.
	h, dispatcher := newHandler(t)

	dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Return(domain.NotificationOutcome{Channel: domain.ChannelJSON, Status: domain.OutcomeSuccess})

	rec := doCalculate(t, h, `{"name":"Ravi","age":"45","email":"ravi@example.com","mobile":"+911111111111","income":"400000"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Age int     `json:"age"`
		Tax float64 `json:"tax"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Age != 45 {
		t.Fatalf("age = %d", resp.Age)
	}
	if resp.Tax != 7500 {
		t.Fatalf("tax = %v", resp.Tax)
	}
}

func TestHandler_Calculate_MissingFieldsDefaultToZero(t *testing.T) {
	h, dispatcher := newHandler(t)

	dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Return(domain.NotificationOutcome{Channel: domain.ChannelJSON, Status: domain.OutcomeSuccess})

	rec := doCalculate(t, h, `{"name":"NoIncome"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Age    int     `json:"age"`
		Income float64 `json:"income"`
		Tax    float64 `json:"tax"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Age != 0 || resp.Income != 0 || resp.Tax != 0 {
		t.Fatalf("defaults = %+v", resp)
	}
}

func TestHandler_Calculate_BadInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"name":`},
		{name: "non numeric income", body: `{"name":"x","income":"lots"}`},
		{name: "non numeric age", body: `{"name":"x","age":"old"}`},
		{name: "negative income", body: `{"name":"x","income":-1000}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, dispatcher := newHandler(t)
			dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)

			rec := doCalculate(t, h, tc.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}

			var resp struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if resp.Error == "" {
				t.Fatalf("expected non-empty error field")
			}
		})
	}
}

func TestHandler_Calculate_ProviderFailure(t *testing.T) {
	h, dispatcher := newHandler(t)

	provErr := errors.New("smtp: connection refused")
	dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Return(domain.NotificationOutcome{
			Channel: domain.ChannelEmail,
			Status:  domain.OutcomeFailure,
			Err:     provErr,
		})

	rec := doCalculate(t, h, `{"name":"Asha","email":"asha@example.com","income":800000}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !strings.Contains(resp.Error, "connection refused") {
		t.Fatalf("error = %q, want provider cause", resp.Error)
	}
}

func TestHandler_Calculate_SuccessDetailAppended(t *testing.T) {
	h, dispatcher := newHandler(t)

	dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Return(domain.NotificationOutcome{
			Channel:   domain.ChannelEmail,
			Status:    domain.OutcomeSuccess,
			MessageID: "msg-1",
			Detail:    "Report sent to asha@example.com",
		})

	rec := doCalculate(t, h, `{"name":"Asha","email":"asha@example.com","income":400000}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	want := "Hello Asha, your calculated tax is ₹7500.00. Report sent to asha@example.com"
	if resp.Message != want {
		t.Fatalf("message = %q, want %q", resp.Message, want)
	}
}

func TestHandler_NotFound(t *testing.T) {
	h, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	rec := httptest.NewRecorder()
	h.NotFound(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error != v1handler.RouteNotFoundMessage {
		t.Fatalf("error = %q", resp.Error)
	}
}
