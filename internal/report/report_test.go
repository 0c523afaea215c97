package report_test

import (
	"bytes"
	"testing"
	"time"

	"taxapp/internal/report"
	"taxapp/pkg/domain"

	"github.com/stretchr/testify/require"
)

func testResult() domain.TaxResult {
	return domain.TaxResult{
		TaxpayerRequest: domain.TaxpayerRequest{
			Name:   "Asha Verma",
			Age:    34,
			Email:  "asha@example.com",
			Mobile: "+919876543210",
			Income: 800000,
		},
		Tax: 72500,
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	r := report.New(report.Options{})

	out, err := r.Render(testResult())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output should start with a PDF header")
}

func TestRender_ContainsVisibleText(t *testing.T) {
	// with compression disabled the content stream holds the literal text
	r := report.New(report.Options{DisableCompression: true})

	out, err := r.Render(testResult())
	require.NoError(t, err)
	require.Contains(t, string(out), "Asha Verma")
	require.Contains(t, string(out), "Rs.72500.00")
	require.Contains(t, string(out), "Rs.800000.00")
	require.Contains(t, string(out), "Income Tax Report")
}

func TestRender_Deterministic(t *testing.T) {
	pinned := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := report.New(report.Options{CreationDate: pinned})

	first, err := r.Render(testResult())
	require.NoError(t, err)
	second, err := r.Render(testResult())
	require.NoError(t, err)
	require.Equal(t, first, second, "same input and creation date must yield identical bytes")
}

func TestRender_CustomCurrencyPrefix(t *testing.T) {
	r := report.New(report.Options{CurrencyPrefix: "INR ", DisableCompression: true})

	out, err := r.Render(testResult())
	require.NoError(t, err)
	require.Contains(t, string(out), "INR 72500.00")
}
