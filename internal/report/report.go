// Package report renders a taxpayer's computed liability into a single-page
// PDF document. Rendering is self-contained: core fonts only, no resource
// fetches, and a fixed creation date yields byte-identical output for the
// same input.
package report

import (
	"bytes"
	"fmt"
	"time"

	"taxapp/pkg/domain"
	"taxapp/pkg/serrors"

	"github.com/go-pdf/fpdf"
)

// Filename is the attachment name used when the report is mailed.
const Filename = "TaxReport.pdf"

// DefaultCurrencyPrefix marks the income and tax amounts in the document.
// The PDF core fonts are cp1252-encoded and cannot represent the rupee sign
// used elsewhere, so the document falls back to a textual prefix.
const DefaultCurrencyPrefix = "Rs."

// Options configure the renderer.
type Options struct {
	// CurrencyPrefix is printed before the income and tax amounts.
	// Empty means DefaultCurrencyPrefix.
	CurrencyPrefix string
	// CreationDate pins the PDF metadata timestamp. The zero value lets the
	// library stamp the current time; tests pin it to get reproducible bytes.
	CreationDate time.Time
	// DisableCompression turns off content stream compression so the text
	// becomes extractable from the raw bytes. Only used by tests.
	DisableCompression bool
}

// Renderer produces the printable tax report for a taxpayer.
//
//go:generate mockgen -package mockreport -source=report.go -destination=mock/mockreport.go *
type Renderer interface {
	// Render returns the report as a PDF byte sequence. Any renderer failure
	// surfaces as an error; output is never silently truncated.
	Render(result domain.TaxResult) ([]byte, error)
}

// renderer is the fpdf-backed Renderer implementation.
type renderer struct {
	opts Options
}

// New creates a Renderer with the provided options.
func New(opts Options) Renderer {
	if opts.CurrencyPrefix == "" {
		opts.CurrencyPrefix = DefaultCurrencyPrefix
	}

	return &renderer{opts: opts}
}

// Render lays out the report in the fixed order title, name, age, email,
// mobile, income, tax and returns the document bytes.
func (r *renderer) Render(result domain.TaxResult) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Income Tax Report", false)
	pdf.SetCompression(!r.opts.DisableCompression)
	if !r.opts.CreationDate.IsZero() {
		pdf.SetCreationDate(r.opts.CreationDate)
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Income Tax Report", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Name: %s", result.Name),
		fmt.Sprintf("Age: %d", result.Age),
		fmt.Sprintf("Email: %s", result.Email),
		fmt.Sprintf("Mobile: %s", result.Mobile),
		fmt.Sprintf("Annual Income: %s%.2f", r.opts.CurrencyPrefix, result.Income),
		fmt.Sprintf("Calculated Tax: %s%.2f", r.opts.CurrencyPrefix, result.Tax),
	}
	for _, line := range lines {
		pdf.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not render tax report")
	}

	return buf.Bytes(), nil
}
