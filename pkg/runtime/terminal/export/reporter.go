package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/de-tools/order-calc/pkg/adapters"
	"github.com/de-tools/order-calc/pkg/models/domain"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

const summaryTemplate = `
----- Order Summary -----
Quantity: {{.Summary.Quantity}}
Unit Price: {{.Currency}}{{money .Summary.UnitPrice}}
Subtotal: {{.Currency}}{{money .Summary.Subtotal}}
Tax ({{percent .Summary.TaxPercentage}}%): {{.Currency}}{{money .Summary.TaxAmount}}
Final Price: {{.Currency}}{{money .Summary.FinalPrice}}
`

// Handler writes an order summary somewhere.
type Handler interface {
	Handle(summary domain.OrderSummary) error
}

// NewHandler returns the handler for the given output format.
func NewHandler(format string, writer io.Writer, currency string) (Handler, error) {
	switch format {
	case FormatText, "":
		return NewReporter(writer, currency), nil
	case FormatJSON:
		return NewJSONReporter(writer), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (expected %s or %s)", format, FormatText, FormatJSON)
	}
}

type Reporter struct {
	writer   io.Writer
	currency string
	tmpl     *template.Template
}

func NewReporter(writer io.Writer, currency string) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	funcMap := template.FuncMap{
		"money":   FormatMoney,
		"percent": FormatPercent,
	}
	return &Reporter{
		writer:   writer,
		currency: currency,
		tmpl:     template.Must(template.New("summary").Funcs(funcMap).Parse(summaryTemplate)),
	}
}

func (r *Reporter) Handle(summary domain.OrderSummary) error {
	data := struct {
		Currency string
		Summary  domain.OrderSummary
	}{Currency: r.currency, Summary: summary}

	if err := r.tmpl.Execute(r.writer, data); err != nil {
		return fmt.Errorf("failed to render order summary: %w", err)
	}
	return nil
}

type JSONReporter struct {
	writer io.Writer
}

func NewJSONReporter(writer io.Writer) *JSONReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &JSONReporter{writer: writer}
}

func (r *JSONReporter) Handle(summary domain.OrderSummary) error {
	if !summary.Finite() {
		return errors.New("failed to encode order summary: amounts are not finite numbers")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(adapters.MapDomainSummaryToApiSummary(summary)); err != nil {
		return fmt.Errorf("failed to encode order summary: %w", err)
	}
	_, err := r.writer.Write(buf.Bytes())
	return err
}

// FormatMoney renders an amount with two decimals; infinities and NaN print
// as inf, -inf and nan.
func FormatMoney(v float64) string {
	if s, ok := formatNonFinite(v); ok {
		return s
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatPercent renders a rate as its shortest decimal literal: 10 -> "10.0",
// 7.5 -> "7.5", 1e-05 and 1e+16 in exponent form.
func FormatPercent(v float64) string {
	if s, ok := formatNonFinite(v); ok {
		return s
	}

	exp := strconv.FormatFloat(v, 'e', -1, 64)
	e, err := strconv.Atoi(exp[strings.IndexByte(exp, 'e')+1:])
	if err == nil && (e < -4 || e >= 16) {
		return exp
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatNonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "nan", true
	case math.IsInf(v, 1):
		return "inf", true
	case math.IsInf(v, -1):
		return "-inf", true
	}
	return "", false
}
