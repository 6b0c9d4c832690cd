package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/de-tools/order-calc/pkg/models/domain"
	"github.com/de-tools/order-calc/pkg/services/pricing"
)

// InputCollector prompts for an order line and prices it.
type InputCollector struct {
	in       *bufio.Reader
	out      io.Writer
	currency string
}

func NewInputCollector(in io.Reader, out io.Writer, currency string) *InputCollector {
	return &InputCollector{
		in:       bufio.NewReader(in),
		out:      out,
		currency: currency,
	}
}

// Collect reads quantity, unit price and tax percentage in that order. The
// first line that does not parse aborts the flow.
func (c *InputCollector) Collect() (domain.OrderSummary, error) {
	quantity, err := c.readInt("Enter quantity: ", pricing.FieldQuantity)
	if err != nil {
		return domain.OrderSummary{}, err
	}
	unitPrice, err := c.readFloat(fmt.Sprintf("Enter unit price (%s): ", c.currency), pricing.FieldUnitPrice)
	if err != nil {
		return domain.OrderSummary{}, err
	}
	taxPercentage, err := c.readFloat("Enter tax percentage (%): ", pricing.FieldTaxPercentage)
	if err != nil {
		return domain.OrderSummary{}, err
	}

	return pricing.Calculate(quantity, unitPrice, taxPercentage), nil
}

func (c *InputCollector) readInt(prompt, field string) (int, error) {
	line, err := c.prompt(prompt)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", field, err)
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, line, err)
	}
	return v, nil
}

func (c *InputCollector) readFloat(prompt, field string) (float64, error) {
	line, err := c.prompt(prompt)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", field, err)
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, line, err)
	}
	return v, nil
}

func (c *InputCollector) prompt(text string) (string, error) {
	if _, err := io.WriteString(c.out, text); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
