// Package currency formats monetary amounts for display.
package currency

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCode is the currency used when none is configured.
const DefaultCode = "USD"

// fractionDigits is the number of decimals shown for every amount.
const fractionDigits = 2

// Formatter converts an amount to display text.
type Formatter interface {
	Format(amount float64) string
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc func(amount float64) string

// Format calls f(amount).
func (f FormatterFunc) Format(amount float64) string {
	return f(amount)
}

// Printer is a locale-aware Formatter for a single ISO 4217 currency.
type Printer struct {
	unit    currency.Unit
	symbol  string
	printer *message.Printer
}

// NewFormatter returns a Printer for the given ISO 4217 code and locale.
// An empty code selects DefaultCode.
func NewFormatter(code string, tag language.Tag) (*Printer, error) {
	if code == "" {
		code = DefaultCode
	}
	unit, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		return nil, fmt.Errorf("invalid currency code %q: %w", code, err)
	}

	return &Printer{
		unit:    unit,
		symbol:  Symbol(unit.String()),
		printer: message.NewPrinter(tag),
	}, nil
}

// MustFormatter is like NewFormatter but panics on an invalid code.
// It is intended for package-level defaults with constant arguments.
func MustFormatter(code string, tag language.Tag) *Printer {
	p, err := NewFormatter(code, tag)
	if err != nil {
		panic(err)
	}
	return p
}

// Format renders amount with the currency symbol, grouping separators and
// two fraction digits, e.g. "$1,000,000.00".
func (p *Printer) Format(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := p.printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(fractionDigits),
		number.MaxFractionDigits(fractionDigits),
	))
	return sign + p.symbol + digits
}

// Code returns the ISO 4217 code of the printer's currency.
func (p *Printer) Code() string {
	return p.unit.String()
}

// Symbol maps an ISO 4217 code to its display symbol.
// Unknown codes are returned unchanged.
func Symbol(code string) string {
	switch code {
	case "USD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "JPY", "CNY":
		return "¥"
	case "CAD":
		return "C$"
	case "AUD":
		return "A$"
	case "CHF":
		return "CHF "
	case "INR":
		return "₹"
	case "KRW":
		return "₩"
	default:
		return code + " "
	}
}
