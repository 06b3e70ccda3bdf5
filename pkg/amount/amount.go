// Package amount parses user-supplied numeric text into decimal amounts.
package amount

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidFormat is returned when the text is not a plain non-negative
// number with at most one decimal separator.
var ErrInvalidFormat = errors.New("invalid amount format")

// amountRe accepts digits optionally followed by a single dot or comma and
// more digits. No sign, no exponent, no thousands separators, and a trailing
// bare separator ("12.") is rejected.
var amountRe = regexp.MustCompile(`^[0-9]+([.,][0-9]+)?$`)

// Parse converts text into a decimal amount. The comma is treated as the
// decimal separator when present; otherwise the dot is. Callers are expected
// to strip surrounding whitespace; internal whitespace invalidates the match.
func Parse(text string) (decimal.Decimal, error) {
	if !amountRe.MatchString(text) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(text, ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}
	return d, nil
}
