// Package literal turns raw token payloads into typed literal values.
//
// Integer literals are evaluated with math/big throughout: the mantissa, the
// exponent and the resulting power of ten are all unbounded, so "3e100" is
// the exact 101-digit integer rather than a rounded float.
package literal

import (
	"fmt"
	"math/big"
	"strings"
)

var ten = big.NewInt(10)

// Int evaluates a number token. Separator underscores are stripped from both
// parts. An empty exponent yields the mantissa itself; otherwise the result
// is mantissa * 10^exponent.
func Int(mantissa, exponent string) (*big.Int, error) {
	m, err := parseDigits(mantissa)
	if err != nil {
		return nil, fmt.Errorf("mantissa: %w", err)
	}

	if exponent == "" {
		return m, nil
	}

	e, err := parseDigits(exponent)
	if err != nil {
		return nil, fmt.Errorf("exponent: %w", err)
	}

	scale := new(big.Int).Exp(ten, e, nil)
	return m.Mul(m, scale), nil
}

// String returns the payload of a string token. Escapes are resolved by the
// token source, if at all, so the text is used verbatim.
func String(text string) string {
	return text
}

func parseDigits(text string) (*big.Int, error) {
	clean := strings.ReplaceAll(text, "_", "")
	if clean == "" {
		return nil, fmt.Errorf("invalid integer literal %q: no digits", text)
	}
	for i := 0; i < len(clean); i++ {
		if clean[i] < '0' || clean[i] > '9' {
			return nil, fmt.Errorf("invalid integer literal %q", text)
		}
	}

	v, ok := new(big.Int).SetString(clean, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer literal %q", text)
	}
	return v, nil
}
