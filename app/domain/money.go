package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is an exact fixed-point amount in cents. All price arithmetic in
// the storefront happens on this type; binary floating point is never used
// for totals.
type Money int64

// NewMoneyFromCents creates a Money value from an integer cent amount.
func NewMoneyFromCents(cents int64) Money {
	return Money(cents)
}

// ParseMoney parses a decimal string such as "500", "2.5" or "1002.00"
// into cents. At most two fractional digits are accepted.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}

	// Both parts must be bare digit runs; ParseInt alone would let a
	// stray sign through ("2.-5").
	if !allDigits(whole) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("invalid amount %q: at most two fractional digits", s)
	}
	if frac != "" && !allDigits(frac) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	cents := units * 100

	switch len(frac) {
	case 1:
		cents += int64(frac[0]-'0') * 10
	case 2:
		cents += int64(frac[0]-'0')*10 + int64(frac[1]-'0')
	}

	if negative {
		cents = -cents
	}

	return Money(cents), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Cents returns the raw cent amount.
func (m Money) Cents() int64 {
	return int64(m)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return m + other
}

// MulQuantity returns the exact line total for a quantity of items.
func (m Money) MulQuantity(quantity int) Money {
	return m * Money(quantity)
}

// String renders the amount with two decimal places, e.g. "1002.00".
func (m Money) String() string {
	cents := int64(m)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
