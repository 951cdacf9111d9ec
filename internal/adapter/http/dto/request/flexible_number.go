package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"mecanica_os/internal/domain/lineitem"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// FlexibleNumber accepts a JSON number, a JSON string or null and keeps the
// text as typed. Forms send "12,50" as often as 12.5.
type FlexibleNumber string

func (n *FlexibleNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = FlexibleNumber(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = FlexibleNumber(num.String())
	return nil
}

func (n FlexibleNumber) String() string { return string(n) }

// Decimal parses the value strictly. A single comma is read as the decimal
// separator. Oversized text or exponents are rejected.
func (n FlexibleNumber) Decimal() (decimal.Decimal, error) {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, ok := lineitem.ParseNumber(s)
	if !ok {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}
