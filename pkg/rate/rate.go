// Package rate normalizes interest rates between the two representations
// that show up in source data: a plain fraction (0.0450) and a
// percentage-scale value ("4.5", "4.50%"). The canonical internal form is
// always the fraction, quantized to 4 decimal places.
package rate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Parse converts a raw rate string to a fractional rate.
// A trailing percent sign forces percentage scale; bare values greater
// than 1 are also treated as percentage scale. The result is rounded
// half-up to 4 decimal places.
func Parse(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	pct := strings.HasSuffix(s, "%")
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("rate: empty value %q", raw)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("rate: parse %q: %w", raw, err)
	}
	if pct || d.Abs().GreaterThan(decimal.NewFromInt(1)) {
		d = d.Div(hundred)
	}
	f, _ := d.Round(4).Float64()
	return f, nil
}

// Format renders a fractional rate as a percentage string: 0.045 → "4.50%".
func Format(fraction float64) string {
	return decimal.NewFromFloat(fraction).Mul(hundred).StringFixed(2) + "%"
}

// Input is a JSON field that accepts a rate either as a string ("4.5%")
// or as a bare number (4.5). The raw text is kept so a parse failure can
// be handled by the caller instead of failing the whole request body.
type Input struct {
	Raw string
}

func (in *Input) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		in.Raw = s
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("rate: expected string or number, got %s", string(b))
	}
	in.Raw = n.String()
	return nil
}

func (in Input) MarshalJSON() ([]byte, error) { return json.Marshal(in.Raw) }
