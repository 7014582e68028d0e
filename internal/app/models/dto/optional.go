package dto

import (
	"bytes"
	"strings"
	"time"

	"github.com/harish176/placement-portal/internal/pkg/money"
	"github.com/harish176/placement-portal/internal/pkg/validation"
)

// OptionalAmount is a money input where null and "" both mean absent.
type OptionalAmount struct {
	Value *money.Amount
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalAmount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`)) {
		o.Value = nil
		return nil
	}
	var a money.Amount
	if err := a.UnmarshalJSON(trimmed); err != nil {
		return err
	}
	o.Value = &a
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o OptionalAmount) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return o.Value.MarshalJSON()
}

// Some wraps a present amount.
func Some(a money.Amount) OptionalAmount { return OptionalAmount{Value: &a} }

func isNegative(a *money.Amount) bool {
	return a != nil && a.Sign() < 0
}

// parseOptionalDate turns a validated ISO-8601 string into a time. Empty input
// is absent.
func parseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := validation.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
