// Package money stores package/CTC figures as exact decimals.
package money

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Amount is a non-localised decimal. It marshals to a bare JSON number and to
// a BSON Decimal128 so aggregation ($max, $avg, range filters) works on it.
type Amount struct {
	decimal.Decimal
}

// Zero is the zero amount.
var Zero = Amount{decimal.Zero}

// New wraps a decimal.
func New(d decimal.Decimal) Amount { return Amount{d} }

// FromInt builds an amount from a whole number.
func FromInt(v int64) Amount { return Amount{decimal.NewFromInt(v)} }

// FromFloat builds an amount from a float.
func FromFloat(v float64) Amount { return Amount{decimal.NewFromFloat(v)} }

// Parse reads a decimal string such as "1250000.50".
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{d}, nil
}

// MarshalJSON writes the amount as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("amount cannot be null")
	}
	s := strings.Trim(string(data), `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid amount %s", string(data))
	}
	a.Decimal = d
	return nil
}

// MarshalBSONValue stores the amount as Decimal128.
func (a Amount) MarshalBSONValue() (bsontype.Type, []byte, error) {
	d128, err := primitive.ParseDecimal128(a.Decimal.String())
	if err != nil {
		return 0, nil, fmt.Errorf("amount %s does not fit decimal128: %w", a.Decimal.String(), err)
	}
	return bson.MarshalValue(d128)
}

// UnmarshalBSONValue reads Decimal128, double, int32, int64 or string values.
func (a *Amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Decimal128:
		d128, ok := raw.Decimal128OK()
		if !ok {
			return fmt.Errorf("malformed decimal128 amount")
		}
		d, err := decimal.NewFromString(d128.String())
		if err != nil {
			return err
		}
		a.Decimal = d
	case bsontype.Double:
		a.Decimal = decimal.NewFromFloat(raw.Double())
	case bsontype.Int32:
		a.Decimal = decimal.NewFromInt32(raw.Int32())
	case bsontype.Int64:
		a.Decimal = decimal.NewFromInt(raw.Int64())
	case bsontype.String:
		d, err := decimal.NewFromString(raw.StringValue())
		if err != nil {
			return err
		}
		a.Decimal = d
	case bsontype.Null:
		a.Decimal = decimal.Zero
	default:
		return fmt.Errorf("cannot decode %s into an amount", t)
	}
	return nil
}

// Decimal128 converts the amount for use in query filters.
func (a Amount) Decimal128() primitive.Decimal128 {
	d, err := primitive.ParseDecimal128(a.Decimal.String())
	if err != nil {
		return primitive.NewDecimal128(0, 0)
	}
	return d
}
