package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ScholarNumber string   `json:"scholarNumber" validate:"required,scholarno"`
	Phone         string   `json:"phone" validate:"required,phone"`
	OfferDate     *string  `json:"offerDate" validate:"omitempty,iso8601"`
	Sessions      []string `json:"sessions" validate:"dive,session"`
}

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, Register(v))
	return v
}

func ptr(s string) *string { return &s }

func TestCustomRules(t *testing.T) {
	v := newValidator(t)

	valid := sample{
		ScholarNumber: "2021BCS042",
		Phone:         "+919876543210",
		OfferDate:     ptr("2024-08-15"),
		Sessions:      []string{"2024-25"},
	}
	require.NoError(t, v.Struct(valid))

	tests := []struct {
		name  string
		mut   func(s *sample)
		field string
		tag   string
	}{
		{"scholar too short", func(s *sample) { s.ScholarNumber = "A1" }, "scholarNumber", "scholarno"},
		{"scholar punctuation", func(s *sample) { s.ScholarNumber = "2021-BCS" }, "scholarNumber", "scholarno"},
		{"phone letters", func(s *sample) { s.Phone = "98765abcde" }, "phone", "phone"},
		{"bad date", func(s *sample) { s.OfferDate = ptr("15/08/2024") }, "offerDate", "iso8601"},
		{"bad session", func(s *sample) { s.Sessions = []string{"2024"} }, "sessions[0]", "session"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mut(&s)

			err := v.Struct(s)
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field())
			assert.Equal(t, tt.tag, verrs[0].Tag())
			assert.NotEmpty(t, Message(verrs[0]))
		})
	}
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"2024-08-15", "2024-08-15T10:30:00Z", "2024-08-15T10:30:00.123+05:30"} {
		_, err := ParseDate(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseDate("August 15")
	assert.Error(t, err)
}

func TestMessageUsesJSONName(t *testing.T) {
	v := newValidator(t)
	err := v.Struct(sample{Phone: "9876543210"})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "scholarNumber is required", Message(verrs[0]))
}

func TestNotBlank(t *testing.T) {
	type named struct {
		Name    string  `json:"name" validate:"notblank"`
		Rename  *string `json:"rename" validate:"omitempty,notblank"`
		Comment *string `json:"comment" validate:"notblank"`
	}
	v := newValidator(t)

	assert.NoError(t, v.Struct(named{Name: "Acme", Rename: ptr(" Globex ")}))

	tests := []struct {
		name  string
		value named
		field string
	}{
		{"spaces", named{Name: "   "}, "name"},
		{"tabs and newlines", named{Name: "\t\n"}, "name"},
		{"blank pointer", named{Name: "Acme", Comment: ptr("  ")}, "comment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var verrs validator.ValidationErrors
			require.True(t, errors.As(v.Struct(tt.value), &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field())
			assert.Equal(t, tt.field+" must not be blank", Message(verrs[0]))
		})
	}
}
