package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Scholar numbers are institution ids such as 2021BCS042
	ScholarNumberPattern = `^[A-Za-z0-9]{3,20}$`

	// Phone numbers: 10-15 digits with an optional leading +
	PhonePattern = `^\+?[0-9]{10,15}$`

	// Academic sessions look like 2024-25
	SessionPattern = `^[0-9]{4}-[0-9]{2}$`

	PasswordMinLength = 6
	RemarksMaxLength  = 500
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	ScholarNumber *regexp.Regexp
	Phone         *regexp.Regexp
	Session       *regexp.Regexp
}{
	ScholarNumber: regexp.MustCompile(ScholarNumberPattern),
	Phone:         regexp.MustCompile(PhonePattern),
	Session:       regexp.MustCompile(SessionPattern),
}

// DateLayouts are the ISO-8601 forms accepted for date fields.
var DateLayouts = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano}

// ParseDate parses an ISO-8601 date or timestamp.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 date %q", value)
}

// Register installs the custom rules and the JSON tag-name resolver on v.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonTagName)

	rules := map[string]validator.Func{
		"iso8601":   isISO8601,
		"scholarno": matches(CompiledPatterns.ScholarNumber),
		"phone":     matches(CompiledPatterns.Phone),
		"session":   matches(CompiledPatterns.Session),
		"notblank":  notBlank,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}

// RegisterWithGin installs the rules on gin's default binding validator.
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return Register(v)
}

// jsonTagName reports fields by their JSON name, or their form name for
// query structs.
func jsonTagName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func isISO8601(fl validator.FieldLevel) bool {
	s, ok := stringValue(fl)
	if !ok {
		return false
	}
	_, err := ParseDate(s)
	return err == nil
}

// notBlank rejects strings made only of whitespace. Nil pointers pass so the
// rule composes with omitempty on partial updates.
func notBlank(fl validator.FieldLevel) bool {
	f := fl.Field()
	for f.Kind() == reflect.Ptr {
		if f.IsNil() {
			return true
		}
		f = f.Elem()
	}
	if f.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(f.String()) != ""
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s, ok := stringValue(fl)
		return ok && re.MatchString(s)
	}
}

func stringValue(fl validator.FieldLevel) (string, bool) {
	f := fl.Field()
	for f.Kind() == reflect.Ptr {
		if f.IsNil() {
			return "", false
		}
		f = f.Elem()
	}
	if f.Kind() != reflect.String {
		return "", false
	}
	return f.String(), true
}

// Message renders a validator failure as a short human sentence.
func Message(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param()
	case "gte":
		return field + " must be greater than or equal to " + e.Param()
	case "lte":
		return field + " must be less than or equal to " + e.Param()
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	case "iso8601":
		return field + " must be an ISO-8601 date"
	case "scholarno":
		return field + " must be 3-20 letters or digits"
	case "phone":
		return field + " must be a valid phone number"
	case "session":
		return field + " must look like 2024-25"
	case "notblank":
		return field + " must not be blank"
	case "url":
		return field + " must be a valid URL"
	case "unique":
		return field + " must not contain duplicates"
	default:
		return field + " validation failed: " + e.Tag()
	}
}
