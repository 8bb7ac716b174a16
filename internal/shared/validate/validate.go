// Package validate runs submitted form values through an ordered list of
// sanitizers and ozzo-validation rules.
//
// Every field is trimmed (and escaped where requested) in place before its
// rules run, so a re-rendered form always echoes the sanitized value. Every
// rule of every field runs; failures are collected in field order, then rule
// order, with one message per failed rule.
package validate

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// FieldError is a single failed rule, in the shape form templates expect.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the ordered collection of failures for one submission.
type Errors []FieldError

// Error implements the error interface.
func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// Field binds a form value to the rules applied to it.
type Field struct {
	Name   string
	Value  *string
	Escape bool
	Rules  []validation.Rule
}

// Text trims and escapes the value before validating it.
func Text(name string, value *string, rules ...validation.Rule) Field {
	return Field{Name: name, Value: value, Escape: true, Rules: rules}
}

// Plain only trims the value. Used for values that are parsed, not echoed as
// markup (dates).
func Plain(name string, value *string, rules ...validation.Rule) Field {
	return Field{Name: name, Value: value, Rules: rules}
}

// Run sanitizes every field in place, then applies each of its rules. Nothing
// stops at the first failure, within a field or across fields.
func Run(fields ...Field) Errors {
	var errs Errors
	for _, f := range fields {
		v := strings.TrimSpace(*f.Value)
		if f.Escape {
			v = Escape(v)
		}
		*f.Value = v

		for _, rule := range f.Rules {
			if err := rule.Validate(v); err != nil {
				errs = append(errs, FieldError{Field: f.Name, Message: err.Error()})
			}
		}
	}
	return errs
}

// ========================================
// SANITIZERS
// ========================================

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Escape replaces markup-significant characters with HTML entities.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

// ========================================
// DATES
// ========================================

// isoLayouts covers calendar and ordinal dates in extended and basic format,
// reduced precision (year, year-month) and date-times with a T or a space
// separator. Week dates (1990-W20-1) are not accepted.
var isoLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
	"20060102",
	"2006-002",
	"2006002",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"20060102T150405Z0700",
	"20060102T150405",
	"20060102T1504",
}

// ParseDate parses an ISO-8601 date or date-time. Reduced precision maps to
// the first day of the period. An empty string yields nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var lastErr error
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return &t, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// DateRule accepts empty values and ISO-8601 dates.
type DateRule struct {
	err validation.Error
}

// ISO8601 fails when a non-empty value is not an ISO-8601 date.
var ISO8601 = DateRule{
	err: validation.NewError("validation_iso8601_invalid", "must be a valid ISO-8601 date"),
}

// Validate implements validation.Rule.
func (r DateRule) Validate(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}

	s, err := validation.EnsureString(value)
	if err != nil {
		return err
	}
	if _, err := ParseDate(s); err != nil {
		return r.err
	}
	return nil
}

// Error sets the message returned on failure.
func (r DateRule) Error(message string) DateRule {
	r.err = r.err.SetMessage(message)
	return r
}

// ========================================
// CHARACTER CLASSES
// ========================================

// AlphanumericRule requires ASCII letters and digits only. Unlike
// is.Alphanumeric it fails on an empty value.
type AlphanumericRule struct {
	err validation.Error
}

// Alphanumeric fails when the value is empty or has a non-alphanumeric character.
var Alphanumeric = AlphanumericRule{
	err: validation.NewError("validation_is_alphanumeric", "must contain English letters and digits only"),
}

// Validate implements validation.Rule.
func (r AlphanumericRule) Validate(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return r.err
	}
	if err := is.Alphanumeric.Validate(value); err != nil {
		return r.err
	}
	return nil
}

// Error sets the message returned on failure.
func (r AlphanumericRule) Error(message string) AlphanumericRule {
	r.err = r.err.SetMessage(message)
	return r
}
