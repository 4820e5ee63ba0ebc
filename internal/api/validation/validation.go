// Package validation checks request input against ordered rule sets before a
// handler runs. Field checks are go-playground/validator tags applied to the
// string form of each JSON value, plus a few tags registered here.
package validation

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Source says where a rule reads its field from.
type Source int

const (
	Body Source = iota
	Path
)

// Rule is one check on one field.
type Rule struct {
	Field    string
	Source   Source
	Check    string
	Optional bool
	Message  string
}

// RuleSet runs in order; every rule runs even after a failure.
type RuleSet []Rule

// Field returns a rule on a body field.
func Field(name, check, message string) Rule {
	return Rule{Field: name, Source: Body, Check: check, Message: message}
}

// Param returns a rule on a path parameter.
func Param(name, check, message string) Rule {
	return Rule{Field: name, Source: Path, Check: check, Message: message}
}

// IfPresent marks the rule as skipped when the field is absent or null.
func (r Rule) IfPresent() Rule {
	r.Optional = true
	return r
}

// Violation is a single failed rule as rendered to clients.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries every violation of a request, in rule order.
type Error struct {
	Violations []Violation `json:"errors"`
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Value types handed to validator.Var. All have string kind so built-in tags
// see the text form; the distinct types let "string" tell a JSON string apart
// from a number or boolean.
type (
	jsonNumber string
	jsonBool   string
	jsonAbsent string
)

var (
	stringType = reflect.TypeOf("")
	intPattern = regexp.MustCompile(`^[-+]?(0|[1-9][0-9]*)$`)
)

// timeLayouts are the ISO 8601 forms accepted for dates, most specific first.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Validator runs rule sets. It is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with the custom tags registered.
func New() *Validator {
	v := validator.New()
	mustRegister(v, "int", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !intPattern.MatchString(s) {
			return false
		}
		_, err := strconv.ParseInt(s, 10, 64)
		return err == nil
	})
	mustRegister(v, "iso8601", func(fl validator.FieldLevel) bool {
		_, ok := parseTime(fl.Field().String())
		return ok
	})
	mustRegister(v, "string", func(fl validator.FieldLevel) bool {
		return fl.Field().Type() == stringType
	})
	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Check applies rules to in and returns an *Error listing every violation.
func (val *Validator) Check(in *Input, rules RuleSet) error {
	var violations []Violation
	for _, r := range rules {
		value, present := in.lookup(r)
		if !present && r.Optional {
			continue
		}
		if value == nil || val.v.Var(value, r.Check) != nil {
			violations = append(violations, Violation{Field: r.Field, Message: r.Message})
		}
	}
	if len(violations) > 0 {
		return &Error{Violations: violations}
	}
	return nil
}
