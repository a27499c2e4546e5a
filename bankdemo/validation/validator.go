// Package validation validates the demo bank's registration form. It keeps
// the familiar pipe-separated rule syntax so handlers read declaratively:
//
//	v := validation.Make(form, validation.Rules{
//	    "username": "required|min:3|max:20",
//	    "password": "required|min:8|confirmed",
//	    "ssn":      "required|digits:9",
//	})
//	if v.Fails() { ... v.Errors() ... }
package validation

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ── Types ────────────────────────────────────────────────────────────────────

// Errors holds validation errors keyed by field.
// JSON output: {"errors": {"field": ["msg1", "msg2"]}}
type Errors struct {
	Bag map[string][]string `json:"errors"`
}

// Add appends an error message for a field. Handlers use it for checks that
// live outside rule strings, like username uniqueness.
func (e *Errors) Add(field, msg string) {
	if e.Bag == nil {
		e.Bag = make(map[string][]string)
	}
	e.Bag[field] = append(e.Bag[field], msg)
}

// Has returns true if there are any errors.
func (e *Errors) Has() bool { return len(e.Bag) > 0 }

// First returns the first error for a field.
func (e *Errors) First(field string) string {
	if msgs, ok := e.Bag[field]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// ── Validator ────────────────────────────────────────────────────────────────

// Rules is a map of field → pipe-separated rule string.
// e.g. Rules{"email": "required|email", "zip": "required|digits:5"}
type Rules map[string]string

// Validator validates a flat map of form values.
type Validator struct {
	data   map[string]string
	rules  Rules
	errors *Errors
}

// Make creates a new Validator over form data.
func Make(data map[string]string, rules Rules) *Validator {
	return &Validator{
		data:   data,
		rules:  rules,
		errors: &Errors{},
	}
}

// Fails runs validation and returns true if any rule fails.
func (v *Validator) Fails() bool {
	v.validate()
	return v.errors.Has()
}

// Passes runs validation and returns true if all rules pass.
func (v *Validator) Passes() bool { return !v.Fails() }

// Errors returns the validation error bag.
func (v *Validator) Errors() *Errors { return v.errors }

// ── Core validation loop ─────────────────────────────────────────────────────

func (v *Validator) validate() {
	for field, ruleStr := range v.rules {
		value := v.data[field]

		for _, rule := range strings.Split(ruleStr, "|") {
			rule = strings.TrimSpace(rule)
			if rule == "" {
				continue
			}

			// Parse rule name and optional parameter: min:3 → name=min, param=3
			name, param, _ := strings.Cut(rule, ":")

			if !v.applyRule(field, value, name, param) {
				break // stop on first failure per field
			}
		}
	}
}

// applyRule returns true if the rule passes.
func (v *Validator) applyRule(field, value, rule, param string) bool {
	switch rule {
	case "required":
		if strings.TrimSpace(value) == "" {
			v.errors.Add(field, fmt.Sprintf("The %s field is required.", field))
			return false
		}

	case "email":
		if _, err := mail.ParseAddress(value); err != nil {
			v.errors.Add(field, fmt.Sprintf("The %s must be a valid email address.", field))
			return false
		}

	case "min":
		n, _ := strconv.Atoi(param)
		if utf8.RuneCountInString(value) < n {
			v.errors.Add(field, fmt.Sprintf("The %s must be at least %d characters.", field, n))
			return false
		}

	case "max":
		n, _ := strconv.Atoi(param)
		if utf8.RuneCountInString(value) > n {
			v.errors.Add(field, fmt.Sprintf("The %s may not be greater than %d characters.", field, n))
			return false
		}

	case "digits":
		n, _ := strconv.Atoi(param)
		if !isDigits(value) || utf8.RuneCountInString(value) != n {
			v.errors.Add(field, fmt.Sprintf("The %s must be %d digits.", field, n))
			return false
		}

	case "in":
		allowed := strings.Split(param, ",")
		found := false
		for _, a := range allowed {
			if strings.TrimSpace(a) == value {
				found = true
				break
			}
		}
		if !found {
			v.errors.Add(field, fmt.Sprintf("The selected %s is invalid.", field))
			return false
		}

	case "confirmed":
		// Expects data[field+"_confirmation"] to match
		if v.data[field+"_confirmation"] != value {
			v.errors.Add(field, fmt.Sprintf("The %s confirmation does not match.", field))
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
