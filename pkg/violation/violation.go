// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

// Package violation defines the structured diagnostics the compiler reports.
// Validation is exhaustive rather than fail-fast: every stage appends to a
// shared List and the caller sees all problems in one pass.
package violation

import (
	"fmt"
	"sort"
	"strings"
)

// Code is the closed enumeration of violation codes.
type Code string

const (
	MutuallyExclusive    Code = "MUTUALLY_EXCLUSIVE"
	RequiresField        Code = "REQUIRES_FIELD"
	DuplicateKey         Code = "DUPLICATE_KEY"
	OutOfRange           Code = "OUT_OF_RANGE"
	InvalidEnumValue     Code = "INVALID_ENUM_VALUE"
	NonMonotonicSequence Code = "NON_MONOTONIC_SEQUENCE"
)

// Severity distinguishes hard failures from advisory findings. Only
// error-severity violations reject a compilation.
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Violation describes one compilation failure. Section names the
// sub-configuration (e.g. "lifecycle_rules"), Rule the map key within it
// (empty for bucket-level findings), Field the offending field path within
// the rule.
type Violation struct {
	Section  string   `json:"section"`
	Rule     string   `json:"rule,omitempty"`
	Field    string   `json:"field,omitempty"`
	Code     Code     `json:"code"`
	Severity Severity `json:"-"`
	Message  string   `json:"message"`
}

// Path returns the dot-separated field path, e.g.
// "lifecycle_rules.rotate-logs.expiration.days_after_object_creation".
func (v Violation) Path() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{v.Section, v.Rule, v.Field} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s: %s", v.Path(), v.Code, v.Message)
}

// List accumulates violations across validation and compilation stages.
// The zero value is ready to use.
type List struct {
	items []Violation
}

// Add appends a violation.
func (l *List) Add(v Violation) {
	l.items = append(l.items, v)
}

// AddError appends an error-severity violation.
func (l *List) AddError(section, rule, field string, code Code, format string, args ...any) {
	l.items = append(l.items, Violation{
		Section:  section,
		Rule:     rule,
		Field:    field,
		Code:     code,
		Severity: SeverityError,
		Message:  fmt.Sprintf(format, args...),
	})
}

// AddWarning appends a warning-severity violation. Warnings are reported
// but never reject a compilation.
func (l *List) AddWarning(section, rule, field string, code Code, format string, args ...any) {
	l.items = append(l.items, Violation{
		Section:  section,
		Rule:     rule,
		Field:    field,
		Code:     code,
		Severity: SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
	})
}

// HasErrors reports whether any error-severity violation was recorded.
func (l *List) HasErrors() bool {
	for _, v := range l.items {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Len returns the number of recorded violations, warnings included.
func (l *List) Len() int {
	return len(l.items)
}

// Items returns the violations in their current order.
func (l *List) Items() []Violation {
	return l.items
}

// Sort orders violations by sub-configuration, then rule name, then field
// path, so repeated compilations of the same input produce byte-identical
// reports. The sort is stable: equal keys keep insertion order.
func (l *List) Sort() {
	sort.SliceStable(l.items, func(i, j int) bool {
		a, b := l.items[i], l.items[j]
		if a.Section != b.Section {
			return a.Section < b.Section
		}
		if a.Rule != b.Rule {
			return a.Rule < b.Rule
		}
		return a.Field < b.Field
	})
}

// Error implements the error interface, rendering one violation per line.
func (l *List) Error() string {
	var b strings.Builder
	for i, v := range l.items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(v.String())
	}
	return b.String()
}
