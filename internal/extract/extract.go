// Package extract pulls per-field value substrings out of a rendered string
// representation using a configurable two-placeholder pattern.
//
// The pattern is a regular expression template containing exactly two %s
// tokens. The first is replaced with the (quoted) field name, the second
// with the value capture group. Everything around the second token is the
// caller's boundary for the captured value. The default pattern
//
//	%s=%s(?:, |\}|$)
//
// matches the common Type{a=1, b=2} layout.
package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholder is the substitution token; a valid pattern contains exactly two.
const placeholder = "%s"

// valueGroup is the named capture group substituted for the second
// placeholder. A name is used so patterns may carry their own groups ahead
// of the value without shifting its index.
const valueGroup = `(?P<value>.*?)`

// Matcher is a compiled field-value pattern. Per-field expressions are
// compiled once and cached, so a Matcher is built once per verification run,
// not once per field check. Not safe for concurrent use.
type Matcher struct {
	pattern  string
	perField map[string]*regexp.Regexp
}

// CompilePattern validates and compiles a field-value pattern. The pattern
// must contain exactly two %s tokens; anything else is a configuration
// mistake reported eagerly, before any verification runs.
func CompilePattern(pattern string) (*Matcher, error) {
	if pattern == "" {
		return nil, fmt.Errorf("field value pattern is empty")
	}
	if n := strings.Count(pattern, placeholder); n != 2 {
		return nil, fmt.Errorf("field value pattern %q contains %d %%s placeholders, want exactly 2", pattern, n)
	}
	m := &Matcher{pattern: pattern, perField: make(map[string]*regexp.Regexp)}
	// Compile against a probe name so malformed regex syntax also fails now.
	if _, err := m.regexpFor("probe"); err != nil {
		return nil, fmt.Errorf("field value pattern %q is not a valid regular expression: %w", pattern, err)
	}
	return m, nil
}

// Pattern returns the uninstantiated pattern template.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Extract returns the substring representing fieldName's value within text.
// The leftmost match wins when the layout is ambiguous. found is false when
// the pattern does not match at all, which callers treat distinctly from a
// value mismatch.
func (m *Matcher) Extract(text, fieldName string) (value string, found bool) {
	re, err := m.regexpFor(fieldName)
	if err != nil {
		return "", false
	}
	match := re.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	idx := re.SubexpIndex("value")
	if idx < 0 || idx >= len(match) {
		return "", false
	}
	return match[idx], true
}

// regexpFor instantiates and caches the expression for one field name.
func (m *Matcher) regexpFor(fieldName string) (*regexp.Regexp, error) {
	if re, ok := m.perField[fieldName]; ok {
		return re, nil
	}
	expr := instantiate(m.pattern, regexp.QuoteMeta(fieldName), valueGroup)
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	m.perField[fieldName] = re
	return re, nil
}

// instantiate replaces the first placeholder with name and the second with
// capture. Plain string surgery rather than fmt.Sprintf: patterns are regular
// expressions and may contain verbs fmt would misinterpret.
func instantiate(pattern, name, capture string) string {
	first := strings.Index(pattern, placeholder)
	out := pattern[:first] + name + pattern[first+len(placeholder):]
	second := strings.Index(out[first+len(name):], placeholder) + first + len(name)
	return out[:second] + capture + out[second+len(placeholder):]
}
