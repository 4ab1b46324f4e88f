package verrors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	typeLabel  = color.New(color.FgCyan, color.Bold).SprintFunc()
	renderText = color.New(color.Faint).SprintFunc()
	errBullet  = color.New(color.FgRed).SprintFunc()
	fieldName  = color.New(color.FgYellow).SprintFunc()
)

// GenerateMessage renders the failure block for a single class: the class
// name, the actual rendered text, and one line per discrepancy. Returns the
// empty string for a passing class. Deterministic given the same result.
func GenerateMessage(res ClassResult) string {
	return generateMessage(res, false)
}

// RenderReport renders the combined failure message for a whole run: one
// block per failing class, in registration order, separated by blank lines.
// Returns the empty string when the report has no errors.
func RenderReport(r *Report) string {
	return renderReport(r, false)
}

// RenderReportColor is RenderReport with terminal colors, for CLI display.
// Test failures always use the plain form so messages stay byte-stable.
func RenderReportColor(r *Report) string {
	return renderReport(r, true)
}

func renderReport(r *Report, useColors bool) string {
	var blocks []string
	for _, res := range r.Results {
		if !res.Failed() {
			continue
		}
		blocks = append(blocks, generateMessage(res, useColors))
	}
	return strings.Join(blocks, "\n\n")
}

func generateMessage(res ClassResult, useColors bool) string {
	if !res.Failed() {
		return ""
	}

	var sb strings.Builder
	if useColors {
		sb.WriteString(typeLabel(res.TypeName))
	} else {
		sb.WriteString(res.TypeName)
	}
	sb.WriteString("\n")

	if res.Fatal != nil {
		writeBullet(&sb, useColors, res.Fatal.Error())
		return strings.TrimRight(sb.String(), "\n")
	}

	if useColors {
		sb.WriteString("  rendered: ")
		sb.WriteString(renderText(res.Rendered))
	} else {
		sb.WriteString("  rendered: ")
		sb.WriteString(res.Rendered)
	}
	sb.WriteString("\n")

	for _, verr := range res.Errors {
		switch e := verr.(type) {
		case ClassNameError:
			writeBullet(&sb, useColors, fmt.Sprintf("expected the string representation to contain the class name %q", e.ExpectedSegment))
		case HashCodeError:
			writeBullet(&sb, useColors, fmt.Sprintf("expected the string representation to contain the hash code %d", e.ExpectedHash))
		case FieldValueError:
			writeBullet(&sb, useColors, "field values did not match:")
			for _, entry := range e.Entries {
				sb.WriteString("      ")
				if useColors {
					sb.WriteString(fieldName(entry.Name))
				} else {
					sb.WriteString(entry.Name)
				}
				sb.WriteString(": expected ")
				sb.WriteString(fmt.Sprintf("%q", entry.Expected))
				sb.WriteString("\n")
			}
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func writeBullet(sb *strings.Builder, useColors bool, text string) {
	sb.WriteString("  ")
	if useColors {
		sb.WriteString(errBullet("-"))
	} else {
		sb.WriteString("-")
	}
	sb.WriteString(" ")
	sb.WriteString(text)
	sb.WriteString("\n")
}
