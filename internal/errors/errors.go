// Package errors formats Lift compiler and runtime errors with source
// context, line/column information, and a caret pointing at the offending
// token.
package errors

import (
	"fmt"
	"strings"

	"github.com/ccdavis/lift-lang/internal/lexer"
)

// Kind classifies an error by the pipeline stage that raised it, per the
// taxonomy in the language specification.
type Kind string

const (
	// KindParse marks malformed syntax; aborts the whole file.
	KindParse Kind = "parse error"
	// KindName marks a reference to an undeclared name.
	KindName Kind = "name error"
	// KindType marks a static rule violation: mismatched types, mutability,
	// missing/extra struct fields, mismatched argument names.
	KindType Kind = "type error"
	// KindRuntime marks a failure only observable during evaluation: index
	// out of bounds, missing map key, division by zero.
	KindRuntime Kind = "runtime error"
)

// LiftError represents a single error with position and source context.
type LiftError struct {
	Kind    Kind
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

// New creates a new LiftError.
func New(kind Kind, pos lexer.Position, message, source, file string) *LiftError {
	return &LiftError{
		Kind:    kind,
		Pos:     pos,
		Message: message,
		Source:  source,
		File:    file,
	}
}

// Error implements the error interface.
func (e *LiftError) Error() string {
	return e.Format(false)
}

// Format renders the error with a source line and caret. If color is true,
// ANSI color codes are used for terminal output.
func (e *LiftError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("%s in %s:%d:%d\n", e.kindLabel(), e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("%s at line %d:%d\n", e.kindLabel(), e.Pos.Line, e.Pos.Column))
	}

	sourceLine := e.getSourceLine(e.Pos.Line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *LiftError) kindLabel() string {
	if e.Kind == "" {
		return "Error"
	}
	return strings.ToUpper(string(e.Kind[:1])) + string(e.Kind[1:])
}

// getSourceLine extracts a specific 1-indexed line from the source code.
func (e *LiftError) getSourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}

	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}

	return lines[lineNum-1]
}

// FormatErrors formats multiple errors, most relevant first.
func FormatErrors(errs []*LiftError, color bool) string {
	if len(errs) == 0 {
		return ""
	}

	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s):\n\n", len(errs)))

	for i, err := range errs {
		sb.WriteString(fmt.Sprintf("[%d of %d]\n", i+1, len(errs)))
		sb.WriteString(err.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}

	return sb.String()
}

// FromStringErrors wraps plain-text error messages (as produced by the
// parser, which formats its own "msg at LINE:COLUMN" strings)
// into LiftError values for pretty-printing.
func FromStringErrors(kind Kind, stringErrors []string, source, file string) []*LiftError {
	out := make([]*LiftError, 0, len(stringErrors))

	for _, errStr := range stringErrors {
		pos, message := parseErrorString(errStr)
		out = append(out, New(kind, pos, message, source, file))
	}

	return out
}

// parseErrorString extracts position information from a "message at
// LINE:COLUMN" string, falling back to position 0:0 when absent.
func parseErrorString(errStr string) (lexer.Position, string) {
	atIndex := strings.LastIndex(errStr, " at ")
	if atIndex == -1 {
		return lexer.Position{Line: 0, Column: 0}, errStr
	}

	posStr := errStr[atIndex+4:]
	message := strings.TrimSpace(errStr[:atIndex])

	var line, column int
	_, err := fmt.Sscanf(posStr, "%d:%d", &line, &column)
	if err != nil {
		return lexer.Position{Line: 0, Column: 0}, errStr
	}

	return lexer.Position{Line: line, Column: column}, message
}
