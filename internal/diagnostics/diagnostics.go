// Package diagnostics defines positioned errors with stable codes.
//
// Parse-stage errors use P codes; generation-stage errors use G codes.
// Codes are part of the tool's contract: scripts and editors match on them.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/declgen/internal/token"
)

type Code string

const (
	// Parse stage
	ErrP001 Code = "P001" // illegal character
	ErrP002 Code = "P002" // unexpected token
	ErrP003 Code = "P003" // malformed literal
	ErrP004 Code = "P004" // malformed declaration
	ErrP005 Code = "P005" // expected identifier
	ErrP006 Code = "P006" // general syntax error

	// Generation stage
	ErrG001 Code = "G001" // EvaluationError: example could not be evaluated
	ErrG002 Code = "G002" // NotAStructError: selectFrom target is not a product
	ErrG003 Code = "G003" // FieldNotFoundError: selectFrom field absent
	ErrG004 Code = "G004" // MissingZeroValueError: default() has no zero value
	ErrG005 Code = "G005" // DuplicateDeclError: name already declared
)

// DiagnosticError is a positioned, coded error. A nil File is allowed;
// positions are 1-based like the lexer's.
type DiagnosticError struct {
	Code    Code
	File    string
	Line    int
	Column  int
	Message string
}

func NewError(code Code, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Line:    tok.Line,
		Column:  tok.Column,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewErrorAt builds a diagnostic with an explicit file and position,
// for errors not tied to a live token (e.g. declaration-table lookups).
func NewErrorAt(code Code, file string, line, column int, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		File:    file,
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithFile attaches the source file path after construction. Parsers
// create diagnostics from tokens, which don't carry the file name.
func (e *DiagnosticError) WithFile(file string) *DiagnosticError {
	e.File = file
	return e
}

func (e *DiagnosticError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: [%s] %s", e.File, e.Line, e.Column, e.Code, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: [%s] %s", e.Line, e.Column, e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}
