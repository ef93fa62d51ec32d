package config

import (
	"errors"
	"fmt"
)

// Errors returned while loading or validating a label.
var (
	// ErrFileNotFound indicates the label file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrInvalidAlignment indicates an unknown alignment name.
	ErrInvalidAlignment = errors.New("invalid alignment")

	// ErrInvalidColor indicates a color that isn't a hex triplet.
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidSpecifier indicates a hotkey specifier longer than one rune.
	ErrInvalidSpecifier = errors.New("invalid hotkey specifier")

	// ErrInvalidKey indicates a key binding that doesn't name a special key.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidSize indicates a negative width or height.
	ErrInvalidSize = errors.New("invalid size")
)

// ParseError represents an error while parsing a label file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
