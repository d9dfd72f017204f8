package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures argument and story file validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvalidVariantError reports a variant that is not declared for a component kind.
// An empty Variant means the kind itself is unknown.
type InvalidVariantError struct {
	Kind    string
	Variant string
}

// NewInvalidVariantError constructs an InvalidVariantError.
func NewInvalidVariantError(kind, variant string) error {
	return &InvalidVariantError{Kind: kind, Variant: variant}
}

func (e *InvalidVariantError) Error() string {
	if e == nil {
		return ""
	}
	if e.Variant == "" {
		return fmt.Sprintf("invalid variant: unknown component kind %q", e.Kind)
	}
	return fmt.Sprintf("invalid variant: %q is not a %s variant", e.Variant, e.Kind)
}

// MissingFieldError reports a required argument absent from an argument record.
type MissingFieldError struct {
	Kind  string
	Field string
}

// NewMissingFieldError constructs a MissingFieldError.
func NewMissingFieldError(kind, field string) error {
	return &MissingFieldError{Kind: kind, Field: field}
}

func (e *MissingFieldError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("missing field: %s requires %q", e.Kind, e.Field)
}

// CompositionError wraps the first failure met while composing a gallery.
// Index is the zero-based position of the failing entry.
type CompositionError struct {
	Kind    string
	Variant string
	Index   int
	Err     error
}

// NewCompositionError constructs a CompositionError.
func NewCompositionError(kind, variant string, index int, err error) error {
	return &CompositionError{Kind: kind, Variant: variant, Index: index, Err: err}
}

func (e *CompositionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Variant != "" {
		return fmt.Sprintf("composition failed at entry %d (%s/%s): %v", e.Index, e.Kind, e.Variant, e.Err)
	}
	return fmt.Sprintf("composition failed at entry %d (%s): %v", e.Index, e.Kind, e.Err)
}

// Unwrap exposes the entry failure.
func (e *CompositionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StoryError indicates a story that could not be built.
type StoryError struct {
	StoryID string
	Err     error
}

// NewStoryError constructs a StoryError.
func NewStoryError(storyID string, err error) error {
	return &StoryError{StoryID: storyID, Err: err}
}

func (e *StoryError) Error() string {
	if e == nil {
		return ""
	}
	if e.StoryID != "" {
		return fmt.Sprintf("story %s: %v", e.StoryID, e.Err)
	}
	return fmt.Sprintf("story: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *StoryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
