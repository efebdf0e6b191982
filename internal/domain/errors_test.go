package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("title", "required")

	if got := err.Error(); got != "validation: title: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "title", Message: "required"},
		{Field: "priority", Message: "must be one of low, medium, high"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
	fields := err.Fields()
	if len(fields) != 2 || fields[0] != "title" || fields[1] != "priority" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestValidationError_Wrapped(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("create task: %w", NewValidationError("title", "required"))

	var ve *ValidationError
	if !errors.As(wrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through wrapping")
	}
	if ve.Errors[0].Field != "title" {
		t.Errorf("field: got %q, want %q", ve.Errors[0].Field, "title")
	}
	if !errors.Is(wrapped, ErrValidation) {
		t.Error("wrapped error should still match ErrValidation")
	}
}
