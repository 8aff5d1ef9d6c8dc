/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Inner", "999")

	// Test error message
	expected := `Inner with key "999" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	// Test helper function
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestDecodeError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewDecodeError("Outer", cause)

	expected := "failed to decode Outer: unexpected end of JSON input"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrDecode) {
		t.Error("DecodeError should match ErrDecode")
	}

	if !errors.Is(err, cause) {
		t.Error("DecodeError should unwrap to the decoder diagnostic")
	}

	if !IsDecodeError(err) {
		t.Error("IsDecodeError should return true for DecodeError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "PK",
			message:  "expanded to an empty value",
			expected: `validation failed for field "PK": expanded to an empty value`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing key attributes",
			expected: "validation failed: missing key attributes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrInvalidInput) {
				t.Error("ValidationError should match ErrInvalidInput")
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	// Test that wrapped errors still match
	original := NewNotFoundError("Inner", "123")
	wrapped := fmt.Errorf("get inner: %w", original)

	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("Wrapped NotFoundError should still match ErrNotFound")
	}

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should work with wrapped errors")
	}

	var nf *NotFoundError
	if !errors.As(wrapped, &nf) || nf.Key != "123" {
		t.Errorf("errors.As should recover the NotFoundError, got %v", nf)
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{NewNotFoundError("Inner", "1"), CodeNotFound},
		{fmt.Errorf("wrapped: %w", NewDecodeError("Inner", errors.New("bad"))), CodeDecodeError},
		{NewValidationError("id", "empty"), CodeInvalidInput},
		{errors.New("storage unavailable"), ""},
	}

	for _, tt := range tests {
		if got := Code(tt.err); got != tt.want {
			t.Errorf("Code(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestSentinelErrors(t *testing.T) {
	// Ensure sentinel errors are distinct
	sentinels := []error{
		ErrNotFound,
		ErrDecode,
		ErrInvalidInput,
		ErrNoIndexMap,
		ErrNoEventLog,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
