package models

import (
	"strings"
	"testing"
	"time"
)

// Test ProjectForm validation
func TestProjectFormValidation(t *testing.T) {
	// Test valid form
	validForm := ProjectForm{
		Name:        "Production",
		Description: "Production credentials",
	}
	errors := validForm.Validate()
	if len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	// Test invalid form
	invalidForm := ProjectForm{
		Name:        "   ", // Whitespace only
		Description: strings.Repeat("x", 501),
	}
	errors = invalidForm.Validate()
	if len(errors) != 2 {
		t.Errorf("Expected 2 errors for invalid form, got: %v", errors)
	}

	// Test name length limit
	longName := ProjectForm{Name: strings.Repeat("x", 101)}
	errors = longName.Validate()
	if len(errors) != 1 {
		t.Errorf("Expected 1 error for overly long name, got: %v", errors)
	}
}

// Test SecretForm validation
func TestSecretFormValidation(t *testing.T) {
	// Test valid form
	validForm := SecretForm{
		Key:         "STRIPE_API_KEY",
		Value:       "sk_live_abc123",
		Description: "Stripe production key",
	}
	errors := validForm.Validate()
	if len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	// Test invalid form
	invalidForm := SecretForm{
		Key:   "", // Empty key
		Value: "",
	}
	errors = invalidForm.Validate()
	if len(errors) != 2 {
		t.Errorf("Expected 2 errors for invalid form, got: %v", errors)
	}

	// Test malformed key
	badKey := SecretForm{Key: "stripe-key", Value: "v"}
	errors = badKey.Validate()
	if len(errors) != 1 {
		t.Errorf("Expected 1 error for malformed key, got: %v", errors)
	}
}

// Test the ENV-style key format check
func TestSecretKeyFormat(t *testing.T) {
	// Test valid keys
	validKeys := []string{"API_KEY", "DATABASE_URL", "stripe_key", "_private", "KEY2"}
	for _, key := range validKeys {
		if !isValidSecretKey(key) {
			t.Errorf("Expected %s to be a valid key", key)
		}
	}

	// Test invalid keys
	invalidKeys := []string{"2FACTOR", "api-key", "api key", "key!", "café"}
	for _, key := range invalidKeys {
		if isValidSecretKey(key) {
			t.Errorf("Expected %s to be an invalid key", key)
		}
	}
}

// Test secret value masking
func TestSecretMaskedValue(t *testing.T) {
	long := Secret{Value: "sk_live_abc123"}
	if got := long.MaskedValue(); got != "••••••••c123" {
		t.Errorf("Expected masked value with last four characters, got: %s", got)
	}

	// Short values must not leak any characters
	short := Secret{Value: "abcd"}
	if got := short.MaskedValue(); got != "••••••••" {
		t.Errorf("Expected fully masked short value, got: %s", got)
	}

	empty := Secret{Value: ""}
	if got := empty.MaskedValue(); got != "••••••••" {
		t.Errorf("Expected fully masked empty value, got: %s", got)
	}

	// Multibyte values must keep whole runes in the suffix
	multibyte := Secret{Value: "pass-wörtérü"}
	if got := multibyte.MaskedValue(); got != "••••••••térü" {
		t.Errorf("Expected rune-clean masked suffix, got: %s", got)
	}

	// A value of exactly four multibyte runes stays fully masked
	shortMultibyte := Secret{Value: "ωωωω"}
	if got := shortMultibyte.MaskedValue(); got != "••••••••" {
		t.Errorf("Expected fully masked four-rune value, got: %s", got)
	}
}

// Test pagination bounds
func TestPagination(t *testing.T) {
	p := NewPagination(2, 25, 60)
	if p.TotalPages != 3 {
		t.Errorf("Expected 3 total pages, got %d", p.TotalPages)
	}
	if p.Offset() != 25 {
		t.Errorf("Expected offset 25, got %d", p.Offset())
	}
	if !p.HasPrev() || !p.HasNext() {
		t.Error("Expected middle page to have both neighbours")
	}

	// Page beyond the end clamps to the last page
	clamped := NewPagination(10, 25, 60)
	if clamped.Page != 3 {
		t.Errorf("Expected page clamped to 3, got %d", clamped.Page)
	}
	if clamped.HasNext() {
		t.Error("Expected last page to have no next page")
	}

	// Empty lists still have one page
	empty := NewPagination(1, 25, 0)
	if empty.TotalPages != 1 {
		t.Errorf("Expected 1 page for empty list, got %d", empty.TotalPages)
	}
	if empty.HasPrev() || empty.HasNext() {
		t.Error("Expected single page to have no neighbours")
	}

	// Invalid page numbers fall back to the first page
	negative := NewPagination(-1, 0, 10)
	if negative.Page != 1 || negative.PerPage != 25 {
		t.Errorf("Expected defaults for invalid input, got: %+v", negative)
	}
}

// Test datetime formatting
func TestFormatDateTime(t *testing.T) {
	moment := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	if got := FormatDateTime(moment); got != "2025-03-14 09:26" {
		t.Errorf("Expected formatted datetime, got: %s", got)
	}
}
