package usecase

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		password    string
		wantMessage string // empty means valid
	}{
		{"valid password", "DemoPass123!", ""},
		{"valid with other symbol", "Abcdefg1~", ""},
		{"too short", "Ab1!", "password must be at least 8 characters long"},
		{"no uppercase", "demopass123!", "password must contain at least one uppercase letter"},
		{"no lowercase", "DEMOPASS123!", "password must contain at least one lowercase letter"},
		{"no digit", "DemoPass!!!!", "password must contain at least one number"},
		{"no symbol", "DemoPass1234", "password must contain at least one special character"},
		{"empty", "", "password must be at least 8 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validatePassword(tt.password)

			if tt.wantMessage == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != "password" {
				t.Errorf("expected field %q, got %q", "password", ve.Field)
			}
			if ve.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, ve.Message)
			}
		})
	}
}

// TestValidatePassword_RuleOrdering pins the rule ordering: a password
// violating several rules reports the first one in the chain.
func TestValidatePassword_RuleOrdering(t *testing.T) {
	t.Parallel()

	// Short AND missing uppercase/digit/symbol: length fires first.
	err := validatePassword("abc")

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Message != "password must be at least 8 characters long" {
		t.Errorf("expected the length rule to fire first, got %q", ve.Message)
	}
}

func TestValidatePassword_MaxLengthIsLastRule(t *testing.T) {
	t.Parallel()

	long := "Aa1!" + strings.Repeat("x", maxPasswordLength)

	err := validatePassword(long)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Message != "password must be less than 129 characters" {
		t.Errorf("unexpected message %q", ve.Message)
	}
}

func TestValidateFullName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fullName string
		wantErr  bool
	}{
		{"valid", "Demo User", false},
		{"single character", "D", false},
		{"empty", "", true},
		{"too long", strings.Repeat("x", 101), true},
		{"exactly max", strings.Repeat("x", 100), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFullName(tt.fullName)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid", "demo_user-1", false},
		{"minimum length", "abc", false},
		{"too short", "ab", true},
		{"too long", strings.Repeat("x", 51), true},
		{"exactly max", strings.Repeat("x", 50), false},
		{"illegal space", "demo user", true},
		{"illegal at sign", "demo@user", true},
		{"illegal dot", "demo.user", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateUsername(tt.username)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
		})
	}
}
