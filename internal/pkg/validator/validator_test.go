package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidCurrency(t *testing.T) {
	valid := []string{"LYD", "USD", "EUR"}
	invalid := []string{"lyd", "US", "USDT", "U1D", "", " "}
	for _, code := range valid {
		if !IsValidCurrency(code) {
			t.Errorf("IsValidCurrency(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidCurrency(code) {
			t.Errorf("IsValidCurrency(%q) = true, want false", code)
		}
	}
}

func TestIsValidPaymentMethod(t *testing.T) {
	valid := []string{"cash", "bank", "cheque"}
	invalid := []string{"Cash", "card", "", "check"}
	for _, m := range valid {
		if !IsValidPaymentMethod(m) {
			t.Errorf("IsValidPaymentMethod(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidPaymentMethod(m) {
			t.Errorf("IsValidPaymentMethod(%q) = true, want false", m)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // valid UUIDv7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // valid UUIDv7 (uppercase)
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",                                     // empty
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}
