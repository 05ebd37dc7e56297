package validation

import (
	"strings"
	"testing"

	"github.com/fitclub/wellness-api/catalog"
)

func TestValidateText(t *testing.T) {
	v := NewValidator()

	valid := []string{
		"",
		"Ana Torres",
		"Me despierto a las 6 y duermo a las 23",
		"café con leche, pan con palta",
	}
	for _, input := range valid {
		if err := v.ValidateText(input); err != nil {
			t.Errorf("ValidateText(%q) = %v, want nil", input, err)
		}
	}

	dangerous := []string{
		"<script>alert(1)</script>",
		"javascript:void(0)",
		"' OR 1=1 --",
		"UNION SELECT password FROM users",
		"../../etc/passwd",
		"$(rm -rf /)",
		"eval(document.cookie)",
	}
	for _, input := range dangerous {
		if err := v.ValidateText(input); err == nil {
			t.Errorf("ValidateText(%q) should be rejected", input)
		}
	}
}

func TestValidateTextLength(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateText(strings.Repeat("a", 500)); err != nil {
		t.Errorf("500 chars should pass: %v", err)
	}
	if err := v.ValidateText(strings.Repeat("a", 501)); err == nil {
		t.Error("501 chars should be rejected")
	}
}

func TestValidateCountry(t *testing.T) {
	v := NewValidator()

	// Unknown countries are legal; the catalog falls back to the default.
	for _, name := range []string{"", "Perú", "Atlantis"} {
		if err := v.ValidateCountry(name); err != nil {
			t.Errorf("ValidateCountry(%q) = %v, want nil", name, err)
		}
	}

	if err := v.ValidateCountry(strings.Repeat("x", 65)); err == nil {
		t.Error("over-long country name should be rejected")
	}
	if err := v.ValidateCountry("<script>"); err == nil {
		t.Error("injection in country name should be rejected")
	}
}

func TestValidateProduct(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateProduct(catalog.Batido); err != nil {
		t.Errorf("known product rejected: %v", err)
	}
	if err := v.ValidateProduct(catalog.Product("Unobtainium")); err == nil {
		t.Error("unknown product should be rejected")
	}
}

func TestValidateQuantity(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		q  int
		ok bool
	}{
		{0, true},
		{1, true},
		{99, true},
		{-1, false},
		{100, false},
	}

	for _, tt := range tests {
		err := v.ValidateQuantity(tt.q)
		if tt.ok && err != nil {
			t.Errorf("ValidateQuantity(%d) = %v, want nil", tt.q, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("ValidateQuantity(%d) should fail", tt.q)
		}
	}
}
