// Package validation checks user-supplied answers before they enter the
// session record: free-text sanitation, country and product identifiers, and
// customizer quantities.
package validation

import (
	"fmt"
	"strings"

	"github.com/fitclub/wellness-api/catalog"
	"github.com/fitclub/wellness-api/interfaces"
)

// Dangerous substrings checked with strings.Contains; much cheaper than a
// regex for plain patterns.
var dangerousPatterns = []string{
	"<script", "</script>", "javascript:", "vbscript:", "onload=", "onerror=",
	"onclick=", "eval(", "expression(", "@import",
	"' or ", "\" or ", "union select", "drop table", "delete from", "insert into",
	"--", "/*", "*/", "exec(", "execute(",
	"`", "$(", "${",
	"../", "..\\", "%2e%2e", "file://",
}

const maxTextLength = 500

// validProducts is derived once from the default market; product identifiers
// are the same in every market.
var validProducts = func() map[catalog.Product]bool {
	out := make(map[catalog.Product]bool)
	for p := range catalog.Lookup(catalog.DefaultCountry).Prices {
		out[p] = true
	}
	return out
}()

// ValidatorImpl implements interfaces.Validator.
type ValidatorImpl struct{}

var _ interfaces.Validator = (*ValidatorImpl)(nil)

// NewValidator creates the input validator.
func NewValidator() interfaces.Validator {
	return &ValidatorImpl{}
}

// ValidateText checks a free-text answer for length and injection patterns.
func (v *ValidatorImpl) ValidateText(input string) error {
	if len(input) > maxTextLength {
		return fmt.Errorf("input too long: %d characters (max %d)", len(input), maxTextLength)
	}
	lower := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lower, pattern) {
			return fmt.Errorf("input contains disallowed pattern")
		}
	}
	return nil
}

// ValidateCountry checks a country selection syntactically. Unknown names are
// accepted: the catalog falls back to the default market by design.
func (v *ValidatorImpl) ValidateCountry(name string) error {
	if len(name) > 64 {
		return fmt.Errorf("country name too long: %d characters", len(name))
	}
	return v.ValidateText(name)
}

// ValidateProduct checks that a product identifier is known.
func (v *ValidatorImpl) ValidateProduct(p catalog.Product) error {
	if !validProducts[p] {
		return fmt.Errorf("unknown product: %q", p)
	}
	return nil
}

// ValidateQuantity checks a customizer quantity.
func (v *ValidatorImpl) ValidateQuantity(q int) error {
	if q < 0 {
		return fmt.Errorf("quantity cannot be negative: %d", q)
	}
	if q > 99 {
		return fmt.Errorf("quantity too large: %d (max 99)", q)
	}
	return nil
}
