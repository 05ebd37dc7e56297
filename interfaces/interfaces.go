// Package interfaces defines the core abstractions of the wellness API so
// handlers and background jobs can be tested against fakes.
package interfaces

import (
	"github.com/fitclub/wellness-api/catalog"
	"github.com/fitclub/wellness-api/session"
)

// SessionStore is the contract for the in-memory session store. Sessions are
// exclusively owned by one client; the store only manages lifetime.
type SessionStore interface {
	Create() *session.Session
	Get(id string) (*session.Session, bool)
	Put(s *session.Session)
	Delete(id string)
	Count() int
}

// Validator is the contract for user input validation.
type Validator interface {
	// ValidateText checks a free-text answer for length and injection
	// patterns.
	ValidateText(input string) error

	// ValidateCountry checks a country selection syntactically. Unknown
	// countries are legal (they fall back to the default market).
	ValidateCountry(name string) error

	// ValidateProduct checks that a product identifier is known.
	ValidateProduct(p catalog.Product) error

	// ValidateQuantity checks a customizer quantity.
	ValidateQuantity(q int) error
}

// Scheduler is the contract for background job scheduling.
type Scheduler interface {
	Start() error
	Stop()
}
