package store

import (
	"strings"

	"github.com/google/uuid"
)

// Identifier prefixes per entity kind.
const (
	PrefixPatient      = "PAT"
	PrefixDoctor       = "DOC"
	PrefixAppointment  = "APT"
	PrefixPrescription = "PRES"
	PrefixBill         = "BILL"
)

// NewID proposes a fresh identifier: the kind prefix plus the first eight hex
// digits of a random UUID, uppercased. The store's insert path is the actual
// uniqueness enforcement point; this only has to make collisions rare.
func NewID(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}

// EnsureID keeps a caller-supplied identifier as-is and synthesizes one
// otherwise.
func EnsureID(supplied, prefix string) string {
	if trimmed := strings.TrimSpace(supplied); trimmed != "" {
		return trimmed
	}
	return NewID(prefix)
}
