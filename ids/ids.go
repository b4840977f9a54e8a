// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ids

import (
	"fmt"
)

// Prefixes for seeded record ids
const (
	PrefixIncident = "I"
	PrefixOfficer  = "O"
	PrefixPerson   = "P"
	PrefixEvidence = "E"
	PrefixArrest   = "A"
)

const (
	// seeded ids start at base+1, e.g. I101
	recordBase  = 100
	recordWidth = 3

	personBase  = 1000
	personWidth = 8
)

// Format returns prefix followed by n zero-padded to width digits.
// Numbers wider than width are not truncated.
func Format(prefix string, n, width int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, n)
}

// Incident returns the id of the i-th seeded incident (1-based): I101, I102...
func Incident(i int) string { return Format(PrefixIncident, recordBase+i, recordWidth) }

// Officer returns the id of the i-th seeded officer: O101, O102...
func Officer(i int) string { return Format(PrefixOfficer, recordBase+i, recordWidth) }

// Evidence returns the id of the i-th seeded evidence item: E101, E102...
func Evidence(i int) string { return Format(PrefixEvidence, recordBase+i, recordWidth) }

// Arrest returns the id of the i-th seeded arrest: A101, A102...
func Arrest(i int) string { return Format(PrefixArrest, recordBase+i, recordWidth) }

// Person returns the SSN-like id of the i-th seeded person: P00001001...
// Always 9 characters.
func Person(i int) string {
	id := Format(PrefixPerson, personBase+i, personWidth)
	if len(id) > 1+personWidth {
		id = id[:1+personWidth]
	}
	return id
}
