// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ids formats human-readable record identifiers.

# Format

Every id is a one-letter prefix plus a zero-padded counter:

	ids.Format("I", 7, 3) // "I007"

# Seeded Ids

The seeder numbers rows from 1 and offsets them so ids read naturally:

	ids.Incident(1) // "I101"
	ids.Officer(1)  // "O101"
	ids.Evidence(1) // "E101"
	ids.Arrest(1)   // "A101"
	ids.Person(1)   // "P00001001"

Person ids are always nine characters to fit the SSN column.

These conventions are only used by the seeder. Forms accept any id.
*/
package ids
