package models

import (
	"regexp"
	"strings"
	"time"
)

// Incident status constants
const (
	IncidentOpen        = "Open"
	IncidentClosed      = "Closed"
	IncidentUnderReview = "Under Review"
	IncidentPending     = "Pending"
)

// Arrest status constants
const (
	ArrestArrested           = "Arrested"
	ArrestReleased           = "Released"
	ArrestUnderInvestigation = "Under Investigation"
)

// Contain role constants
const (
	RoleVictim  = "Victim"
	RoleSuspect = "Suspect"
	RoleWitness = "Witness"
)

// Search result categories
const (
	CategoryIncident = "Incident"
	CategoryPerson   = "Person"
	CategoryArrest   = "Arrest"
)

// Statuses offered by the insertion forms. The seeder draws from a wider set.
var (
	IncidentFormStatuses = []string{IncidentOpen, IncidentClosed, IncidentUnderReview}
	ArrestStatuses       = []string{ArrestArrested, ArrestReleased, ArrestUnderInvestigation}
	Roles                = []string{RoleVictim, RoleSuspect, RoleWitness}
)

// Person date-of-birth picker bounds
var (
	PersonDOBMin     = time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	PersonDOBMax     = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	PersonDOBDefault = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Form types
//
// Fields tagged conform:"trim" are trimmed before validation, so a
// whitespace-only value fails the required check.

type IncidentForm struct {
	ID     string `conform:"trim" validate:"required"`
	Type   string `conform:"trim" validate:"required"`
	Street string `conform:"trim" validate:"required"`
	City   string `conform:"trim" validate:"required"`
	Zip    string `conform:"trim" validate:"required"`
	Status string
}

type PersonForm struct {
	SSN   string `conform:"trim" validate:"required"`
	Name  string `conform:"trim" validate:"required"`
	DOB   string
	Phone string `conform:"trim" validate:"required"`
}

type ArrestForm struct {
	ID        string `conform:"trim" validate:"required"`
	PersonSSN string `conform:"trim" validate:"required"`
	Date      string
	Time      string
	Location  string `conform:"trim" validate:"required"`
	Status    string
}

var hourMinute = regexp.MustCompile(`^\d{2}:\d{2}$`)

// CombineDateTime joins a date and a time-of-day into one timestamp string.
// Time inputs that omit seconds get ":00" appended. No check is made that
// the result is a real timestamp.
func CombineDateTime(date, clock string) string {
	if hourMinute.MatchString(clock) {
		clock += ":00"
	}
	return strings.TrimSpace(date + " " + clock)
}

// Domain types

type Incident struct {
	ID     string
	Type   string
	Street string
	City   string
	Zip    string
	Status string
	Date   time.Time
}

type Officer struct {
	ID       string
	Name     string
	Phone    string
	DOB      time.Time
	HireDate time.Time
}

type Person struct {
	SSN   string
	Name  string
	DOB   time.Time
	Phone string
}

type Evidence struct {
	ID              string
	Description     string
	StorageLocation string
	Status          string
	IncidentID      string
}

type Assign struct {
	OfficerID  string
	IncidentID string
	HoursSpent int
}

type Contain struct {
	IncidentID string
	PersonSSN  string
	Role       string
}

type Arrest struct {
	ID        string
	Date      time.Time
	Location  string
	Status    string
	PersonSSN string
}

// Table is a query result with every value rendered as text.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Empty reports whether the table holds no rows.
func (t *Table) Empty() bool {
	return t.Len() == 0
}

// Column returns the values of the named column, or nil if it is absent.
func (t *Table) Column(name string) []string {
	if t == nil {
		return nil
	}
	idx := -1
	for i, c := range t.Columns {
		if strings.EqualFold(c, name) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	out := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, row[idx])
	}
	return out
}
