// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/umpd-yara/yara-records/ids"
	"github.com/umpd-yara/yara-records/models"
)

// Category sets drawn from by the generator
var (
	IncidentTypes    = []string{"Robbery", "Assault", "Fraud", "Theft", "Cybercrime", "Vandalism"}
	Cities           = []string{"Baltimore", "College Park", "Bethesda", "Rockville", "Silver Spring"}
	IncidentStatuses = []string{models.IncidentOpen, models.IncidentClosed, models.IncidentUnderReview, models.IncidentPending}
	EvidenceKinds    = []string{"Knife", "CCTV Footage", "DNA Sample", "Fingerprint", "Weapon", "Laptop"}
	EvidenceStatuses = []string{"Sealed", "Open", "Stored"}
	ArrestLocations  = []string{"Downtown", "Uptown", "Suburb", "Station"}
)

const (
	lockerCount  = 5
	maxNameLen   = 20
	maxZipLen    = 10
	minHours     = 10
	maxHours     = 100
	phonePattern = "##########"
)

// Generator produces randomized rows. Output is reproducible for a fixed
// seed and clock.
type Generator struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

// NewGenerator returns a generator seeded with seed; 0 picks a random seed.
func NewGenerator(seed uint64, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{faker: gofakeit.New(seed), now: now}
}

// Incident returns the i-th incident (1-based), dated within the last 90 days.
func (g *Generator) Incident(i int) models.Incident {
	now := g.now()
	return models.Incident{
		ID:     ids.Incident(i),
		Type:   g.faker.RandomString(IncidentTypes),
		Street: truncate(g.faker.StreetName(), maxNameLen),
		City:   g.faker.RandomString(Cities),
		Zip:    truncate(g.faker.Zip(), maxZipLen),
		Status: g.faker.RandomString(IncidentStatuses),
		Date:   g.day(now.AddDate(0, 0, -90), now),
	}
}

// Officer returns the i-th officer, aged 25 to 60 and hired 15 to 1 years ago.
func (g *Generator) Officer(i int) models.Officer {
	now := g.now()
	return models.Officer{
		ID:       ids.Officer(i),
		Name:     truncate(g.faker.Name(), maxNameLen),
		Phone:    g.phone(),
		DOB:      g.day(now.AddDate(-60, 0, 0), now.AddDate(-25, 0, 0)),
		HireDate: g.day(now.AddDate(-15, 0, 0), now.AddDate(-1, 0, 0)),
	}
}

// Person returns the i-th person, aged 18 to 80.
func (g *Generator) Person(i int) models.Person {
	now := g.now()
	return models.Person{
		SSN:   ids.Person(i),
		Name:  truncate(g.faker.Name(), maxNameLen),
		DOB:   g.day(now.AddDate(-80, 0, 0), now.AddDate(-18, 0, 0)),
		Phone: g.phone(),
	}
}

// Evidence returns the i-th evidence item attached to a random incident.
func (g *Generator) Evidence(i int, incidentIDs []string) models.Evidence {
	return models.Evidence{
		ID:              ids.Evidence(i),
		Description:     g.faker.RandomString(EvidenceKinds),
		StorageLocation: fmt.Sprintf("Locker%d", g.faker.Number(1, lockerCount)),
		Status:          g.faker.RandomString(EvidenceStatuses),
		IncidentID:      g.faker.RandomString(incidentIDs),
	}
}

// Arrest returns the i-th arrest of a random person within the last 60 days.
func (g *Generator) Arrest(i int, personSSNs []string) models.Arrest {
	now := g.now()
	return models.Arrest{
		ID:        ids.Arrest(i),
		Date:      g.faker.DateRange(now.AddDate(0, 0, -60), now).UTC().Truncate(time.Second),
		Location:  g.faker.RandomString(ArrestLocations),
		Status:    g.faker.RandomString(models.ArrestStatuses),
		PersonSSN: g.faker.RandomString(personSSNs),
	}
}

// Assign pairs a random officer with a random incident.
func (g *Generator) Assign(officerIDs, incidentIDs []string) models.Assign {
	return models.Assign{
		OfficerID:  g.faker.RandomString(officerIDs),
		IncidentID: g.faker.RandomString(incidentIDs),
		HoursSpent: g.faker.Number(minHours, maxHours),
	}
}

// Contain links a random person to a random incident in a random role.
func (g *Generator) Contain(incidentIDs, personSSNs []string) models.Contain {
	return models.Contain{
		IncidentID: g.faker.RandomString(incidentIDs),
		PersonSSN:  g.faker.RandomString(personSSNs),
		Role:       g.faker.RandomString(models.Roles),
	}
}

func (g *Generator) phone() string {
	return g.faker.Numerify(phonePattern)
}

// day picks a calendar date in [start, end]
func (g *Generator) day(start, end time.Time) time.Time {
	t := g.faker.DateRange(start, end).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
