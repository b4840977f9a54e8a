// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/umpd-yara/yara-records/db"
	"github.com/umpd-yara/yara-records/models"
)

var (
	ErrMissingTables = errors.New("required tables missing")
	ErrEmptyPool     = errors.New("no parent rows to reference")
)

// Counts is the number of rows attempted per table.
type Counts struct {
	Incidents int
	Officers  int
	Persons   int
	Evidence  int
	Arrests   int
	Assign    int
	Contain   int
}

var DefaultCounts = Counts{
	Incidents: 100,
	Officers:  80,
	Persons:   150,
	Evidence:  100,
	Arrests:   100,
	Assign:    100,
	Contain:   100,
}

// TableReport is the outcome for one table.
type TableReport struct {
	Table    string
	Inserted int
	Skipped  int
}

// Report lists per-table outcomes in insertion order.
type Report struct {
	Tables []TableReport
}

func (r Report) Inserted() int {
	n := 0
	for _, t := range r.Tables {
		n += t.Inserted
	}
	return n
}

func (r Report) Skipped() int {
	n := 0
	for _, t := range r.Tables {
		n += t.Skipped
	}
	return n
}

// Table returns the outcome for the named table.
func (r Report) Table(name string) (TableReport, bool) {
	for _, t := range r.Tables {
		if t.Table == name {
			return t, true
		}
	}
	return TableReport{}, false
}

func (r Report) String() string {
	var b strings.Builder
	for _, t := range r.Tables {
		fmt.Fprintf(&b, "%-9s %s inserted, %s skipped\n",
			t.Table, humanize.Comma(int64(t.Inserted)), humanize.Comma(int64(t.Skipped)))
	}
	fmt.Fprintf(&b, "total     %s inserted, %s skipped\n",
		humanize.Comma(int64(r.Inserted())), humanize.Comma(int64(r.Skipped())))
	return b.String()
}

// Loader fills the YARA tables with synthetic rows in foreign key order.
type Loader struct {
	gw     db.Runner
	q      db.Queries
	counts Counts
	gen    *Generator
}

func NewLoader(gw db.Runner, counts Counts, gen *Generator) *Loader {
	return &Loader{gw: gw, q: db.NewQueries(gw.Dialect()), counts: counts, gen: gen}
}

// Run checks that every required table exists, then inserts incidents,
// officers, persons, evidence, arrests, assignments and incident links in
// that order. Duplicate keys are skipped; any other error stops the run.
func (l *Loader) Run(ctx context.Context) (Report, error) {
	var report Report

	missing, err := db.MissingTables(ctx, l.gw)
	if err != nil {
		return report, err
	}
	if len(missing) > 0 {
		return report, fmt.Errorf("%w: %s", ErrMissingTables, strings.Join(missing, ", "))
	}

	steps := []struct {
		table string
		run   func(context.Context) (TableReport, error)
	}{
		{db.TableIncident, l.incidents},
		{db.TableOfficer, l.officers},
		{db.TablePerson, l.persons},
		{db.TableEvidence, l.evidence},
		{db.TableArrest, l.arrests},
		{db.TableAssign, l.assignments},
		{db.TableContain, l.contains},
	}

	for _, step := range steps {
		tr, err := step.run(ctx)
		if err != nil {
			return report, fmt.Errorf("failed to seed %s: %w", step.table, err)
		}
		report.Tables = append(report.Tables, tr)
		slog.Info("table seeded", "table", tr.Table, "inserted", tr.Inserted, "skipped", tr.Skipped)
	}

	return report, nil
}

// insert runs stmt n times with the args built for each 1-based row
func (l *Loader) insert(ctx context.Context, table, stmt string, n int, row func(i int) []any) (TableReport, error) {
	tr := TableReport{Table: table}

	for i := 1; i <= n; i++ {
		args := row(i)
		err := l.gw.Exec(ctx, stmt, args...)
		if err == nil {
			tr.Inserted++
			continue
		}
		if l.gw.Dialect().IsDuplicateKey(err) {
			slog.Warn("skipped duplicate", "table", table, "key", args[0])
			tr.Skipped++
			continue
		}
		return tr, err
	}

	return tr, nil
}

// pool reads the key column of a parent table. Only called when child
// rows will be generated.
func (l *Loader) pool(ctx context.Context, query, table string) ([]string, error) {
	t, err := l.gw.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s ids: %w", table, err)
	}
	if t.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrEmptyPool, table)
	}

	ids := make([]string, 0, t.Len())
	for _, r := range t.Rows {
		ids = append(ids, r[0])
	}
	return ids, nil
}

func (l *Loader) incidents(ctx context.Context) (TableReport, error) {
	return l.insert(ctx, db.TableIncident, l.q.InsertIncident, l.counts.Incidents, func(i int) []any {
		r := l.gen.Incident(i)
		return []any{r.ID, r.Type, r.Street, r.City, r.Zip, r.Status, r.Date.Format(models.DateLayout)}
	})
}

func (l *Loader) officers(ctx context.Context) (TableReport, error) {
	return l.insert(ctx, db.TableOfficer, l.q.InsertOfficer, l.counts.Officers, func(i int) []any {
		r := l.gen.Officer(i)
		return []any{r.ID, r.Name, r.Phone, r.DOB.Format(models.DateLayout), r.HireDate.Format(models.DateLayout)}
	})
}

func (l *Loader) persons(ctx context.Context) (TableReport, error) {
	return l.insert(ctx, db.TablePerson, l.q.InsertPerson, l.counts.Persons, func(i int) []any {
		r := l.gen.Person(i)
		return []any{r.SSN, r.Name, r.DOB.Format(models.DateLayout), r.Phone}
	})
}

func (l *Loader) evidence(ctx context.Context) (TableReport, error) {
	if l.counts.Evidence == 0 {
		return TableReport{Table: db.TableEvidence}, nil
	}

	incidents, err := l.pool(ctx, l.q.IncidentIDs, db.TableIncident)
	if err != nil {
		return TableReport{Table: db.TableEvidence}, err
	}

	return l.insert(ctx, db.TableEvidence, l.q.InsertEvidence, l.counts.Evidence, func(i int) []any {
		r := l.gen.Evidence(i, incidents)
		return []any{r.ID, r.Description, r.StorageLocation, r.Status, r.IncidentID}
	})
}

func (l *Loader) arrests(ctx context.Context) (TableReport, error) {
	if l.counts.Arrests == 0 {
		return TableReport{Table: db.TableArrest}, nil
	}

	persons, err := l.pool(ctx, l.q.PersonSSNs, db.TablePerson)
	if err != nil {
		return TableReport{Table: db.TableArrest}, err
	}

	return l.insert(ctx, db.TableArrest, l.q.InsertArrest, l.counts.Arrests, func(i int) []any {
		r := l.gen.Arrest(i, persons)
		return []any{r.ID, r.Date.Format(models.DateTimeLayout), r.Location, r.Status, r.PersonSSN}
	})
}

func (l *Loader) assignments(ctx context.Context) (TableReport, error) {
	if l.counts.Assign == 0 {
		return TableReport{Table: db.TableAssign}, nil
	}

	incidents, err := l.pool(ctx, l.q.IncidentIDs, db.TableIncident)
	if err != nil {
		return TableReport{Table: db.TableAssign}, err
	}
	officers, err := l.pool(ctx, l.q.OfficerIDs, db.TableOfficer)
	if err != nil {
		return TableReport{Table: db.TableAssign}, err
	}

	return l.insert(ctx, db.TableAssign, l.q.InsertAssign, l.counts.Assign, func(int) []any {
		r := l.gen.Assign(officers, incidents)
		return []any{r.OfficerID, r.IncidentID, r.HoursSpent}
	})
}

func (l *Loader) contains(ctx context.Context) (TableReport, error) {
	if l.counts.Contain == 0 {
		return TableReport{Table: db.TableContain}, nil
	}

	incidents, err := l.pool(ctx, l.q.IncidentIDs, db.TableIncident)
	if err != nil {
		return TableReport{Table: db.TableContain}, err
	}
	persons, err := l.pool(ctx, l.q.PersonSSNs, db.TablePerson)
	if err != nil {
		return TableReport{Table: db.TableContain}, err
	}

	return l.insert(ctx, db.TableContain, l.q.InsertContain, l.counts.Contain, func(int) []any {
		r := l.gen.Contain(incidents, persons)
		return []any{r.IncidentID, r.PersonSSN, r.Role}
	})
}
