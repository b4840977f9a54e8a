// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umpd-yara/yara-records/db"
	"github.com/umpd-yara/yara-records/models"
	"github.com/umpd-yara/yara-records/testutil"
)

func seedSearchFixtures(t *testing.T, gw *db.Gateway) {
	t.Helper()

	testutil.InsertTestIncident(t, gw, "I101", "Theft", "College Park", "Open")
	testutil.InsertTestIncident(t, gw, "I102", "Assault", "Baltimore", "Closed")
	testutil.InsertTestPerson(t, gw, "P00001001", "Ada Lovelace", "3015550101")
	testutil.InsertTestPerson(t, gw, "P00001002", "Alan Turing", "3015550102")
	testutil.InsertTestArrest(t, gw, "A101", "2024-05-01 13:45:00", "Downtown", "Arrested", "P00001001")
	testutil.InsertTestArrest(t, gw, "A102", "2023-11-12 09:00:00", "Station", "Released", "P00001002")
}

func search(t *testing.T, gw *db.Gateway, term string) *models.Table {
	t.Helper()

	q := db.NewQueries(gw.Dialect())
	tbl, err := gw.Query(context.Background(), q.Search, db.SearchArgs(term)...)
	require.NoError(t, err)
	return tbl
}

func TestSearchByIncidentType(t *testing.T) {
	gw := testutil.SetupTestDB(t)
	seedSearchFixtures(t, gw)

	tbl := search(t, gw, "Theft")

	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, []string{"category", "record_id", "details"}, tbl.Columns)
	assert.Equal(t, models.CategoryIncident, tbl.Rows[0][0])
	assert.Equal(t, "I101", tbl.Rows[0][1])
	assert.Contains(t, tbl.Rows[0][2], "Type: Theft")
	assert.Equal(t, "Type: Theft | City: College Park | Status: Open", tbl.Rows[0][2])
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	gw := testutil.SetupTestDB(t)
	seedSearchFixtures(t, gw)

	tbl := search(t, gw, "tHEFT")
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "I101", tbl.Rows[0][1])
}

func TestSearchByArrestID(t *testing.T) {
	gw := testutil.SetupTestDB(t)
	seedSearchFixtures(t, gw)

	tbl := search(t, gw, "A101")

	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, models.CategoryArrest, tbl.Rows[0][0])
	assert.Equal(t, "A101", tbl.Rows[0][1])
	assert.Equal(t, "Location: Downtown | Status: Arrested | Date: 2024-05-01 13:45:00", tbl.Rows[0][2])
}

func TestSearchMatchesPartialArrestDate(t *testing.T) {
	gw := testutil.SetupTestDB(t)
	seedSearchFixtures(t, gw)

	tbl := search(t, gw, "2023-11")

	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "A102", tbl.Rows[0][1])
}

func TestSearchAcrossCategories(t *testing.T) {
	gw := testutil.SetupTestDB(t)
	seedSearchFixtures(t, gw)

	tbl := search(t, gw, "an")
	assert.Contains(t, tbl.Column("record_id"), "P00001002")

	tbl = search(t, gw, "a")
	categories := tbl.Column("category")
	assert.Contains(t, categories, models.CategoryIncident)
	assert.Contains(t, categories, models.CategoryPerson)
	assert.Contains(t, categories, models.CategoryArrest)
}

func TestSearchNoMatches(t *testing.T) {
	gw := testutil.SetupTestDB(t)
	seedSearchFixtures(t, gw)

	tbl := search(t, gw, "zzz-no-such-record")
	assert.True(t, tbl.Empty())
	assert.Equal(t, []string{"category", "record_id", "details"}, tbl.Columns)
}

func TestSearchTermIsBoundNotInterpolated(t *testing.T) {
	gw := testutil.SetupTestDB(t)
	seedSearchFixtures(t, gw)

	tbl := search(t, gw, "' OR 1=1 --")
	assert.True(t, tbl.Empty())
	assert.Equal(t, 2, testutil.CountRows(t, gw, db.TableIncident, ""))
}
