// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umpd-yara/yara-records/db"
	"github.com/umpd-yara/yara-records/testutil"
)

func TestCreateSchemaIsIdempotent(t *testing.T) {
	gw := testutil.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.CreateSchema(ctx, gw))

	missing, err := db.MissingTables(ctx, gw)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestMissingTables(t *testing.T) {
	gw := testutil.SetupEmptyDB(t)
	ctx := context.Background()

	missing, err := db.MissingTables(ctx, gw)
	require.NoError(t, err)
	assert.Equal(t, db.RequiredTables, missing)

	require.NoError(t, gw.Exec(ctx, `CREATE TABLE incident (incident_id TEXT PRIMARY KEY)`))

	missing, err = db.MissingTables(ctx, gw)
	require.NoError(t, err)
	assert.NotContains(t, missing, db.TableIncident)
	assert.Len(t, missing, len(db.RequiredTables)-1)
}

func TestGatewayQueryRendersText(t *testing.T) {
	gw := testutil.SetupTestDB(t)
	ctx := context.Background()

	testutil.InsertTestIncident(t, gw, "I102", "Theft", "Bethesda", "Open")
	testutil.InsertTestIncident(t, gw, "I101", "Fraud", "Rockville", "Closed")

	q := db.NewQueries(gw.Dialect())
	tbl, err := gw.Query(ctx, q.ListIncidents)
	require.NoError(t, err)

	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{
		"incident_id", "incident_type", "incident_street", "incident_city",
		"incident_zip", "incident_status", "incident_date",
	}, tbl.Columns)
	assert.Equal(t, []string{"I101", "I102"}, tbl.Column("incident_id"))
	assert.Equal(t, "2024-03-15", tbl.Rows[0][6])
}

func TestGatewayExecReturnsDuplicateKey(t *testing.T) {
	gw := testutil.SetupTestDB(t)
	ctx := context.Background()

	testutil.InsertTestPerson(t, gw, "P00001001", "Ada Lovelace", "3015550101")

	q := db.NewQueries(gw.Dialect())
	err := gw.Exec(ctx, q.InsertPerson, "P00001001", "Someone Else", "1990-01-01", "3015550102")
	require.Error(t, err)
	assert.True(t, gw.Dialect().IsDuplicateKey(err))

	assert.Equal(t, 1, testutil.CountRows(t, gw, db.TablePerson, "person_ssn = ?", "P00001001"))
}

func TestGatewayExecForeignKeyIsNotDuplicate(t *testing.T) {
	gw := testutil.SetupTestDB(t)
	ctx := context.Background()

	q := db.NewQueries(gw.Dialect())
	err := gw.Exec(ctx, q.InsertArrest, "A101", "2024-05-01 10:00:00", "Downtown", "Arrested", "P99999999")
	require.Error(t, err)
	assert.False(t, gw.Dialect().IsDuplicateKey(err))
	assert.Equal(t, 0, testutil.CountRows(t, gw, db.TableArrest, ""))
}

func TestListArrestsJoinsPersonNewestFirst(t *testing.T) {
	gw := testutil.SetupTestDB(t)
	ctx := context.Background()

	testutil.InsertTestPerson(t, gw, "P00001001", "Ada Lovelace", "3015550101")
	testutil.InsertTestArrest(t, gw, "A101", "2024-01-10 08:00:00", "Downtown", "Arrested", "P00001001")
	testutil.InsertTestArrest(t, gw, "A102", "2024-02-20 17:30:00", "Uptown", "Released", "P00001001")

	q := db.NewQueries(gw.Dialect())
	tbl, err := gw.Query(ctx, q.ListArrests)
	require.NoError(t, err)

	assert.Equal(t, []string{"A102", "A101"}, tbl.Column("arrest_id"))
	assert.Equal(t, []string{"Ada Lovelace", "Ada Lovelace"}, tbl.Column("person_name"))
	assert.Equal(t, "2024-02-20 17:30:00", tbl.Rows[0][1])
}

func TestListArrestsKeepsMidnightTime(t *testing.T) {
	gw := testutil.SetupTestDB(t)
	ctx := context.Background()

	testutil.InsertTestPerson(t, gw, "P00001001", "Ada Lovelace", "3015550101")
	testutil.InsertTestArrest(t, gw, "A101", "2024-05-01 00:00:00", "Station", "Arrested", "P00001001")

	q := db.NewQueries(gw.Dialect())
	tbl, err := gw.Query(ctx, q.ListArrests)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, []string{"2024-05-01 00:00:00"}, tbl.Column("arrest_date"))

	tbl, err = gw.Query(ctx, q.Search, db.SearchArgs("A101")...)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Contains(t, tbl.Rows[0][2], "Date: 2024-05-01 00:00:00")
}
