// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed fills the YARA tables with synthetic records.

# Running

	gen := seed.NewGenerator(0, time.Now)
	report, err := seed.NewLoader(gw, seed.DefaultCounts, gen).Run(ctx)

Run first checks that every table in db.RequiredTables exists and returns
ErrMissingTables without inserting anything if one is absent.

# Order

Tables are filled parents first:

	incident → officer → person → evidence → arrest → assign → contain

Before each child table the ids of its parent tables are read back from the
store and sampled uniformly per row. An empty parent table stops the run
with ErrEmptyPool.

# Failures

A duplicate key skips that single row and is logged. Any other insert error
stops the run; rows already committed stay in place.

# Generated Values

Ids follow the ids package (I101, O101, P00001001, E101, A101). Incidents
are dated within the last 90 days and arrests within the last 60. Officers
are 25 to 60 years old and were hired 15 to 1 years ago; persons are 18 to
80. Names and streets are cut to 20 characters, zip codes to 10.
*/
package seed
