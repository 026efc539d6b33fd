// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the sqlite schema for the server's persistent state.

# Tables

  - account: sign-in credentials (bcrypt hashes)
  - document: arbitrary JSON documents keyed by path (see package docstore)
  - setting: ambient app settings as key/value pairs (see package settings)

# Usage

	dbConn, err := sql.Open("sqlite", cfg.DatabasePath)
	if err != nil { ... }
	if err := db.CreateSchema(dbConn); err != nil { ... }

CreateSchema is idempotent; every statement uses IF NOT EXISTS.
*/
package db
