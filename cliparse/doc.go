// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 7874)
  - DatabasePath: sqlite database file (default: rush.db)
  - SessionSecret: Session token signing secret (required)
  - AdminEmail: Reserved admin address (default: admin@rushutk.com)
  - SchoolName, OrgName: Institution defaults for first launch

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_PATH  → -d
	SESSION_SECRET → --session-secret
	ADMIN_EMAIL    → --admin-email
	SCHOOL_NAME    → --school
	ORG_NAME       → --org

CLI flags take precedence over environment variables. ParseFlags returns
an error if SESSION_SECRET is missing; everything else has a default.
*/
package cliparse
