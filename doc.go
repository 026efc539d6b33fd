// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Rush API server.

Rush is the backend for a campus-organization recruitment app: accounts,
a shared event calendar with derived weekly announcements, quick polls,
recruitment questionnaires, and chat, persisted in an embedded sqlite
database.

# Starting the Server

The server reads configuration from a .env file, environment variables,
or CLI flags:

	SESSION_SECRET=... go run main.go

Or with flags:

	go run main.go -p 7874 -d rush.db -session-secret ...

# Configuration

Required settings:

  - SESSION_SECRET (--session-secret): Secret for session token signing

Optional settings:

  - PORT (-p): Server port (default: 7874)
  - DATABASE_PATH (-d): sqlite file (default: rush.db)
  - ADMIN_EMAIL (--admin-email): Reserved admin address
  - SCHOOL_NAME / ORG_NAME: Institution defaults

# Architecture

The server uses a handler-based architecture with dependency injection:

  - events, calendar, polls, forms, chat: in-memory domain stores
  - docstore: path-addressed JSON documents in sqlite
  - settings: persisted app configuration
  - auth: accounts, bcrypt passwords, JWT sessions
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
