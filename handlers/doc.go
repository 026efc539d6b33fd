// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Rush API.

# Handler Types

Each handler is a struct with its dependencies injected via a
constructor:

  - LoginHandler: sign-up, sign-in, password reset
  - EventHandler: events, derived announcements, calendar grid
  - PollHandler: poll lifecycle and voting
  - FormHandler: questionnaire builder, responses, submission
  - ChatHandler: direct chats and channels
  - ProfileHandler: profile documents and app settings

# Sessions

Every route except /health and /auth/* requires the X-Session-Token
header carrying a token from sign-up or sign-in. The raw token doubles
as the vote-session key for polls, so signing in again counts as a new
session.

# Poll Lifecycle

	POST /poll          → CreatePoll (question + ≥2 options)
	POST /poll/votes    → Vote (single increment by option index)
	POST /poll/reset    → ResetPoll (archive to history)
	GET  /poll/history  → PollHistory

# Form Lifecycle

Forms move building → active → completed:

	POST   /form/questions      → AddQuestion (building only)
	DELETE /form/questions/{id} → RemoveQuestion (building only)
	POST   /form/start          → StartForm (freezes the question set)
	PUT    /form/responses      → SetResponse (last write wins)
	POST   /form/submit         → SubmitForm (persists via docstore)
	POST   /form/reopen         → ReopenForm (back to the builder)

# Calendar

GET /calendar returns the month grid for ?month=2006-01 (optionally
shifted by ?offset=N months); GET /announcements returns the derived
current-week announcement list, recomputed per request.
*/
package handlers
