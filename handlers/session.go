// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/joeyd15/rush-server/auth"
	"github.com/joeyd15/rush-server/cliparse"
	"github.com/joeyd15/rush-server/middleware"
)

// session identifies the caller of an authenticated route. Token is the
// raw signed token; it doubles as the per-session key for poll votes,
// so a fresh sign-in counts as a fresh session.
type session struct {
	AccountID string
	Email     string
	Token     string
}

// requireSession validates the X-Session-Token header. On failure it
// writes a 401 and returns ok=false.
func requireSession(w http.ResponseWriter, r *http.Request, cfg cliparse.Config) (session, bool) {
	token := r.Header.Get("X-Session-Token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Session-Token header is required")
		return session{}, false
	}

	accountID, email, err := auth.ValidateSessionToken(token, cfg.SessionSecret)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid session token")
		return session{}, false
	}

	return session{AccountID: accountID, Email: email, Token: token}, true
}
