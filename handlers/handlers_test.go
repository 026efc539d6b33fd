// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"testing"

	"github.com/joeyd15/rush-server/auth"
	"github.com/joeyd15/rush-server/cliparse"
)

// sessionHeaders returns headers carrying a fresh signed session token.
// Each call is a distinct session, which matters for poll voting.
func sessionHeaders(t *testing.T, cfg cliparse.Config, email string) map[string]string {
	t.Helper()

	token, err := auth.IssueSessionToken(auth.Account{ID: "test-" + email, Email: email}, cfg.SessionSecret)
	if err != nil {
		t.Fatalf("Failed to issue test session token: %v", err)
	}
	return map[string]string{"X-Session-Token": token}
}
