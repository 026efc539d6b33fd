// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth is the authentication collaborator: sign-up, sign-in, and
password-reset against the account table, plus session tokens.

Passwords are stored as bcrypt hashes. Sessions are HMAC-signed JWTs
carrying the account ID and email, valid for 24 hours:

	token, err := auth.IssueSessionToken(acct, cfg.SessionSecret)
	id, email, err := auth.ValidateSessionToken(token, cfg.SessionSecret)

Admin status is not stored: it is derived on every check by comparing
the email against the configured reserved admin address.

Collaborator failures surface as sentinel errors (ErrInvalidCredentials,
ErrEmailTaken, ErrUnknownAccount, ErrInvalidToken) that the HTTP layer
passes through to the caller unchanged.
*/
package auth
