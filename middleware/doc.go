// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Logging

WithLogging wraps handlers with structured request/completion logs:

	mux.HandleFunc("POST /polls", middleware.WithLogging(handler.CreatePoll))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ParseJSONBody(r, &req)

# CORS

CORS wraps the whole mux and answers preflight requests. The
X-Session-Token header used for authenticated routes is allowed
through.
*/
package middleware
