// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/joeyd15/rush-server/auth"
	"github.com/joeyd15/rush-server/cliparse"
	"github.com/joeyd15/rush-server/middleware"
	"github.com/joeyd15/rush-server/models"
)

type LoginHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewLoginHandler(db *sql.DB, cfg cliparse.Config) *LoginHandler {
	return &LoginHandler{db: db, cfg: cfg}
}

// SignUp handles POST /auth/signup
func (h *LoginHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	acct, err := auth.SignUp(h.db, req.Email, req.Password)
	if errors.Is(err, auth.ErrEmailTaken) {
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		return
	}
	if errors.Is(err, auth.ErrInvalidCredentials) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email and password are required")
		return
	}
	if err != nil {
		slog.Error("failed to create account", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	h.respondWithSession(w, http.StatusCreated, acct)
}

// SignIn handles POST /auth/signin
func (h *LoginHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	acct, err := auth.SignIn(h.db, req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		// Collaborator errors pass through as-is.
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to sign in", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	h.respondWithSession(w, http.StatusOK, acct)
}

// ResetPassword handles POST /auth/reset
func (h *LoginHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := auth.RequestReset(h.db, req.Email)
	if errors.Is(err, auth.ErrUnknownAccount) {
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to request reset", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to request reset")
		return
	}

	slog.Info("password reset requested", "email", req.Email)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "A reset email has been sent.",
	})
}

func (h *LoginHandler) respondWithSession(w http.ResponseWriter, status int, acct auth.Account) {
	token, err := auth.IssueSessionToken(acct, h.cfg.SessionSecret)
	if err != nil {
		slog.Error("failed to issue session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("session issued", "account_id", acct.ID)

	middleware.JSONResponse(w, status, models.SessionResponse{
		Token:   token,
		Email:   acct.Email,
		IsAdmin: auth.IsAdmin(acct.Email, h.cfg.AdminEmail),
	})
}
