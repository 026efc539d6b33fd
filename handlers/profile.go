// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/joeyd15/rush-server/cliparse"
	"github.com/joeyd15/rush-server/docstore"
	"github.com/joeyd15/rush-server/middleware"
	"github.com/joeyd15/rush-server/models"
	"github.com/joeyd15/rush-server/settings"
)

type ProfileHandler struct {
	db   *sql.DB
	docs *docstore.Store
	cfg  cliparse.Config
}

func NewProfileHandler(db *sql.DB, docs *docstore.Store, cfg cliparse.Config) *ProfileHandler {
	return &ProfileHandler{db: db, docs: docs, cfg: cfg}
}

// profileDoc is the document stored at users/<account-id>.
type profileDoc struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Birthday string `json:"birthday"`
}

// GetProfile handles GET /profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r, h.cfg)
	if !ok {
		return
	}

	var doc profileDoc
	err := h.docs.Get("users/"+sess.AccountID, &doc)
	if err != nil && !errors.Is(err, docstore.ErrNotFound) {
		slog.Error("failed to read profile", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read profile")
		return
	}
	// A missing document just means nothing has been saved yet.

	middleware.JSONResponse(w, http.StatusOK, models.ProfileResponse{
		Username: doc.Username,
		Phone:    doc.Phone,
		Birthday: doc.Birthday,
		Email:    sess.Email,
	})
}

// SaveProfile handles PUT /profile
func (h *ProfileHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r, h.cfg)
	if !ok {
		return
	}

	var req models.SaveProfileRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	doc := profileDoc{Username: req.Username, Phone: req.Phone, Birthday: req.Birthday}
	if err := h.docs.Put("users/"+sess.AccountID, doc); err != nil {
		slog.Error("failed to save profile", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	slog.Info("profile saved", "account_id", sess.AccountID)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Profile saved!"})
}

// GetSettings handles GET /settings
// Unset institution fields fall back to the configured defaults.
func (h *ProfileHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	s, err := settings.Load(h.db)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	if s.SchoolName == "" {
		s.SchoolName = h.cfg.SchoolName
	}
	if s.FraternityName == "" {
		s.FraternityName = h.cfg.OrgName
	}

	middleware.JSONResponse(w, http.StatusOK, s)
}

// SaveSettings handles PUT /settings
func (h *ProfileHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	var s settings.Settings
	if err := middleware.ParseJSONBody(r, &s); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := settings.Save(h.db, s); err != nil {
		slog.Error("failed to save settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, s)
}
