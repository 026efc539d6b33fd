// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/joeyd15/rush-server/calendar"
	"github.com/joeyd15/rush-server/cliparse"
	"github.com/joeyd15/rush-server/events"
	"github.com/joeyd15/rush-server/middleware"
	"github.com/joeyd15/rush-server/models"
)

type EventHandler struct {
	store *events.Store
	cfg   cliparse.Config
}

func NewEventHandler(store *events.Store, cfg cliparse.Config) *EventHandler {
	return &EventHandler{store: store, cfg: cfg}
}

// AddEvent handles POST /events
func (h *EventHandler) AddEvent(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	var req models.AddEventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ev, err := h.store.Add(req.Date, req.Title, req.Description, req.Color)
	if errors.Is(err, events.ErrInvalidArgument) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, ev)
}

// ListEvents handles GET /events
// With ?day=2006-01-02 it returns only that day's events.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	if day := r.URL.Query().Get("day"); day != "" {
		d, err := time.Parse("2006-01-02", day)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "day must be formatted 2006-01-02")
			return
		}
		middleware.JSONResponse(w, http.StatusOK, h.store.OnDay(d))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.store.All())
}

// Announcements handles GET /announcements
// The current-week filter is evaluated at request time.
func (h *EventHandler) Announcements(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	now := time.Now()
	anns := h.store.Announcements(now)

	items := make([]models.AnnouncementItem, 0, len(anns))
	for _, a := range anns {
		items = append(items, models.AnnouncementItem{
			Announcement: a,
			PostedAgo:    humanize.RelTime(a.Date, now, "ago", "from now"),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.AnnouncementsResponse{Announcements: items})
}

// CalendarGrid handles GET /calendar
// ?month=2006-01 picks the month; omitted, the current month is used.
// ?offset=N navigates N whole months from there (negative for back).
func (h *EventHandler) CalendarGrid(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	now := time.Now()
	ref := now
	if month := r.URL.Query().Get("month"); month != "" {
		m, err := time.Parse("2006-01", month)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "month must be formatted 2006-01")
			return
		}
		ref = m
	}
	if offset := r.URL.Query().Get("offset"); offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "offset must be an integer")
			return
		}
		ref = calendar.AddMonths(ref, n)
	}

	middleware.JSONResponse(w, http.StatusOK, models.CalendarResponse{
		Month: ref.Format("January 2006"),
		Cells: calendar.Grid(ref, now, h.store.All()),
	})
}
