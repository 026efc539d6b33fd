// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/joeyd15/rush-server/calendar"
	"github.com/joeyd15/rush-server/events"
	"github.com/joeyd15/rush-server/models"
	"github.com/joeyd15/rush-server/testutil"
)

func TestAddEvent(t *testing.T) {
	cfg := testutil.GetTestConfig()
	store := events.NewStore()
	handler := NewEventHandler(store, cfg)
	headers := sessionHeaders(t, cfg, "joey@rushutk.com")

	w := httptest.NewRecorder()
	handler.AddEvent(w, testutil.MakeRequest("POST", "/events", models.AddEventRequest{
		Date:        time.Date(2025, 6, 9, 18, 0, 0, 0, time.UTC),
		Title:       "Rush Week Kickoff",
		Description: "Meet at the union",
		Color:       "orange",
	}, headers))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var ev events.Event
	testutil.AssertJSON(t, w, &ev)
	if ev.ID == "" || ev.Title != "Rush Week Kickoff" {
		t.Errorf("Unexpected event: %+v", ev)
	}

	// Blank title rejected.
	w = httptest.NewRecorder()
	handler.AddEvent(w, testutil.MakeRequest("POST", "/events",
		models.AddEventRequest{Title: " "}, headers))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestListEventsByDay(t *testing.T) {
	cfg := testutil.GetTestConfig()
	store := events.NewStore()
	handler := NewEventHandler(store, cfg)
	headers := sessionHeaders(t, cfg, "joey@rushutk.com")

	store.Add(time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC), "Morning", "", "blue")
	store.Add(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC), "Next day", "", "red")

	w := httptest.NewRecorder()
	handler.ListEvents(w, testutil.MakeRequest("GET", "/events?day=2025-06-09", nil, headers))
	testutil.AssertStatus(t, w, http.StatusOK)

	var evs []events.Event
	testutil.AssertJSON(t, w, &evs)
	if len(evs) != 1 || evs[0].Title != "Morning" {
		t.Errorf("Unexpected day events: %+v", evs)
	}

	w = httptest.NewRecorder()
	handler.ListEvents(w, testutil.MakeRequest("GET", "/events?day=junk", nil, headers))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestAnnouncementsEndpoint(t *testing.T) {
	cfg := testutil.GetTestConfig()
	store := events.NewStore()
	handler := NewEventHandler(store, cfg)
	headers := sessionHeaders(t, cfg, "joey@rushutk.com")

	// One event right now (always in the current week), one far away.
	store.Add(time.Now(), "This week", "details", "blue")
	store.Add(time.Now().AddDate(0, 6, 0), "Far future", "", "red")

	w := httptest.NewRecorder()
	handler.Announcements(w, testutil.MakeRequest("GET", "/announcements", nil, headers))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AnnouncementsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Announcements) != 1 {
		t.Fatalf("Expected 1 announcement, got %d", len(resp.Announcements))
	}
	if resp.Announcements[0].Title != "This week" || resp.Announcements[0].PostedAgo == "" {
		t.Errorf("Unexpected announcement: %+v", resp.Announcements[0])
	}
}

func TestCalendarGridEndpoint(t *testing.T) {
	cfg := testutil.GetTestConfig()
	store := events.NewStore()
	handler := NewEventHandler(store, cfg)
	headers := sessionHeaders(t, cfg, "joey@rushutk.com")

	store.Add(time.Date(2025, 6, 9, 18, 0, 0, 0, time.UTC), "Kickoff", "", "orange")

	w := httptest.NewRecorder()
	handler.CalendarGrid(w, testutil.MakeRequest("GET", "/calendar?month=2025-06", nil, headers))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CalendarResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Month != "June 2025" {
		t.Errorf("Month = %q", resp.Month)
	}
	// June 2025 starts on a Sunday: no placeholders, 30 day cells.
	if len(resp.Cells) != 30 {
		t.Errorf("Expected 30 cells, got %d", len(resp.Cells))
	}

	found := false
	for _, c := range resp.Cells {
		if c.Day == 9 && len(c.Events) == 1 {
			found = true
		}
	}
	if !found {
		t.Error("Day 9 should carry its event")
	}
}

func TestCalendarGridOffsetNavigation(t *testing.T) {
	cfg := testutil.GetTestConfig()
	handler := NewEventHandler(events.NewStore(), cfg)
	headers := sessionHeaders(t, cfg, "joey@rushutk.com")

	w := httptest.NewRecorder()
	handler.CalendarGrid(w, testutil.MakeRequest("GET", "/calendar?month=2025-01&offset=-1", nil, headers))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CalendarResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Month != "December 2024" {
		t.Errorf("Month = %q, want December 2024", resp.Month)
	}

	nonPlaceholder := 0
	for _, c := range resp.Cells {
		if !c.Placeholder {
			nonPlaceholder++
		}
	}
	if nonPlaceholder != calendar.DaysInMonth(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected 31 day cells, got %d", nonPlaceholder)
	}
}
