// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package events

import (
	"errors"
	"testing"
	"time"
)

func TestAddEvent(t *testing.T) {
	store := NewStore()

	ev, err := store.Add(time.Date(2025, 6, 9, 18, 30, 0, 0, time.UTC), "Kickoff", "Meet at the union", "orange")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if ev.ID == "" {
		t.Error("Expected a generated event ID")
	}
	if len(store.All()) != 1 {
		t.Errorf("Expected 1 event, got %d", len(store.All()))
	}
}

func TestAddEventRequiresTitle(t *testing.T) {
	store := NewStore()

	_, err := store.Add(time.Now(), "   ", "no title", "blue")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
	if len(store.All()) != 0 {
		t.Error("Store should be unchanged after a rejected add")
	}
}

func TestAnnouncementsFilterByWeek(t *testing.T) {
	store := NewStore()

	// Monday and Friday of ISO week 24, 2025.
	inWeek1 := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)
	inWeek2 := time.Date(2025, 6, 13, 19, 0, 0, 0, time.UTC)
	// The following Monday, week 25.
	nextWeek := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

	store.Add(inWeek1, "Interview Night", "Bring a resume", "blue")
	store.Add(inWeek2, "Social", "Pizza at the house", "green")
	store.Add(nextWeek, "Bid Day", "Results announced", "red")

	now := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	anns := store.Announcements(now)
	if len(anns) != 2 {
		t.Fatalf("Expected 2 announcements in week, got %d", len(anns))
	}
	if anns[0].Title != "Interview Night" || anns[1].Title != "Social" {
		t.Errorf("Unexpected announcements: %+v", anns)
	}
	if anns[0].Content != "Bring a resume" {
		t.Errorf("Announcement content should carry the event description, got %q", anns[0].Content)
	}
}

func TestAnnouncementsTrackEvaluationInstant(t *testing.T) {
	store := NewStore()
	store.Add(time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC), "Interview Night", "", "blue")

	during := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	after := time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC)

	if got := len(store.Announcements(during)); got != 1 {
		t.Errorf("Expected 1 announcement during the week, got %d", got)
	}
	// Same store contents, evaluated across the week boundary.
	if got := len(store.Announcements(after)); got != 0 {
		t.Errorf("Expected 0 announcements the week after, got %d", got)
	}
}

func TestOnDay(t *testing.T) {
	store := NewStore()
	store.Add(time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC), "Morning", "", "blue")
	store.Add(time.Date(2025, 6, 9, 21, 0, 0, 0, time.UTC), "Evening", "", "red")
	store.Add(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC), "Tomorrow", "", "green")

	got := store.OnDay(time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC))
	if len(got) != 2 {
		t.Fatalf("Expected 2 events on the day, got %d", len(got))
	}
}

func TestSameWeekYearBoundary(t *testing.T) {
	// 2024-12-30 and 2025-01-03 are both ISO week 1 of 2025.
	a := time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	if !SameWeek(a, b) {
		t.Error("Dates spanning the year boundary in ISO week 1 should match")
	}

	// 2024-12-29 is still ISO week 52 of 2024.
	c := time.Date(2024, 12, 29, 0, 0, 0, 0, time.UTC)
	if SameWeek(a, c) {
		t.Error("Adjacent ISO weeks should not match")
	}
}
