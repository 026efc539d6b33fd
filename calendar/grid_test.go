// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package calendar

import (
	"reflect"
	"testing"
	"time"

	"github.com/joeyd15/rush-server/events"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGridPlaceholderAlignment(t *testing.T) {
	tests := []struct {
		name         string
		ref          time.Time
		placeholders int
		days         int
	}{
		{"June 2025 starts Sunday", date(2025, 6, 15), 0, 30},
		{"September 2025 starts Monday", date(2025, 9, 1), 1, 30},
		{"August 2025 starts Friday", date(2025, 8, 20), 5, 31},
		{"February 2025 non-leap", date(2025, 2, 10), 6, 28},
		{"February 2024 leap", date(2024, 2, 10), 4, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := Grid(tt.ref, tt.ref, nil)

			got := 0
			for _, c := range cells {
				if !c.Placeholder {
					break
				}
				got++
			}
			if got != tt.placeholders {
				t.Errorf("Expected %d leading placeholders, got %d", tt.placeholders, got)
			}
			if len(cells)-got != tt.days {
				t.Errorf("Expected %d day cells, got %d", tt.days, len(cells)-got)
			}
			// Day cells must run 1..days in order.
			for i, c := range cells[got:] {
				if c.Day != i+1 {
					t.Fatalf("Cell %d has day %d, expected %d", i, c.Day, i+1)
				}
			}
		})
	}
}

func TestGridIdempotent(t *testing.T) {
	store := events.NewStore()
	store.Add(date(2025, 6, 9), "Kickoff", "", "orange")
	store.Add(date(2025, 6, 21), "Social", "", "blue")

	ref := date(2025, 6, 1)
	now := date(2025, 6, 10)

	a := Grid(ref, now, store.All())
	b := Grid(ref, now, store.All())
	if !reflect.DeepEqual(a, b) {
		t.Error("Grid should yield identical cells for identical inputs")
	}
}

func TestGridEventDotsCappedAtThree(t *testing.T) {
	store := events.NewStore()
	day := date(2025, 6, 9)
	for i := 0; i < 5; i++ {
		store.Add(day.Add(time.Duration(i)*time.Hour), "Event", "", "blue")
	}

	cells := Grid(day, day, store.All())
	var cell Cell
	for _, c := range cells {
		if c.Day == 9 {
			cell = c
		}
	}
	if len(cell.Events) != 3 {
		t.Errorf("Expected 3 event dots, got %d", len(cell.Events))
	}
}

func TestGridAnnouncementFlag(t *testing.T) {
	store := events.NewStore()
	store.Add(date(2025, 6, 9), "This week", "", "blue")
	store.Add(date(2025, 6, 23), "Later", "", "red")

	now := date(2025, 6, 11)
	cells := Grid(date(2025, 6, 1), now, store.All())

	for _, c := range cells {
		switch c.Day {
		case 9:
			if !c.HasAnnouncement {
				t.Error("Day 9 should carry the announcement flag")
			}
		case 23:
			if c.HasAnnouncement {
				t.Error("Day 23 is outside the current week, no announcement flag expected")
			}
		}
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		ref    time.Time
		offset int
		want   time.Time
	}{
		{date(2025, 1, 31), 1, date(2025, 2, 1)},
		{date(2025, 6, 15), -1, date(2025, 5, 1)},
		{date(2025, 12, 10), 1, date(2026, 1, 1)},
		{date(2025, 1, 10), -1, date(2024, 12, 1)},
		{date(2025, 3, 1), 14, date(2026, 5, 1)},
	}

	for _, tt := range tests {
		if got := AddMonths(tt.ref, tt.offset); !got.Equal(tt.want) {
			t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.ref, tt.offset, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(date(2024, 2, 1)); got != 29 {
		t.Errorf("Feb 2024 should have 29 days, got %d", got)
	}
	if got := DaysInMonth(date(2100, 2, 1)); got != 28 {
		t.Errorf("Feb 2100 should have 28 days, got %d", got)
	}
	if got := DaysInMonth(date(2025, 4, 30)); got != 30 {
		t.Errorf("April should have 30 days, got %d", got)
	}
}
