// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package events

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Event is a single calendar entry. Events are never mutated after they
// are added to the store.
type Event struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"` // includes both date and time
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
}

// Announcement is a derived projection of an Event whose date falls in
// the current ISO week. It has no storage of its own.
type Announcement struct {
	Date    time.Time `json:"date"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}

// Store owns the canonical event list and is the sole source for
// announcement derivation.
type Store struct {
	mu     sync.Mutex
	events []Event
}

func NewStore() *Store {
	return &Store{}
}

// Add appends an event with a fresh identifier and returns it. No
// de-duplication and no storage-order guarantee is imposed; read-side
// consumers filter and sort as needed.
func (s *Store) Add(date time.Time, title, description, color string) (Event, error) {
	if strings.TrimSpace(title) == "" {
		return Event{}, fmt.Errorf("%w: event title is required", ErrInvalidArgument)
	}

	ev := Event{
		ID:          uuid.NewString(),
		Date:        date,
		Title:       title,
		Description: description,
		Color:       color,
	}

	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()

	return ev, nil
}

// All returns a snapshot copy of the event list.
func (s *Store) All() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// OnDay returns the events whose date falls on the same calendar day as d.
func (s *Store) OnDay(d time.Time) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Event
	for _, ev := range s.events {
		if SameDay(ev.Date, d) {
			out = append(out, ev)
		}
	}
	return out
}

// Announcements computes the derived announcement list: one entry per
// event whose date falls in the same ISO week as now. Recomputed on
// every call from current store contents; nothing is cached.
func (s *Store) Announcements(now time.Time) []Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Announcement
	for _, ev := range s.events {
		if SameWeek(ev.Date, now) {
			out = append(out, Announcement{
				Date:    ev.Date,
				Title:   ev.Title,
				Content: ev.Description,
			})
		}
	}
	return out
}

// SameWeek reports whether a and b fall in the same ISO week.
func SameWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
