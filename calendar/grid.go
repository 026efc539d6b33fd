// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package calendar

import (
	"time"

	"github.com/joeyd15/rush-server/events"
)

// maxDotsPerDay caps how many event markers a day cell carries.
const maxDotsPerDay = 3

// Cell is one slot in the month grid. Placeholder cells pad the first
// row so day 1 lines up with its weekday column; they carry no date.
type Cell struct {
	Placeholder     bool           `json:"placeholder"`
	Date            time.Time      `json:"date,omitempty"`
	Day             int            `json:"day,omitempty"`
	Events          []events.Event `json:"events,omitempty"`
	HasAnnouncement bool           `json:"has_announcement"`
}

// Grid produces the display cells for the month enclosing ref: leading
// placeholders equal to the weekday index of day 1 (Sunday-first, so a
// month starting on Sunday has none), then one cell per day in order.
// Each day cell carries up to 3 events matching that day and whether an
// announcement (an event in the same ISO week as now) falls on it.
// Pure: identical inputs yield identical cell sequences.
func Grid(ref, now time.Time, evs []events.Event) []Cell {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	days := DaysInMonth(ref)

	cells := make([]Cell, 0, int(first.Weekday())+days)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, Cell{Placeholder: true})
	}

	for day := 1; day <= days; day++ {
		date := first.AddDate(0, 0, day-1)
		cell := Cell{Date: date, Day: day}
		for _, ev := range evs {
			if !events.SameDay(ev.Date, date) {
				continue
			}
			if len(cell.Events) < maxDotsPerDay {
				cell.Events = append(cell.Events, ev)
			}
			if events.SameWeek(ev.Date, now) {
				cell.HasAnnouncement = true
			}
		}
		cells = append(cells, cell)
	}

	return cells
}

// DaysInMonth returns the day count of the month enclosing ref,
// handling 28-31 day months and leap years.
func DaysInMonth(ref time.Time) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location()).Day()
}

// AddMonths moves ref by a whole-month offset, anchored to the first of
// the month so day-of-month overflow never skips a month. Navigation is
// unbounded in either direction.
func AddMonths(ref time.Time, offset int) time.Time {
	return time.Date(ref.Year(), ref.Month()+time.Month(offset), 1, 0, 0, 0, 0, ref.Location())
}
