// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package calendar turns a reference date and an event list into a month
display grid.

	cells := calendar.Grid(ref, time.Now(), store.All())

The grid is a flat cell sequence meant to be laid out seven per row:
leading placeholders align day 1 with its weekday column (Sunday-first),
followed by one cell per day of the month. Day cells carry up to three
matching events for color-dot display and a flag for days with a
current-week announcement.

Month navigation uses AddMonths with a +1/-1 offset; there is no bound
in either direction.
*/
package calendar
