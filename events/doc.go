// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package events holds the shared calendar event store and derives the
announcement list from it.

# Event Store

The Store is an append-only collection of events:

	store := events.NewStore()
	ev, err := store.Add(date, "Rush Week Kickoff", "Meet at the union", "orange")

Events are never edited in place. Consumers take snapshots via All or
OnDay and filter as needed.

# Announcements

Announcements are not stored. They are recomputed on every read as a
projection of the events whose date falls in the same ISO week as the
supplied instant:

	for _, a := range store.Announcements(time.Now()) { ... }

Crossing a week boundary changes the result set without any mutation to
the underlying events.
*/
package events
