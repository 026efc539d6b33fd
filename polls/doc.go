// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package polls implements the quick-poll tally engine.

# Lifecycle

The engine holds at most one active poll at a time:

	engine := polls.NewEngine()
	poll, err := engine.Create("Best color?", []string{"Red", "Blue"})
	poll, err = engine.Vote(sessionKey, 0)
	archived, err := engine.Reset()

Create requires a non-empty question and at least two non-empty options
after trimming. Once created, the option set is frozen; the only
mutation is single-increment voting by option index. Reset moves the
poll into an append-only history list, in completion order, and frees
the active slot.

# Votes

Each session votes at most once per poll, tracked by session key so the
UI can show "you voted for". The record is in-memory only and cleared
on reset.

Bar widths for result display come from Poll.Ratios, which normalizes
counts against the leading option and treats an all-zero tally as
all-zero ratios.

Precondition violations (out-of-range index, voting with no active
poll, repeat votes) are rejected with ErrInvalidArgument and leave the
tally unchanged.
*/
package polls
