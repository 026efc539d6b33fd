// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Poll is a question with parallel option and vote-count lists. The two
// lists are always the same length; counts never go negative. Once a
// poll is active its option set is frozen.
type Poll struct {
	Question   string    `json:"question"`
	Options    []string  `json:"options"`
	VoteCounts []int     `json:"vote_counts"`
	CreatedAt  time.Time `json:"created_at"`
}

// Ratios returns the proportional bar width for each option:
// count / max(counts), with an all-zero tally treated as max 1 so the
// result is a zero ratio rather than a division fault.
func (p Poll) Ratios() []float64 {
	max := 0
	for _, c := range p.VoteCounts {
		if c > max {
			max = c
		}
	}
	if max == 0 {
		max = 1
	}

	out := make([]float64, len(p.VoteCounts))
	for i, c := range p.VoteCounts {
		out[i] = float64(c) / float64(max)
	}
	return out
}

// Engine holds at most one active poll plus an append-only history of
// reset polls in completion order.
type Engine struct {
	mu      sync.Mutex
	active  *Poll
	history []Poll

	// session key -> chosen option index, for "you voted for" display.
	// Cleared on reset; never persisted, so nothing stops the same
	// person voting again from a fresh session. That matches the app's
	// original behavior and is left as-is.
	voted map[string]int
}

func NewEngine() *Engine {
	return &Engine{voted: make(map[string]int)}
}

// Create starts a new poll. The question must be non-empty and at least
// two options must remain non-empty after trimming; blank options are
// dropped rather than rejected, the way the app's builder does.
func (e *Engine) Create(question string, options []string) (Poll, error) {
	if strings.TrimSpace(question) == "" {
		return Poll{}, fmt.Errorf("%w: poll question is required", ErrInvalidArgument)
	}

	kept := make([]string, 0, len(options))
	for _, opt := range options {
		if t := strings.TrimSpace(opt); t != "" {
			kept = append(kept, t)
		}
	}
	if len(kept) < 2 {
		return Poll{}, fmt.Errorf("%w: poll needs at least 2 non-empty options", ErrInvalidArgument)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active != nil {
		return Poll{}, fmt.Errorf("%w: a poll is already active", ErrInvalidArgument)
	}

	p := Poll{
		Question:   question,
		Options:    kept,
		VoteCounts: make([]int, len(kept)),
		CreatedAt:  time.Now(),
	}
	e.active = &p
	return p, nil
}

// Vote increments the count for optionIndex by exactly one and records
// the session's choice. One vote per session per poll.
func (e *Engine) Vote(sessionKey string, optionIndex int) (Poll, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil {
		return Poll{}, fmt.Errorf("%w: no active poll", ErrInvalidArgument)
	}
	if optionIndex < 0 || optionIndex >= len(e.active.Options) {
		return Poll{}, fmt.Errorf("%w: option index %d out of range", ErrInvalidArgument, optionIndex)
	}
	if _, ok := e.voted[sessionKey]; ok {
		return Poll{}, fmt.Errorf("%w: session has already voted", ErrInvalidArgument)
	}

	e.active.VoteCounts[optionIndex]++
	e.voted[sessionKey] = optionIndex
	return e.snapshotLocked(), nil
}

// VotedIndex reports the option this session voted for, if any.
func (e *Engine) VotedIndex(sessionKey string) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	idx, ok := e.voted[sessionKey]
	return idx, ok
}

// Active returns a snapshot of the current poll.
func (e *Engine) Active() (Poll, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active == nil {
		return Poll{}, false
	}
	return e.snapshotLocked(), true
}

// Reset archives the active poll to the history list and clears the
// active slot along with the per-session vote records.
func (e *Engine) Reset() (Poll, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil {
		return Poll{}, fmt.Errorf("%w: no active poll", ErrInvalidArgument)
	}

	archived := e.snapshotLocked()
	e.history = append(e.history, archived)
	e.active = nil
	e.voted = make(map[string]int)
	return archived, nil
}

// History returns the archived polls in completion order.
func (e *Engine) History() []Poll {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Poll, len(e.history))
	copy(out, e.history)
	return out
}

func (e *Engine) snapshotLocked() Poll {
	p := *e.active
	p.Options = append([]string(nil), e.active.Options...)
	p.VoteCounts = append([]int(nil), e.active.VoteCounts...)
	return p
}
