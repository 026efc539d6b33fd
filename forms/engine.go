// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package forms

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Question types.
const (
	TypeQuantitative = "quantitative" // 1-5 scale
	TypeQualitative  = "qualitative"  // free text
)

// Form states.
const (
	StateBuilding  = "building"  // structural edits allowed
	StateActive    = "active"    // response input only
	StateCompleted = "completed" // read-only, awaiting return to builder
)

// Question is one form entry. Its identifier is stable from creation
// and the question is immutable once the form starts.
type Question struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"`
}

// Response pairs a question identifier with the submitted answer text.
// Quantitative answers are "1".."5" by UI convention; the data layer
// does not enforce the range.
type Response struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// Submission is the write-once result of a submit, shaped for the
// document store: a timestamp plus question-text/answer pairs.
type Submission struct {
	Timestamp time.Time         `json:"timestamp"`
	Responses []SubmissionEntry `json:"responses"`
}

type SubmissionEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Engine runs the form builder state machine:
// building -> active -> completed, then back to building explicitly.
type Engine struct {
	mu        sync.Mutex
	state     string
	questions []Question
	responses map[string]string
}

func NewEngine() *Engine {
	return &Engine{state: StateBuilding}
}

// State reports the current lifecycle state.
func (e *Engine) State() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// AddQuestion appends a question with a fresh identifier. Only allowed
// while building. An empty qtype defaults to quantitative.
func (e *Engine) AddQuestion(text, qtype string) (Question, error) {
	if strings.TrimSpace(text) == "" {
		return Question{}, fmt.Errorf("%w: question text is required", ErrInvalidArgument)
	}
	switch qtype {
	case "":
		qtype = TypeQuantitative
	case TypeQuantitative, TypeQualitative:
	default:
		return Question{}, fmt.Errorf("%w: unknown question type %q", ErrInvalidArgument, qtype)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateBuilding {
		return Question{}, fmt.Errorf("%w: form is not in the building state", ErrInvalidArgument)
	}

	q := Question{ID: uuid.NewString(), Text: text, Type: qtype}
	e.questions = append(e.questions, q)
	return q, nil
}

// RemoveQuestion deletes a question by identifier. Only allowed while
// building.
func (e *Engine) RemoveQuestion(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateBuilding {
		return fmt.Errorf("%w: form is not in the building state", ErrInvalidArgument)
	}
	for i, q := range e.questions {
		if q.ID == id {
			e.questions = append(e.questions[:i], e.questions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: no question with id %s", ErrInvalidArgument, id)
}

// Questions returns a snapshot of the current question list.
func (e *Engine) Questions() []Question {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Question, len(e.questions))
	copy(out, e.questions)
	return out
}

// Start freezes the question list and opens the form for responses. A
// form with zero questions may start; it just yields an empty
// submission.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateBuilding {
		return fmt.Errorf("%w: form is not in the building state", ErrInvalidArgument)
	}
	e.state = StateActive
	e.responses = make(map[string]string)
	return nil
}

// SetResponse records the answer for a question in the frozen set.
// Last write wins; no history is kept.
func (e *Engine) SetResponse(questionID, answer string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateActive {
		return fmt.Errorf("%w: form is not active", ErrInvalidArgument)
	}
	for _, q := range e.questions {
		if q.ID == questionID {
			e.responses[questionID] = answer
			return nil
		}
	}
	return fmt.Errorf("%w: no question with id %s", ErrInvalidArgument, questionID)
}

// Submit produces one response per frozen question, in question order,
// defaulting unanswered questions to the empty string. It returns the
// responses alongside a Submission document for external persistence,
// clears local response state, and marks the form completed. A new
// building phase begins only with an explicit Reopen.
func (e *Engine) Submit(now time.Time) ([]Response, Submission, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateActive {
		return nil, Submission{}, fmt.Errorf("%w: form is not active", ErrInvalidArgument)
	}

	responses := make([]Response, 0, len(e.questions))
	sub := Submission{Timestamp: now, Responses: make([]SubmissionEntry, 0, len(e.questions))}
	for _, q := range e.questions {
		ans := e.responses[q.ID]
		responses = append(responses, Response{QuestionID: q.ID, Answer: ans})
		sub.Responses = append(sub.Responses, SubmissionEntry{Question: q.Text, Answer: ans})
	}

	e.responses = nil
	e.state = StateCompleted
	return responses, sub, nil
}

// Reopen returns a completed form to the builder, clearing the question
// list for a fresh form-building phase.
func (e *Engine) Reopen() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateCompleted {
		return fmt.Errorf("%w: form has not been submitted", ErrInvalidArgument)
	}
	e.state = StateBuilding
	e.questions = nil
	return nil
}
