// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/joeyd15/rush-server/cliparse"
	"github.com/joeyd15/rush-server/middleware"
	"github.com/joeyd15/rush-server/models"
	"github.com/joeyd15/rush-server/polls"
)

type PollHandler struct {
	engine *polls.Engine
	cfg    cliparse.Config
}

func NewPollHandler(engine *polls.Engine, cfg cliparse.Config) *PollHandler {
	return &PollHandler{engine: engine, cfg: cfg}
}

// CreatePoll handles POST /poll
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := h.engine.Create(req.Question, req.Options)
	if errors.Is(err, polls.ErrInvalidArgument) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("poll created", "question", poll.Question, "options", len(poll.Options))

	middleware.JSONResponse(w, http.StatusCreated, models.PollResponse{
		Poll:   poll,
		Ratios: poll.Ratios(),
	})
}

// GetPoll handles GET /poll
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r, h.cfg)
	if !ok {
		return
	}

	poll, ok := h.engine.Active()
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "No active poll")
		return
	}

	resp := models.PollResponse{Poll: poll, Ratios: poll.Ratios()}
	if idx, voted := h.engine.VotedIndex(sess.Token); voted {
		resp.VotedIndex = &idx
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Vote handles POST /poll/votes
func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r, h.cfg)
	if !ok {
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := h.engine.Vote(sess.Token, req.OptionIndex)
	if errors.Is(err, polls.ErrInvalidArgument) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("vote recorded", "option_index", req.OptionIndex)

	idx := req.OptionIndex
	middleware.JSONResponse(w, http.StatusOK, models.PollResponse{
		Poll:       poll,
		Ratios:     poll.Ratios(),
		VotedIndex: &idx,
	})
}

// ResetPoll handles POST /poll/reset
func (h *PollHandler) ResetPoll(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	archived, err := h.engine.Reset()
	if errors.Is(err, polls.ErrInvalidArgument) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("poll archived", "question", archived.Question)

	middleware.JSONResponse(w, http.StatusOK, models.PollResponse{
		Poll:   archived,
		Ratios: archived.Ratios(),
	})
}

// PollHistory handles GET /poll/history
func (h *PollHandler) PollHistory(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollHistoryResponse{
		History: h.engine.History(),
	})
}
