// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/joeyd15/rush-server/cliparse"
	"github.com/joeyd15/rush-server/docstore"
	"github.com/joeyd15/rush-server/forms"
	"github.com/joeyd15/rush-server/middleware"
	"github.com/joeyd15/rush-server/models"
)

type FormHandler struct {
	engine *forms.Engine
	docs   *docstore.Store
	cfg    cliparse.Config
}

func NewFormHandler(engine *forms.Engine, docs *docstore.Store, cfg cliparse.Config) *FormHandler {
	return &FormHandler{engine: engine, docs: docs, cfg: cfg}
}

// GetForm handles GET /form
func (h *FormHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.FormResponseBody{
		State:     h.engine.State(),
		Questions: h.engine.Questions(),
	})
}

// AddQuestion handles POST /form/questions
func (h *FormHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	var req models.AddQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	q, err := h.engine.AddQuestion(req.Text, req.Type)
	if errors.Is(err, forms.ErrInvalidArgument) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, q)
}

// RemoveQuestion handles DELETE /form/questions/{id}
func (h *FormHandler) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	id := r.PathValue("id")
	if err := h.engine.RemoveQuestion(id); errors.Is(err, forms.ErrInvalidArgument) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "question removed"})
}

// StartForm handles POST /form/start
func (h *FormHandler) StartForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	if err := h.engine.Start(); errors.Is(err, forms.ErrInvalidArgument) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("form started", "questions", len(h.engine.Questions()))

	middleware.JSONResponse(w, http.StatusOK, models.FormResponseBody{
		State:     h.engine.State(),
		Questions: h.engine.Questions(),
	})
}

// SetResponse handles PUT /form/responses
func (h *FormHandler) SetResponse(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	var req models.SetResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.engine.SetResponse(req.QuestionID, req.Answer); errors.Is(err, forms.ErrInvalidArgument) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "response recorded"})
}

// SubmitForm handles POST /form/submit
// The submission document is handed to the document store
// fire-and-forget; the response does not wait for the write.
func (h *FormHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	responses, sub, err := h.engine.Submit(time.Now())
	if errors.Is(err, forms.ErrInvalidArgument) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	path := "pollForms/" + uuid.NewString()
	h.docs.PutAsync(path, sub)

	slog.Info("form submitted", "document", path, "responses", len(responses))

	middleware.JSONResponse(w, http.StatusOK, models.SubmitFormResponse{
		Responses: responses,
		Document:  path,
	})
}

// ReopenForm handles POST /form/reopen
func (h *FormHandler) ReopenForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	if err := h.engine.Reopen(); errors.Is(err, forms.ErrInvalidArgument) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.FormResponseBody{
		State:     h.engine.State(),
		Questions: h.engine.Questions(),
	})
}
