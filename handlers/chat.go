// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/joeyd15/rush-server/chat"
	"github.com/joeyd15/rush-server/cliparse"
	"github.com/joeyd15/rush-server/middleware"
	"github.com/joeyd15/rush-server/models"
)

type ChatHandler struct {
	store *chat.Store
	cfg   cliparse.Config
}

func NewChatHandler(store *chat.Store, cfg cliparse.Config) *ChatHandler {
	return &ChatHandler{store: store, cfg: cfg}
}

// ListChats handles GET /chats/{kind} where kind is direct or channel.
func (h *ChatHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	chats, err := h.store.List(r.PathValue("kind"))
	if errors.Is(err, chat.ErrInvalidArgument) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ChatListResponse{Chats: chats})
}

// CreateChat handles POST /chats/{kind}
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	var req models.NewChatRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var c chat.Chat
	var err error
	switch r.PathValue("kind") {
	case chat.KindDirect:
		c, err = h.store.NewDirect(req.Name)
	case chat.KindChannel:
		c, err = h.store.NewChannel(req.Name)
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "kind must be direct or channel")
		return
	}
	if errors.Is(err, chat.ErrInvalidArgument) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, c)
}

// GetChat handles GET /chats/{kind}/{name}
func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	c, err := h.store.Get(r.PathValue("kind"), r.PathValue("name"))
	if errors.Is(err, chat.ErrInvalidArgument) {
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, c)
}

// SendMessage handles POST /chats/{kind}/{name}/messages
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r, h.cfg); !ok {
		return
	}

	var req models.SendMessageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	c, err := h.store.Send(r.PathValue("kind"), r.PathValue("name"), req.Message)
	if errors.Is(err, chat.ErrInvalidArgument) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, c)
}
