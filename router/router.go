// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/joeyd15/rush-server/chat"
	"github.com/joeyd15/rush-server/cliparse"
	"github.com/joeyd15/rush-server/docstore"
	"github.com/joeyd15/rush-server/events"
	"github.com/joeyd15/rush-server/forms"
	"github.com/joeyd15/rush-server/handlers"
	"github.com/joeyd15/rush-server/middleware"
	"github.com/joeyd15/rush-server/polls"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Shared in-memory state
	eventStore := events.NewStore()
	pollEngine := polls.NewEngine()
	formEngine := forms.NewEngine()
	chatStore := chat.NewStore()
	docs := docstore.New(db)

	// Initialize handlers
	loginHandler := handlers.NewLoginHandler(db, cfg)
	eventHandler := handlers.NewEventHandler(eventStore, cfg)
	pollHandler := handlers.NewPollHandler(pollEngine, cfg)
	formHandler := handlers.NewFormHandler(formEngine, docs, cfg)
	chatHandler := handlers.NewChatHandler(chatStore, cfg)
	profileHandler := handlers.NewProfileHandler(db, docs, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Auth (public)
	mux.HandleFunc("POST /auth/signup", middleware.WithLogging(loginHandler.SignUp))
	mux.HandleFunc("POST /auth/signin", middleware.WithLogging(loginHandler.SignIn))
	mux.HandleFunc("POST /auth/reset", middleware.WithLogging(loginHandler.ResetPassword))

	// Events, announcements, calendar
	mux.HandleFunc("POST /events", middleware.WithLogging(eventHandler.AddEvent))
	mux.HandleFunc("GET /events", middleware.WithLogging(eventHandler.ListEvents))
	mux.HandleFunc("GET /announcements", middleware.WithLogging(eventHandler.Announcements))
	mux.HandleFunc("GET /calendar", middleware.WithLogging(eventHandler.CalendarGrid))

	// Polls
	mux.HandleFunc("POST /poll", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /poll", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("POST /poll/votes", middleware.WithLogging(pollHandler.Vote))
	mux.HandleFunc("POST /poll/reset", middleware.WithLogging(pollHandler.ResetPoll))
	mux.HandleFunc("GET /poll/history", middleware.WithLogging(pollHandler.PollHistory))

	// Forms
	mux.HandleFunc("GET /form", middleware.WithLogging(formHandler.GetForm))
	mux.HandleFunc("POST /form/questions", middleware.WithLogging(formHandler.AddQuestion))
	mux.HandleFunc("DELETE /form/questions/{id}", middleware.WithLogging(formHandler.RemoveQuestion))
	mux.HandleFunc("POST /form/start", middleware.WithLogging(formHandler.StartForm))
	mux.HandleFunc("PUT /form/responses", middleware.WithLogging(formHandler.SetResponse))
	mux.HandleFunc("POST /form/submit", middleware.WithLogging(formHandler.SubmitForm))
	mux.HandleFunc("POST /form/reopen", middleware.WithLogging(formHandler.ReopenForm))

	// Chat
	mux.HandleFunc("GET /chats/{kind}", middleware.WithLogging(chatHandler.ListChats))
	mux.HandleFunc("POST /chats/{kind}", middleware.WithLogging(chatHandler.CreateChat))
	mux.HandleFunc("GET /chats/{kind}/{name}", middleware.WithLogging(chatHandler.GetChat))
	mux.HandleFunc("POST /chats/{kind}/{name}/messages", middleware.WithLogging(chatHandler.SendMessage))

	// Profile and settings
	mux.HandleFunc("GET /profile", middleware.WithLogging(profileHandler.GetProfile))
	mux.HandleFunc("PUT /profile", middleware.WithLogging(profileHandler.SaveProfile))
	mux.HandleFunc("GET /settings", middleware.WithLogging(profileHandler.GetSettings))
	mux.HandleFunc("PUT /settings", middleware.WithLogging(profileHandler.SaveSettings))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("rush API v1"))
	})

	return mux
}
