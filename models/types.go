// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/joeyd15/rush-server/calendar"
	"github.com/joeyd15/rush-server/chat"
	"github.com/joeyd15/rush-server/events"
	"github.com/joeyd15/rush-server/forms"
	"github.com/joeyd15/rush-server/polls"
)

// Request types

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetPasswordRequest struct {
	Email string `json:"email"`
}

type AddEventRequest struct {
	Date        time.Time `json:"date"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
}

type CreatePollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type VoteRequest struct {
	OptionIndex int `json:"option_index"`
}

type AddQuestionRequest struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

type SetResponseRequest struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

type NewChatRequest struct {
	Name string `json:"name"`
}

type SendMessageRequest struct {
	Message string `json:"message"`
}

type SaveProfileRequest struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Birthday string `json:"birthday"`
}

// Response types

type SessionResponse struct {
	Token   string `json:"token"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AnnouncementItem struct {
	events.Announcement
	PostedAgo string `json:"posted_ago"`
}

type AnnouncementsResponse struct {
	Announcements []AnnouncementItem `json:"announcements"`
}

type CalendarResponse struct {
	Month string          `json:"month"` // e.g. "June 2025"
	Cells []calendar.Cell `json:"cells"`
}

type PollResponse struct {
	Poll       polls.Poll `json:"poll"`
	Ratios     []float64  `json:"ratios"`
	VotedIndex *int       `json:"voted_index,omitempty"`
}

type PollHistoryResponse struct {
	History []polls.Poll `json:"history"`
}

type FormResponseBody struct {
	State     string           `json:"state"`
	Questions []forms.Question `json:"questions"`
}

type SubmitFormResponse struct {
	Responses []forms.Response `json:"responses"`
	Document  string           `json:"document"` // docstore path the submission was written to
}

type ChatListResponse struct {
	Chats []chat.Chat `json:"chats"`
}

type ProfileResponse struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Birthday string `json:"birthday"`
	Email    string `json:"email"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
