// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON:

  - SignUpRequest / SignInRequest: email, password
  - ResetPasswordRequest: email
  - AddEventRequest: date, title, description, color
  - CreatePollRequest: question, options
  - VoteRequest: option_index
  - AddQuestionRequest: text, type
  - SetResponseRequest: question_id, answer
  - NewChatRequest / SendMessageRequest: name / message
  - SaveProfileRequest: username, phone, birthday

# Response Types

Types for JSON responses:

  - SessionResponse: token, email, is_admin
  - AnnouncementsResponse: derived current-week announcements with a
    humanized posted_ago string
  - CalendarResponse: month label plus the display grid cells
  - PollResponse: poll snapshot, bar ratios, optional voted_index
  - PollHistoryResponse, FormResponseBody, SubmitFormResponse
  - ChatListResponse, ProfileResponse
  - ErrorResponse: error, message

Domain types live with their engines (events.Event, polls.Poll,
forms.Question, chat.Chat, calendar.Cell); this package only wraps them
for the wire.
*/
package models
