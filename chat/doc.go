// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package chat holds direct chats and group channels. Conversations are
// created explicitly, seeded with a greeting message, and only ever
// grow: messages are appended in send order and never edited.
package chat
