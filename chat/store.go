// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chat

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Kinds of conversation.
const (
	KindDirect  = "direct"
	KindChannel = "channel"
)

// Chat is a named conversation with an append-only message list.
// Message order is send order; messages are never edited or removed.
type Chat struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Messages []string `json:"messages"`
}

// Store owns the direct chats and group channels.
type Store struct {
	mu       sync.Mutex
	direct   []Chat
	channels []Chat
}

func NewStore() *Store {
	return &Store{}
}

// NewDirect creates a direct chat seeded with a greeting, the way the
// app opens one.
func (s *Store) NewDirect(contactName string) (Chat, error) {
	return s.create(&s.direct, contactName, KindDirect,
		fmt.Sprintf("Chat started with %s", contactName))
}

// NewChannel creates a group channel seeded with a creation notice.
func (s *Store) NewChannel(name string) (Chat, error) {
	return s.create(&s.channels, name, KindChannel,
		fmt.Sprintf("Channel %s created", name))
}

func (s *Store) create(list *[]Chat, name, kind, greeting string) (Chat, error) {
	if strings.TrimSpace(name) == "" {
		return Chat{}, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range *list {
		if c.Name == name {
			return Chat{}, fmt.Errorf("%w: %s %q already exists", ErrInvalidArgument, kind, name)
		}
	}

	c := Chat{Name: name, Kind: kind, Messages: []string{greeting}}
	*list = append(*list, c)
	return snapshot(c), nil
}

// Send appends a message to the named conversation.
func (s *Store) Send(kind, name, message string) (Chat, error) {
	if strings.TrimSpace(message) == "" {
		return Chat{}, fmt.Errorf("%w: message is required", ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.listLocked(kind)
	if err != nil {
		return Chat{}, err
	}
	for i := range *list {
		if (*list)[i].Name == name {
			(*list)[i].Messages = append((*list)[i].Messages, message)
			return snapshot((*list)[i]), nil
		}
	}
	return Chat{}, fmt.Errorf("%w: no %s named %q", ErrInvalidArgument, kind, name)
}

// Get returns the named conversation.
func (s *Store) Get(kind, name string) (Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.listLocked(kind)
	if err != nil {
		return Chat{}, err
	}
	for _, c := range *list {
		if c.Name == name {
			return snapshot(c), nil
		}
	}
	return Chat{}, fmt.Errorf("%w: no %s named %q", ErrInvalidArgument, kind, name)
}

// List returns all conversations of the given kind in creation order.
func (s *Store) List(kind string) ([]Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.listLocked(kind)
	if err != nil {
		return nil, err
	}
	out := make([]Chat, 0, len(*list))
	for _, c := range *list {
		out = append(out, snapshot(c))
	}
	return out, nil
}

func (s *Store) listLocked(kind string) (*[]Chat, error) {
	switch kind {
	case KindDirect:
		return &s.direct, nil
	case KindChannel:
		return &s.channels, nil
	default:
		return nil, fmt.Errorf("%w: unknown chat kind %q", ErrInvalidArgument, kind)
	}
}

func snapshot(c Chat) Chat {
	c.Messages = append([]string(nil), c.Messages...)
	return c
}
