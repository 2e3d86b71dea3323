package chats

import (
	"context"
	"strings"

	"gigdesk/internal/gigapi"
	"gigdesk/internal/inflight"
)

const (
	chatPageSize       = 100
	defaultMessageSize = 50
	maxMessageSize     = 200
)

var chatStatuses = []string{
	gigapi.ChatStatusActive,
	gigapi.ChatStatusArchived,
}

type Service struct {
	clients GatewayFactory
	actions *inflight.Map
}

func NewService(clients GatewayFactory, actions *inflight.Map) *Service {
	return &Service{clients: clients, actions: actions}
}

// List returns the chat overview: filtered, partitioned into active and
// archived, with the sum of unread counters for the global badge.
func (s *Service) List(ctx context.Context, token string, q ListQuery) (*ChatList, error) {
	page, err := s.clients(token).Chats(ctx, 0, chatPageSize)
	if err != nil {
		return nil, err
	}

	filtered := FilterChats(page.Content, q.Search, q.Status)
	total := 0
	for _, chat := range page.Content {
		total += chat.UnreadCount
	}
	return &ChatList{
		Chats:       filtered,
		Buckets:     PartitionChats(filtered),
		TotalUnread: total,
	}, nil
}

// Thread loads one chat with a page of its messages and marks the chat read.
// A failing mark-read does not fail the view; the unread counter just stays
// stale until the next successful load.
func (s *Service) Thread(ctx context.Context, token string, chatID int64, q MessagesQuery) (*Thread, error) {
	gateway := s.clients(token)

	chat, err := gateway.Chat(ctx, chatID)
	if err != nil {
		if gigapi.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	size := q.Size
	if size <= 0 {
		size = defaultMessageSize
	}
	if size > maxMessageSize {
		size = maxMessageSize
	}
	page, err := gateway.Messages(ctx, chatID, q.Page, size, q.Since)
	if err != nil {
		return nil, err
	}

	if markErr := gateway.MarkChatRead(ctx, chatID); markErr == nil {
		chat.UnreadCount = 0
	}

	messages := page.Content
	if messages == nil {
		messages = []gigapi.Message{}
	}
	return &Thread{
		Chat:       chat,
		Messages:   messages,
		TotalPages: page.TotalPages,
		Page:       page.Number,
		Last:       page.Last,
	}, nil
}

// Send posts a text message to a chat. Sends are serialized per chat so a
// double-clicked submit cannot produce duplicates.
func (s *Service) Send(ctx context.Context, token string, chatID int64, content string) (gigapi.Message, error) {
	if strings.TrimSpace(content) == "" {
		return gigapi.Message{}, ErrEmptyContent
	}

	key := inflight.Key("chat", chatID)
	if !s.actions.TryAcquire(key) {
		return gigapi.Message{}, ErrActionInFlight
	}
	defer s.actions.Release(key)

	msg, err := s.clients(token).SendMessage(ctx, chatID, content, gigapi.MessageTypeText)
	if err != nil {
		if gigapi.IsNotFound(err) {
			return gigapi.Message{}, ErrNotFound
		}
		return gigapi.Message{}, err
	}
	return msg, nil
}

// MarkRead clears the unread counter of one chat.
func (s *Service) MarkRead(ctx context.Context, token string, chatID int64) error {
	if err := s.clients(token).MarkChatRead(ctx, chatID); err != nil {
		if gigapi.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// UnreadCount returns the total unread message count across all chats.
func (s *Service) UnreadCount(ctx context.Context, token string) (int, error) {
	return s.clients(token).UnreadCount(ctx)
}

// FilterChats applies the shared list predicate over gig title and performer
// name plus an exact status match ("all" or empty short-circuits).
func FilterChats(list []gigapi.Chat, search, status string) []gigapi.Chat {
	search = strings.ToLower(strings.TrimSpace(search))
	status = strings.TrimSpace(status)
	all := status == "" || strings.EqualFold(status, "all")

	out := make([]gigapi.Chat, 0, len(list))
	for _, chat := range list {
		if !all && !strings.EqualFold(chat.Status, status) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(chat.GigTitle), search) &&
			!strings.Contains(strings.ToLower(chat.PerformerName), search) {
			continue
		}
		out = append(out, chat)
	}
	return out
}

// PartitionChats groups chats into the active/archived buckets.
func PartitionChats(list []gigapi.Chat) map[string][]gigapi.Chat {
	buckets := make(map[string][]gigapi.Chat, len(chatStatuses))
	for _, status := range chatStatuses {
		buckets[status] = []gigapi.Chat{}
	}
	for _, chat := range list {
		buckets[chat.Status] = append(buckets[chat.Status], chat)
	}
	return buckets
}
