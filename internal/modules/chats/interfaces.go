package chats

import (
	"context"

	"gigdesk/internal/gigapi"
)

// Gateway is the slice of the platform client this module consumes.
type Gateway interface {
	Chats(ctx context.Context, page, size int) (gigapi.Page[gigapi.Chat], error)
	Chat(ctx context.Context, chatID int64) (gigapi.Chat, error)
	Messages(ctx context.Context, chatID int64, page, size int, since string) (gigapi.Page[gigapi.Message], error)
	SendMessage(ctx context.Context, chatID int64, content, messageType string) (gigapi.Message, error)
	MarkChatRead(ctx context.Context, chatID int64) error
	UnreadCount(ctx context.Context) (int, error)
}

// GatewayFactory builds an authorized gateway for one request's token.
type GatewayFactory func(token string) Gateway
