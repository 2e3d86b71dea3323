package gigapi

import (
	"context"
	"fmt"
)

type SendMessageRequest struct {
	ChatID      int64  `json:"chatId"`
	Content     string `json:"content"`
	MessageType string `json:"messageType"`
}

type unreadCountResponse struct {
	Count int `json:"count"`
}

func (c *Client) Chats(ctx context.Context, page, size int) (Page[Chat], error) {
	var out Page[Chat]
	err := c.get(ctx, "/api/organizer/chats", pageQuery(page, size), &out)
	return out, err
}

func (c *Client) Chat(ctx context.Context, chatID int64) (Chat, error) {
	var out Chat
	err := c.get(ctx, fmt.Sprintf("/api/organizer/chats/%d", chatID), nil, &out)
	return out, err
}

func (c *Client) Messages(ctx context.Context, chatID int64, page, size int, since string) (Page[Message], error) {
	q := pageQuery(page, size)
	if since != "" {
		q.Set("since", since)
	}
	var out Page[Message]
	err := c.get(ctx, fmt.Sprintf("/api/organizer/chats/%d/messages", chatID), q, &out)
	return out, err
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, content, messageType string) (Message, error) {
	var out Message
	err := c.post(ctx, fmt.Sprintf("/api/organizer/chats/%d/messages", chatID),
		SendMessageRequest{ChatID: chatID, Content: content, MessageType: messageType}, &out)
	return out, err
}

func (c *Client) MarkChatRead(ctx context.Context, chatID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/organizer/chats/%d/read", chatID), nil, nil)
}

func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var out unreadCountResponse
	if err := c.get(ctx, "/api/organizer/chats/unread-count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}
