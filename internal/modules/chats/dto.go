package chats

import "gigdesk/internal/gigapi"

type ListQuery struct {
	Search string `form:"q"`
	Status string `form:"status"`
}

type MessagesQuery struct {
	Page  int    `form:"page"`
	Size  int    `form:"size"`
	Since string `form:"since"`
}

type SendRequest struct {
	Content string `json:"content"`
}

// ChatList is the filtered chat overview with the active/archived buckets
// and the total unread badge across all chats.
type ChatList struct {
	Chats       []gigapi.Chat            `json:"chats"`
	Buckets     map[string][]gigapi.Chat `json:"buckets"`
	TotalUnread int                      `json:"totalUnread"`
}

// Thread is one chat with a page of its messages, oldest first.
type Thread struct {
	Chat       gigapi.Chat      `json:"chat"`
	Messages   []gigapi.Message `json:"messages"`
	TotalPages int              `json:"totalPages"`
	Page       int              `json:"page"`
	Last       bool             `json:"last"`
}

type UnreadResponse struct {
	Count int `json:"count"`
}
