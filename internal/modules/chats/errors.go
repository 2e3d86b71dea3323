package chats

import "errors"

var (
	ErrEmptyContent   = errors.New("message content must not be empty")
	ErrActionInFlight = errors.New("a send for this chat is still running")
	ErrNotFound       = errors.New("chat not found")
)
