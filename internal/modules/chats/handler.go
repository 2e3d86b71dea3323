package chats

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gigdesk/internal/gigapi"
	"gigdesk/internal/middleware"
	"gigdesk/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/chats", h.List)
	rg.GET("/chats/unread-count", h.UnreadCount)
	rg.GET("/chats/:id", h.Thread)
	rg.POST("/chats/:id/messages", h.Send)
	rg.POST("/chats/:id/read", h.MarkRead)
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	list, err := h.service.List(c.Request.Context(), c.GetString(middleware.CtxAPIToken), q)
	if err != nil {
		log.Printf("chats: list failed: %v", err)
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to load chats")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Thread(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	var q MessagesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	thread, err := h.service.Thread(c.Request.Context(), c.GetString(middleware.CtxAPIToken), chatID, q)
	if err != nil {
		h.writeError(c, err, "Failed to load chat")
		return
	}
	response.Success(c, http.StatusOK, thread)
}

func (h *Handler) Send(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	msg, err := h.service.Send(c.Request.Context(), c.GetString(middleware.CtxAPIToken), chatID, req.Content)
	if err != nil {
		h.writeError(c, err, "Failed to send message")
		return
	}
	response.Success(c, http.StatusCreated, msg)
}

func (h *Handler) MarkRead(c *gin.Context) {
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), c.GetString(middleware.CtxAPIToken), chatID); err != nil {
		h.writeError(c, err, "Failed to mark chat read")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) UnreadCount(c *gin.Context) {
	count, err := h.service.UnreadCount(c.Request.Context(), c.GetString(middleware.CtxAPIToken))
	if err != nil {
		log.Printf("chats: unread count failed: %v", err)
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to load unread count")
		return
	}
	response.Success(c, http.StatusOK, UnreadResponse{Count: count})
}

func (h *Handler) writeError(c *gin.Context, err error, failMsg string) {
	switch {
	case errors.Is(err, ErrEmptyContent):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message content must not be empty")
	case errors.Is(err, ErrActionInFlight):
		response.Error(c, http.StatusConflict, "ACTION_IN_FLIGHT", "Another send for this chat is still running")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Chat not found")
	case gigapi.IsStatus(err, http.StatusConflict):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "The chat does not accept that action")
	default:
		log.Printf("chats: %s: %v", failMsg, err)
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", failMsg)
	}
}

func chatIDParam(c *gin.Context) (int64, bool) {
	chatID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid chat ID")
		return 0, false
	}
	return chatID, true
}
