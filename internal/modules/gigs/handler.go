package gigs

import (
	"context"
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
	rg.GET("/gigs", h.List)
	rg.POST("/gigs", h.Create)
	rg.GET("/gigs/:id", h.Get)
	rg.PUT("/gigs/:id", h.Update)
	rg.POST("/gigs/:id/publish", h.Publish)
	rg.POST("/gigs/:id/complete", h.Complete)
	rg.POST("/gigs/:id/cancel", h.Cancel)
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	list, err := h.service.List(c.Request.Context(), c.GetString(middleware.CtxAPIToken), q)
	if err != nil {
		log.Printf("gigs: list failed: %v", err)
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to load gigs")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	gigID, ok := gigIDParam(c)
	if !ok {
		return
	}

	detail, err := h.service.Get(c.Request.Context(), c.GetString(middleware.CtxAPIToken), gigID)
	if err != nil {
		h.writeError(c, err, "Failed to load gig")
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) Create(c *gin.Context) {
	var input GigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	gig, err := h.service.Create(c.Request.Context(), c.GetString(middleware.CtxAPIToken), input)
	if err != nil {
		h.writeError(c, err, "Failed to create gig")
		return
	}
	response.Success(c, http.StatusCreated, gig)
}

func (h *Handler) Update(c *gin.Context) {
	gigID, ok := gigIDParam(c)
	if !ok {
		return
	}

	var input GigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	gig, err := h.service.Update(c.Request.Context(), c.GetString(middleware.CtxAPIToken), gigID, input)
	if err != nil {
		h.writeError(c, err, "Failed to update gig")
		return
	}
	response.Success(c, http.StatusOK, gig)
}

func (h *Handler) Publish(c *gin.Context) {
	h.lifecycle(c, h.service.Publish, "Failed to publish gig")
}

func (h *Handler) Complete(c *gin.Context) {
	h.lifecycle(c, h.service.Complete, "Failed to complete gig")
}

func (h *Handler) Cancel(c *gin.Context) {
	gigID, ok := gigIDParam(c)
	if !ok {
		return
	}

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	detail, err := h.service.Cancel(c.Request.Context(), c.GetString(middleware.CtxAPIToken), gigID, req.Reason)
	if err != nil {
		h.writeError(c, err, "Failed to cancel gig")
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) lifecycle(c *gin.Context, action func(ctx context.Context, token string, gigID int64) (*GigDetail, error), failMsg string) {
	gigID, ok := gigIDParam(c)
	if !ok {
		return
	}

	detail, err := action(c.Request.Context(), c.GetString(middleware.CtxAPIToken), gigID)
	if err != nil {
		h.writeError(c, err, failMsg)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) writeError(c *gin.Context, err error, failMsg string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid gig fields")
	case errors.Is(err, ErrDeadlineAfterEvent):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Application deadline must be before the event date")
	case errors.Is(err, ErrReasonRequired):
		response.Error(c, http.StatusBadRequest, "REASON_REQUIRED", "A cancellation reason is required")
	case errors.Is(err, ErrActionInFlight):
		response.Error(c, http.StatusConflict, "ACTION_IN_FLIGHT", "Another action for this gig is still running")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gig not found")
	case gigapi.IsStatus(err, http.StatusConflict):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "The gig cannot change to that status")
	default:
		log.Printf("gigs: %s: %v", failMsg, err)
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", failMsg)
	}
}

func gigIDParam(c *gin.Context) (int64, bool) {
	gigID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid gig ID")
		return 0, false
	}
	return gigID, true
}
