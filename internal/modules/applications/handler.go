package applications

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
	rg.GET("/applications", h.ListAll)
	rg.GET("/gigs/:id/applications", h.ListForGig)
	rg.POST("/gigs/:id/applications/:appId/accept", h.Accept)
	rg.POST("/gigs/:id/applications/:appId/reject", h.Reject)
}

func (h *Handler) ListAll(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	list, err := h.service.ListAll(c.Request.Context(), c.GetString(middleware.CtxAPIToken), q)
	if err != nil {
		log.Printf("applications: list failed: %v", err)
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to load applications")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) ListForGig(c *gin.Context) {
	gigID, ok := idParam(c, "id", "Invalid gig ID")
	if !ok {
		return
	}

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	list, err := h.service.ListForGig(c.Request.Context(), c.GetString(middleware.CtxAPIToken), gigID, q)
	if err != nil {
		h.writeError(c, err, "Failed to load applications")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Accept(c *gin.Context) {
	gigID, ok := idParam(c, "id", "Invalid gig ID")
	if !ok {
		return
	}
	appID, ok := idParam(c, "appId", "Invalid application ID")
	if !ok {
		return
	}

	decision, err := h.service.Accept(c.Request.Context(), c.GetString(middleware.CtxAPIToken), gigID, appID)
	if err != nil {
		h.writeError(c, err, "Failed to accept application")
		return
	}
	response.Success(c, http.StatusOK, decision)
}

func (h *Handler) Reject(c *gin.Context) {
	gigID, ok := idParam(c, "id", "Invalid gig ID")
	if !ok {
		return
	}
	appID, ok := idParam(c, "appId", "Invalid application ID")
	if !ok {
		return
	}

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	decision, err := h.service.Reject(c.Request.Context(), c.GetString(middleware.CtxAPIToken), gigID, appID, req.Reason)
	if err != nil {
		h.writeError(c, err, "Failed to reject application")
		return
	}
	response.Success(c, http.StatusOK, decision)
}

func (h *Handler) writeError(c *gin.Context, err error, failMsg string) {
	switch {
	case errors.Is(err, ErrReasonRequired):
		response.Error(c, http.StatusBadRequest, "REASON_REQUIRED", "A rejection reason is required")
	case errors.Is(err, ErrActionInFlight):
		response.Error(c, http.StatusConflict, "ACTION_IN_FLIGHT", "Another decision for this application is still running")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Application not found")
	case gigapi.IsStatus(err, http.StatusConflict):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "The application cannot change to that status")
	default:
		log.Printf("applications: %s: %v", failMsg, err)
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", failMsg)
	}
}

func idParam(c *gin.Context, name, failMsg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", failMsg)
		return 0, false
	}
	return id, true
}
