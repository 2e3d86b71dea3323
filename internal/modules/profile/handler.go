package profile

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

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
	rg.GET("/profile", h.Get)
	rg.PUT("/profile", h.Update)
	rg.GET("/profile/statistics", h.Statistics)
	rg.GET("/performers/:id", h.Performer)
}

func (h *Handler) Get(c *gin.Context) {
	profile, err := h.service.Get(c.Request.Context(), c.GetString(middleware.CtxAPIToken))
	if err != nil {
		log.Printf("profile: load failed: %v", err)
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to load profile")
		return
	}
	response.Success(c, http.StatusOK, profile)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	profile, err := h.service.Update(c.Request.Context(), c.GetString(middleware.CtxAPIToken), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid profile fields")
			return
		}
		log.Printf("profile: update failed: %v", err)
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to update profile")
		return
	}
	response.Success(c, http.StatusOK, profile)
}

func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context(), c.GetString(middleware.CtxAPIToken))
	if err != nil {
		log.Printf("profile: statistics failed: %v", err)
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to load statistics")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) Performer(c *gin.Context) {
	performerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid performer ID")
		return
	}

	performer, err := h.service.Performer(c.Request.Context(), c.GetString(middleware.CtxAPIToken), performerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Performer not found")
			return
		}
		log.Printf("profile: performer failed: %v", err)
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to load performer")
		return
	}
	response.Success(c, http.StatusOK, performer)
}
