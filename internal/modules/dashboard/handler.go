package dashboard

import (
	"log"
	"net/http"

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
	rg.GET("/dashboard", h.Overview)
}

func (h *Handler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context(), c.GetString(middleware.CtxAPIToken))
	if err != nil {
		log.Printf("dashboard: overview failed: %v", err)
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to load dashboard")
		return
	}
	response.Success(c, http.StatusOK, overview)
}
