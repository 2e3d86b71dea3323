package auth

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gigdesk/internal/middleware"
	"gigdesk/internal/pkg/jwt"
	"gigdesk/internal/pkg/response"
)

type Handler struct {
	service      *Service
	jwt          *jwt.Service
	sessionTTL   time.Duration
	cookieSecure bool
}

func NewHandler(service *Service, jwtSvc *jwt.Service, sessionTTL time.Duration, cookieSecure bool) *Handler {
	return &Handler{
		service:      service,
		jwt:          jwtSvc,
		sessionTTL:   sessionTTL,
		cookieSecure: cookieSecure,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/sign-up", h.SignUp)
		authGroup.POST("/sign-in", h.SignIn)
		authGroup.POST("/sign-out", h.SignOut)
	}
}

func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := h.service.SignUp(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "An account with this email already exists")
			return
		}
		log.Printf("auth: sign-up failed: %v", err)
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to create account")
		return
	}

	if !h.issueCookie(c, result) {
		return
	}
	response.Success(c, http.StatusCreated, SessionResponse{Organizer: result.Organizer})
}

func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := h.service.SignIn(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
			return
		}
		log.Printf("auth: sign-in failed: %v", err)
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to sign in")
		return
	}

	if !h.issueCookie(c, result) {
		return
	}
	response.Success(c, http.StatusOK, SessionResponse{Organizer: result.Organizer})
}

// SignOut clears the session cookie and drops the session row. It does not
// require a live upstream and never fails the sign-out on a stale cookie.
func (h *Handler) SignOut(c *gin.Context) {
	if raw, err := c.Cookie(middleware.CookieName); err == nil && raw != "" {
		if claims, err := h.jwt.ValidateToken(raw); err == nil {
			if err := h.service.SignOut(c.Request.Context(), claims.SessionID); err != nil {
				log.Printf("auth: sign-out cleanup failed: %v", err)
			}
		}
	}
	middleware.ClearSessionCookie(c, h.cookieSecure)
	c.Status(http.StatusNoContent)
}

func (h *Handler) issueCookie(c *gin.Context, result *SignInResult) bool {
	signed, err := h.jwt.GenerateToken(result.SessionID, result.Organizer.Email)
	if err != nil {
		log.Printf("auth: issue session cookie failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to establish session")
		return false
	}
	middleware.SetSessionCookie(c, signed, int(h.sessionTTL.Seconds()), h.cookieSecure)
	return true
}
