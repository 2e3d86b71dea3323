package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gigdesk/internal/config"
	"gigdesk/internal/gigapi"
	"gigdesk/internal/inflight"
	"gigdesk/internal/middleware"
	"gigdesk/internal/modules/applications"
	"gigdesk/internal/modules/auth"
	"gigdesk/internal/modules/chats"
	"gigdesk/internal/modules/dashboard"
	"gigdesk/internal/modules/gigs"
	"gigdesk/internal/modules/profile"
	"gigdesk/internal/pkg/jwt"
	"gigdesk/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := session.OpenStore(ctx, cfg.SessionDBPath)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}
	defer store.Close()

	client, err := gigapi.New(gigapi.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
	}, nil)
	if err != nil {
		log.Fatalf("platform client: %v", err)
	}

	jwtSvc := jwt.New(cfg.SessionSecret, cfg.SessionTTL)
	actions := inflight.New()

	authService := auth.NewService(client, store)
	authHandler := auth.NewHandler(authService, jwtSvc, cfg.SessionTTL, cfg.CookieSecure)

	gigsHandler := gigs.NewHandler(gigs.NewService(
		func(token string) gigs.Gateway { return client.WithToken(token) }, actions))
	appsHandler := applications.NewHandler(applications.NewService(
		func(token string) applications.Gateway { return client.WithToken(token) }, actions))
	chatsHandler := chats.NewHandler(chats.NewService(
		func(token string) chats.Gateway { return client.WithToken(token) }, actions))
	profileHandler := profile.NewHandler(profile.NewService(
		func(token string) profile.Gateway { return client.WithToken(token) }))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(
		func(token string) dashboard.Gateway { return client.WithToken(token) }))

	probe := func(ctx context.Context, token string) (gigapi.Profile, error) {
		return client.WithToken(token).Profile(ctx)
	}

	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(), middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	authHandler.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.SessionGuard(jwtSvc, store, probe, cfg.CookieSecure))
	gigsHandler.RegisterRoutes(protected)
	appsHandler.RegisterRoutes(protected)
	chatsHandler.RegisterRoutes(protected)
	profileHandler.RegisterRoutes(protected)
	dashboardHandler.RegisterRoutes(protected)

	log.Printf("gigdesk listening addr=%s api=%s", cfg.Addr(), cfg.APIBaseURL)
	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
