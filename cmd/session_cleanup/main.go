package main

import (
	"context"
	"log"
	"time"

	"gigdesk/internal/config"
	"gigdesk/internal/session"
)

// Removes sessions idle longer than SESSION_TTL. Meant for a cron schedule
// alongside the API process.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := session.OpenStore(ctx, cfg.SessionDBPath)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}
	defer store.Close()

	removed, err := store.DeleteIdle(ctx, cfg.SessionTTL)
	if err != nil {
		log.Fatalf("cleanup: %v", err)
	}
	log.Printf("session cleanup done removed=%d ttl=%s", removed, cfg.SessionTTL)
}
