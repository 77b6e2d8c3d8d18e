// Command issue-token prints a bearer token for the upload endpoints,
// signed with JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jengzang/tracks-backend-go/internal/config"
	"github.com/jengzang/tracks-backend-go/internal/logger"
	"github.com/jengzang/tracks-backend-go/internal/middleware"
)

func main() {
	subject := flag.String("subject", "device", "token subject")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	cfg := config.Load()
	logger.Init(logger.Options{Level: cfg.LogLevel, Format: "console", Writer: os.Stderr})
	log := logger.Get()

	if os.Getenv("JWT_SECRET") == "" {
		log.Warn().Msg("JWT_SECRET is not set, signing with the default secret")
	}

	token, err := middleware.IssueToken(cfg.JWTSecret, *subject, *ttl)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to issue token")
	}
	fmt.Println(token)
}
