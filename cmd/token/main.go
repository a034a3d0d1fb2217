// Command token mints an access token for local testing and service accounts.
//
//	token -sub courier-7 -perms READ,WRITE
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/delivery/backend/internal/infrastructure/auth"
	"github.com/delivery/backend/internal/infrastructure/config"
	"github.com/delivery/backend/internal/infrastructure/logger"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

func main() {
	var (
		subject string
		perms   string
	)
	flag.StringVar(&subject, "sub", "", "Token subject (required)")
	flag.StringVar(&perms, "perms", "READ", "Comma separated permissions, e.g. READ,WRITE,UPDATE,DELETE")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      "info",
		Format:     "console",
		Output:     "stderr",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	permissions := lo.Compact(lo.Map(strings.Split(perms, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	}))

	token, err := auth.NewJWTService(cfg.JWT).GenerateAccessToken(subject, permissions)
	if err != nil {
		log.Fatal("Failed to generate token", zap.Error(err))
	}

	log.Info("Token issued",
		zap.String("subject", subject),
		zap.Strings("permissions", permissions),
		zap.Time("expires_at", token.ExpiresAt),
	)
	// token on stdout so it can be captured by scripts
	fmt.Println(token.Token)
}
