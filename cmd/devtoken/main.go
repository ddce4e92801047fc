// Command devtoken prints an access token signed with secretKey.access for
// local development against the pharmacist and admin routes.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"pharmaduty/config"
	"pharmaduty/internal/domain/constants"
	"pharmaduty/internal/infra/auth"

	"github.com/google/uuid"
)

func main() {
	userID := flag.String("user", "", "user id (random when empty)")
	roles := flag.String("roles", "pharmacist", "comma separated roles")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	if !constants.IsDevelopment(cfg.Env.Env) {
		slog.Error("devtoken only runs in development environments", slog.String("env", cfg.Env.Env))
		os.Exit(1)
	}

	id := uuid.New()
	if *userID != "" {
		if id, err = uuid.Parse(*userID); err != nil {
			slog.Error("Invalid user id", slog.Any("error", err))
			os.Exit(1)
		}
	}

	tokens, err := auth.NewJWTService(cfg)
	if err != nil {
		slog.Error("Failed to create token service", slog.Any("error", err))
		os.Exit(1)
	}

	token, err := tokens.IssueAccessToken(id, strings.Split(*roles, ","))
	if err != nil {
		slog.Error("Failed to issue token", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Println(token)
}
