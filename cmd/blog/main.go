package main

import (
	"flag"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/goliatone/go-blog/auth"
	"github.com/goliatone/go-blog/client"
	"github.com/goliatone/go-blog/config"
	"github.com/goliatone/go-blog/store"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := stdLogger{}

	tokens := auth.NewTokenService(cfg).WithLogger(logger)

	var exchanger auth.CredentialExchanger
	if cfg.Auth.Authority == config.AuthorityLocal {
		users := make([]auth.LocalUser, 0, len(cfg.Auth.Users))
		for _, u := range cfg.Auth.Users {
			users = append(users, auth.LocalUser{
				Username:     u.Username,
				PasswordHash: u.PasswordHash,
				Role:         u.Role,
			})
		}
		exchanger = auth.NewLocalAuthority(tokens, users).WithLogger(logger)
	} else {
		exchanger = auth.NewRemoteAuthority(cfg.Auth.AuthorityURL).WithLogger(logger)
	}

	api := client.New(cfg.Upstream.ContentURL).WithLogger(logger)
	st := store.New(api).WithLogger(logger)

	app := fiber.New()
	app.Use(auth.Guard(cfg))

	auth.NewController(exchanger, tokens, cfg).
		WithLogger(logger).
		RegisterRoutes(app)

	registerContentRoutes(app, st, logger)

	if err := app.Listen(cfg.Server.Listen); err != nil {
		log.Fatalf("listen: %v", err)
	}
}

type stdLogger struct{}

func (stdLogger) Debug(format string, args ...any) { log.Printf("[DBG] "+format, args...) }
func (stdLogger) Info(format string, args ...any)  { log.Printf("[INF] "+format, args...) }
func (stdLogger) Error(format string, args ...any) { log.Printf("[ERR] "+format, args...) }
