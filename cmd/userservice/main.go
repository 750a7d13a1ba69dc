package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"shopsquare/pkg/platform/config"
	"shopsquare/pkg/platform/database"
	"shopsquare/pkg/platform/server"
	"shopsquare/pkg/user/repository"
	"shopsquare/pkg/user/service"
	"shopsquare/pkg/user/transport"
)

type appConfig struct {
	Port        int           `envconfig:"PORT" default:"8081"`
	DatabaseDSN string        `envconfig:"DATABASE_DSN" default:"shopsquare:shopsquare@tcp(localhost:3306)/users?parseTime=true&multiStatements=true"`
	JWTSecret   string        `envconfig:"JWT_SECRET" default:"shopsquare-dev-secret"`
	JWTTTL      time.Duration `envconfig:"JWT_TTL" default:"2h"`
}

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	app := &cli.App{
		Name:   "userservice",
		Usage:  "user registry and authentication service",
		Action: serve,
		Commands: []*cli.Command{
			{Name: "serve", Usage: "run the HTTP server", Action: serve},
			{Name: "migrate", Usage: "apply database migrations", Action: migrateSchema},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("userservice terminated")
	}
}

func parseConfig() (*appConfig, error) {
	cfg := new(appConfig)
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func serve(_ *cli.Context) error {
	cfg, err := parseConfig()
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	svc := service.NewUserService(
		repository.NewUserRepository(db),
		service.TokenConfig{Secret: cfg.JWTSecret, TTL: cfg.JWTTTL},
	)
	return server.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), transport.Router(svc))
}

func migrateSchema(_ *cli.Context) error {
	cfg, err := parseConfig()
	if err != nil {
		return err
	}
	return database.Migrate(cfg.DatabaseDSN, repository.Migrations())
}
