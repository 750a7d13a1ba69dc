package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"shopsquare/pkg/cart/gateway"
	"shopsquare/pkg/cart/repository"
	"shopsquare/pkg/cart/service"
	"shopsquare/pkg/cart/transport"
	"shopsquare/pkg/platform/config"
	"shopsquare/pkg/platform/database"
	"shopsquare/pkg/platform/refcheck"
	"shopsquare/pkg/platform/server"
)

type appConfig struct {
	Port                int    `envconfig:"PORT" default:"8085"`
	DatabaseDSN         string `envconfig:"DATABASE_DSN" default:"shopsquare:shopsquare@tcp(localhost:3306)/carts?parseTime=true&multiStatements=true"`
	UserServiceName     string `envconfig:"USER_SERVICE_NAME" default:"user-service"`
	CartItemServiceName string `envconfig:"CART_ITEM_SERVICE_NAME" default:"cartitem"`
}

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	app := &cli.App{
		Name:   "cartservice",
		Usage:  "shopping cart registry",
		Action: serve,
		Commands: []*cli.Command{
			{Name: "serve", Usage: "run the HTTP server", Action: serve},
			{Name: "migrate", Usage: "apply database migrations", Action: migrateSchema},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("cartservice terminated")
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

	svc := service.NewCartService(
		repository.NewCartRepository(db),
		refcheck.NewHTTPChecker(cfg.UserServiceName, "users"),
		gateway.NewCartItemGateway(cfg.CartItemServiceName),
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
