package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"shopsquare/pkg/platform/config"
	"shopsquare/pkg/platform/database"
	"shopsquare/pkg/platform/refcheck"
	"shopsquare/pkg/platform/server"
	"shopsquare/pkg/product/repository"
	"shopsquare/pkg/product/service"
	"shopsquare/pkg/product/transport"
)

type appConfig struct {
	Port            int    `envconfig:"PORT" default:"8084"`
	DatabaseDSN     string `envconfig:"DATABASE_DSN" default:"shopsquare:shopsquare@tcp(localhost:3306)/products?parseTime=true&multiStatements=true"`
	ShopServiceName string `envconfig:"SHOP_SERVICE_NAME" default:"shop-service"`
}

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	app := &cli.App{
		Name:   "productservice",
		Usage:  "product registry with stock tracking",
		Action: serve,
		Commands: []*cli.Command{
			{Name: "serve", Usage: "run the HTTP server", Action: serve},
			{Name: "migrate", Usage: "apply database migrations", Action: migrateSchema},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("productservice terminated")
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

	svc := service.NewProductService(
		repository.NewProductRepository(db),
		refcheck.NewHTTPChecker(cfg.ShopServiceName, "shops"),
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
