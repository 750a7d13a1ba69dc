package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"shopsquare/pkg/orderitem/gateway"
	"shopsquare/pkg/orderitem/repository"
	"shopsquare/pkg/orderitem/service"
	"shopsquare/pkg/orderitem/transport"
	"shopsquare/pkg/platform/config"
	"shopsquare/pkg/platform/database"
	"shopsquare/pkg/platform/server"
)

type appConfig struct {
	Port               int    `envconfig:"PORT" default:"8088"`
	DatabaseDSN        string `envconfig:"DATABASE_DSN" default:"shopsquare:shopsquare@tcp(localhost:3306)/orderitems?parseTime=true&multiStatements=true"`
	ProductServiceName string `envconfig:"PRODUCT_SERVICE_NAME" default:"product-service"`
}

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	app := &cli.App{
		Name:   "orderitemservice",
		Usage:  "order line item registry",
		Action: serve,
		Commands: []*cli.Command{
			{Name: "serve", Usage: "run the HTTP server", Action: serve},
			{Name: "migrate", Usage: "apply database migrations", Action: migrateSchema},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("orderitemservice terminated")
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

	svc := service.NewOrderItemService(
		repository.NewOrderItemRepository(db),
		gateway.NewProductStockGateway(cfg.ProductServiceName),
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
