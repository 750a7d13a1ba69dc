package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
)

// ListenAndServe runs the HTTP server until SIGINT/SIGTERM, then shuts it
// down gracefully.
func ListenAndServe(addr string, handler http.Handler) error {
	killSignalChan := getKillSignalChan()
	srv := startServer(addr, handler)

	waitForKillSignal(killSignalChan)
	return srv.Shutdown(context.Background())
}

func startServer(addr string, handler http.Handler) *http.Server {
	log.WithField("url", addr).Info("starting server")
	srv := &http.Server{Addr: addr, Handler: handler}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	return srv
}

func getKillSignalChan() chan os.Signal {
	osKillSignalChan := make(chan os.Signal, 1)
	signal.Notify(osKillSignalChan, os.Interrupt, syscall.SIGTERM)
	return osKillSignalChan
}

func waitForKillSignal(killSignalChan <-chan os.Signal) {
	killSignal := <-killSignalChan
	switch killSignal {
	case os.Interrupt:
		log.Info("got SIGINT...")
	case syscall.SIGTERM:
		log.Info("got SIGTERM...")
	}
}
