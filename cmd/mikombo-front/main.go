package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/davidfabkj12/mikombo-front/internal/cartstore"
	"github.com/davidfabkj12/mikombo-front/internal/checkout"
	"github.com/davidfabkj12/mikombo-front/internal/clients"
	"github.com/davidfabkj12/mikombo-front/internal/config"
	"github.com/davidfabkj12/mikombo-front/internal/httpapi"
	"github.com/davidfabkj12/mikombo-front/internal/session"
)

func main() {
	_ = godotenv.Load()

	logger := log.New(os.Stdout, "[mikombo-front] ", log.LstdFlags|log.Lshortfile)

	cfg := config.Load()

	store, err := cartstore.Open(cfg.DataDir, logger)
	if err != nil {
		logger.Fatalf("open cart store: %v", err)
	}

	guard := session.NewTokenGuard(cfg.DataDir)

	apiClient, err := clients.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.UpstreamTimeout}, guard)
	if err != nil {
		logger.Fatalf("configure api client: %v", err)
	}

	ordersClient := clients.NewOrdersClient(apiClient)
	orchestrator := checkout.NewOrchestrator(store, guard, checkout.NewAPIOrderPlacer(ordersClient), logger)

	mux := httpapi.NewRouter(
		httpapi.NewCartHandler(store, orchestrator),
		httpapi.NewCatalogHandler(clients.NewCatalogClient(apiClient)),
		httpapi.NewBookingHandler(clients.NewReservationsClient(apiClient), ordersClient, guard),
		httpapi.NewAdminHandler(clients.NewAdminClient(apiClient), guard),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("mikombo-front listening on :%s (api %s)", cfg.Port, cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Printf("shutdown signal received")
	case err := <-errCh:
		logger.Fatalf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
}
