package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"medstore/internal/assistant"
	"medstore/internal/cart"
	"medstore/internal/catalog"
	"medstore/internal/checkout"
	"medstore/internal/platform/config"
	"medstore/internal/platform/httpserver"
	"medstore/internal/platform/logger"
	"medstore/internal/platform/metrics"
	httptransport "medstore/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	httpClient := &http.Client{Timeout: cfg.ClientTimeout}

	catalogClient := catalog.NewClient(httpClient, cfg.CatalogURL, cfg.Sheet)
	catalogSvc := catalog.NewService(catalogClient, log, m)

	store := cart.NewStore()
	store.Subscribe(func(sum cart.Summary) {
		log.Debug("cart changed", "count", sum.Count, "total", sum.Total)
	})

	purchaseClient := checkout.NewClient(httpClient, cfg.PurchaseURL)
	checkoutSvc := checkout.NewService(store, purchaseClient, log, m)

	var upstream assistant.Upstream
	if cfg.AssistantURL != "" {
		upstream = assistant.NewClient(httpClient, cfg.AssistantURL)
	}
	assistantSvc := assistant.NewService(catalogSvc, upstream, log)

	handler := httptransport.NewHandler(log, m, catalogSvc, store, checkoutSvc, assistantSvc)
	router := httptransport.NewRouter(handler)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting medstore", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
}
