package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"credchain/internal/credential/handler"
	"credchain/internal/credential/metrics"
	"credchain/internal/credential/service"
	"credchain/internal/ledger/stellar"
	"credchain/internal/metadata"
	"credchain/internal/metadata/ipfs"
	"credchain/internal/metadata/memory"
	"credchain/internal/platform/config"
	"credchain/internal/platform/health"
	"credchain/internal/platform/httpserver"
	"credchain/internal/platform/logger"
	"credchain/internal/platform/tracing"
	httptransport "credchain/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Issuance and verification logic lives in internal
// services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if cfg.IssuerSecret == "" {
		log.Error("STELLAR_ISSUER_SECRET is required")
		os.Exit(1)
	}

	ledgerClient, err := stellar.New(cfg.HorizonURL, cfg.NetworkPassphrase, cfg.IssuerSecret, cfg.LedgerTimeout)
	if err != nil {
		log.Error("failed to initialize ledger client", "error", err)
		os.Exit(1)
	}

	healthHandler := health.New()
	healthHandler.RegisterCheck("horizon", ledgerClient.Health)

	var store metadata.Store
	if cfg.IPFSAPIURL != "" {
		ipfsStore := ipfs.New(cfg.IPFSAPIURL, cfg.LedgerTimeout)
		healthHandler.RegisterCheck("ipfs", ipfsStore.Health)
		store = ipfsStore
	} else {
		log.Warn("IPFS_API_URL not set; credential metadata will be stored in memory and lost on restart")
		store = memory.New()
	}

	log.Info("initializing credchain",
		"addr", cfg.Addr,
		"horizon_url", cfg.HorizonURL,
		"issuer_address", ledgerClient.IssuerAddress(),
		"ipfs_api", cfg.IPFSAPIURL,
	)

	credentialService := service.New(ledgerClient, ledgerClient.IssuerAddress(), store,
		service.WithLogger(log),
		service.WithMetrics(metrics.New()),
		service.WithTracer(tracing.NewOTel("credchain")),
	)

	credentialHandler := handler.New(credentialService, log)
	router := httptransport.NewRouter(credentialHandler, healthHandler, log, httptransport.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.LedgerTimeout + 15*time.Second,
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
