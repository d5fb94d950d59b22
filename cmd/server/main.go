package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rgould/citeview/internal/api"
	"github.com/rgould/citeview/internal/chat"
	"github.com/rgould/citeview/internal/config"
	"github.com/rgould/citeview/internal/library"
	"github.com/rgould/citeview/internal/render"
	"github.com/rgould/citeview/internal/viewer"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfgPath := flag.String("config", "citeview.yml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Error("loading configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	lib, err := library.Open(cfg.DocsDir, log)
	if err != nil {
		log.Error("opening document library", "error", err)
		os.Exit(1)
	}

	vw := viewer.New(render.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext})
	panel := chat.NewPanel(cfg.ReplyDelay)

	srv := api.NewServer(vw, panel, lib, log, cfg, *cfgPath)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		panel.Close()
		lib.Close()
	}()

	log.Info("starting citeview", "addr", cfg.Addr, "docs_dir", cfg.DocsDir)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
