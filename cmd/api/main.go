package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/invoicepad/invoicepad/internal/config"
	invoicepadHttp "github.com/invoicepad/invoicepad/internal/http"
	invoiceHandler "github.com/invoicepad/invoicepad/internal/http/invoice"
	"github.com/invoicepad/invoicepad/internal/invoice"
	"github.com/invoicepad/invoicepad/internal/invoice/store"
	"github.com/invoicepad/invoicepad/internal/pdf"
	"github.com/invoicepad/invoicepad/internal/render"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	renderer, err := render.NewHTML()
	if err != nil {
		slog.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	var (
		invoiceService = invoice.NewService(store.New(time.Now()))
		pdfService     = pdf.NewService()
	)

	invoiceH := invoiceHandler.NewHandler(invoiceService, renderer, pdfService)

	router := invoicepadHttp.New(invoiceH, cfg.CORS.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
