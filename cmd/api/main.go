package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/board"
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/config"
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/database"
	apiHttp "github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/http"
	importHandler "github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/http/importcsv"
	materialityHandler "github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/http/materiality"
	proformaHandler "github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/http/proforma"
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/importer"
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/materiality"
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma"
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := store.New(db)

	var (
		proformaService = proforma.NewService(repo)
		importService   = importer.NewService()
		boardService    = board.NewService(repo, materiality.NewMetrics())
	)

	var (
		proformaH    = proformaHandler.NewHandler(proformaService)
		importH      = importHandler.NewHandler(importService, proformaService)
		materialityH = materialityHandler.NewHandler(boardService)
	)

	router := apiHttp.New(proformaH, importH, materialityH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
