package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/topiary/auth"
	"github.com/danielhkuo/topiary/categorize"
	"github.com/danielhkuo/topiary/classifier"
	"github.com/danielhkuo/topiary/cliparse"
	"github.com/danielhkuo/topiary/middleware"
	"github.com/danielhkuo/topiary/router"
	"github.com/danielhkuo/topiary/store"
)

func main() {
	// Load .env if present; env variables feed the flag fallbacks
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the ledger and question index
	st, err := store.Open(cfg.DataDir)
	if err != nil {
		slog.Error("store open failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := st.Close(); err != nil {
			slog.Error("store close failed", "error", err)
		}
	}()
	slog.Info("Data store ready", "dir", cfg.DataDir)

	// Connect the Gemini classifier
	gemini, err := classifier.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		slog.Error("classifier setup failed", "error", err)
		os.Exit(1)
	}

	svc := categorize.New(st, gemini)
	mgr := auth.NewManager(cfg.AdminPassword, cfg.SessionSecret)

	// Create router
	mux := router.NewRouter(st, svc, mgr)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "model", cfg.GeminiModel)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
