package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"petconnect/internal/adapters/auth/tokens"
	"petconnect/internal/adapters/biogen/gemini"
	"petconnect/internal/adapters/capture/filecam"
	"petconnect/internal/adapters/share/webshare"
	"petconnect/internal/platform/logger"
	"petconnect/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env opcional, solo para dev local.
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	opts := router.Options{Log: log}

	// Sin JWT_SECRET corre en modo dev (X-Debug-User-ID).
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		verifier, err := tokens.New(secret)
		if err != nil {
			log.Error("jwt verifier inválido", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		opts.AuthVerifier = verifier
	} else {
		log.Warn("sin JWT_SECRET: modo dev con X-Debug-User-ID", nil)
	}

	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		gen, err := gemini.New(context.Background(), apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Error("no se pudo crear el cliente gemini", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		opts.Biogen = gen
	}

	sharer, err := webshare.New(os.Getenv("SHARE_RELAY_URL"), 0)
	if err != nil {
		log.Error("share relay inválido", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
	opts.Sharer = sharer

	if src := os.Getenv("CAMERA_SOURCE"); src != "" {
		opts.Camera = filecam.New(src)
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
