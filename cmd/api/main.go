package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"animal-registry/internal/blob"
	"animal-registry/internal/platform/logger"
	"animal-registry/internal/router"
)

func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	boltPath := os.Getenv("BOLT_PATH")
	if boltPath == "" && os.Getenv("DB_DSN") == "" {
		boltPath = "animal-registry.db"
	}

	blobStore, err := blob.FromEnv(context.Background())
	if err != nil {
		log.Error("blob store setup failed", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	r := router.NewRouter(router.Options{
		BoltPath: boltPath,
		Blob:     blobStore,
		Logger:   log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr, "blob": string(blobStore.Driver())})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
