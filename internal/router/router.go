package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	boltstore "animal-registry/internal/adapters/storage/bolt"
	mem "animal-registry/internal/adapters/storage/memory"
	pg "animal-registry/internal/adapters/storage/postgres"
	"animal-registry/internal/blob"
	"animal-registry/internal/domain/animals"
	"animal-registry/internal/domain/prefs"
	"animal-registry/internal/interchange"
	"animal-registry/internal/middleware"
	"animal-registry/internal/platform/logger"
	"animal-registry/internal/platform/metrics"
	"animal-registry/internal/upload"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, BoltPath; si tampoco,
	// repos in-memory (dev/tests).
	DB       *sql.DB
	BoltPath string

	// Opcional: destino de las imágenes. nil => memoria.
	Blob blob.Store

	Logger  logger.Logger
	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	mets := opts.Metrics
	if mets == nil {
		mets = metrics.New()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))
	r.Use(mets.Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", mets.Handler())

	animalsRepo, prefsRepo := buildRepos(opts, log)

	blobStore := opts.Blob
	if blobStore == nil {
		blobStore = blob.NewMemory()
	}

	animalsSvc := animals.NewService(animalsRepo)
	prefsSvc := prefs.NewService(prefsRepo)

	animals.RegisterRoutes(r, animalsSvc)
	prefs.RegisterRoutes(r, prefsSvc)
	interchange.RegisterRoutes(r, animalsSvc)

	r.Post("/upload", upload.Handler(blobStore, log))

	// Con blobs en filesystem, las URLs públicas se sirven desde acá.
	if fsStore, ok := blobStore.(*blob.Filesystem); ok {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", fsStore.FileServer()))
	}

	return r
}

// buildRepos elige el backend de persistencia: Postgres si hay DSN,
// bbolt si hay archivo, memoria como último recurso.
func buildRepos(opts Options, log logger.Logger) (animals.Repository, prefs.Repository) {
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err != nil {
				log.Error("postgres unavailable, falling back", map[string]any{"err": err.Error()})
			} else {
				db = opened
			}
		}
	}

	if db != nil {
		if err := pg.EnsureSchema(context.Background(), db); err != nil {
			log.Error("postgres schema setup failed, falling back", map[string]any{"err": err.Error()})
		} else {
			return pg.NewAnimalsRepo(db), pg.NewPrefsRepo(db)
		}
	}

	if opts.BoltPath != "" {
		store, err := boltstore.Open(opts.BoltPath)
		if err != nil {
			log.Error("boltdb unavailable, falling back to memory", map[string]any{"err": err.Error()})
		} else {
			return boltstore.NewAnimalsRepo(store), boltstore.NewPrefsRepo(store)
		}
	}

	return mem.NewAnimalsRepo(), mem.NewPrefsRepo()
}
