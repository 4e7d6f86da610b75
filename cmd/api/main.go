package main

import (
	"context"
	"database/sql"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	_ "storefront/docs"
	"storefront/pkg/cart"
	cartfile "storefront/pkg/cart/file"
	"storefront/pkg/cart/memory"
	cartpg "storefront/pkg/cart/postgres"
	cartredis "storefront/pkg/cart/redis"
	"storefront/pkg/catalog"
	"storefront/pkg/logger"
	"storefront/pkg/otel"
)

var (
	cat       *catalog.Catalog
	fetcher   *catalog.Fetcher
	cartStore *cart.Store
	log       *zap.Logger
	tracer    trace.Tracer
)

// @title Storefront API
// @version 1.0
// @description Catalog and cart API for the recipe storefront
// @host localhost:8080
// @BasePath /
func main() {
	// No .env file is fine, env vars come from the runtime.
	_ = godotenv.Load()

	var err error
	log, err = logger.New(os.Getenv("DEBUG") == "true")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{
		ServiceName: "storefront",
		Host:        os.Getenv("OTEL_HOST"),
		Probability: 1.0,
	})
	if err != nil {
		log.Error("init tracing", zap.Error(err))
		return
	}
	defer shutdown(context.Background())
	tracer = tp.Tracer("storefront")

	storage, err := newCartStorage()
	if err != nil {
		log.Warn("cart storage unavailable, continuing memory-only", zap.Error(err))
		storage = memory.New()
	}
	cartStore = cart.NewStore(context.Background(), storage, log)

	enricher := catalog.NewEnricher(rand.New(rand.NewSource(time.Now().UnixNano())))
	fetcher = catalog.NewFetcher(os.Getenv("CATALOG_URL"), enricher, log)
	cat = catalog.NewCatalog()

	// The cart is already usable from its restored state while the
	// initial fetch is outstanding.
	go func() {
		cat.Replace(fetcher.Fetch(context.Background()))
	}()

	r := mux.NewRouter()
	r.Use(traceMiddleware, requestIDMiddleware, corsMiddleware)
	r.HandleFunc("/catalog", listCatalogHandler).Methods(http.MethodGet)
	r.HandleFunc("/catalog/refresh", refreshCatalogHandler).Methods(http.MethodPost)
	r.HandleFunc("/catalog/search", searchCatalogHandler).Methods(http.MethodGet)

	c := r.PathPrefix("/cart").Subrouter()
	c.HandleFunc("", getCartHandler).Methods(http.MethodGet)
	c.HandleFunc("/items", addItemHandler).Methods(http.MethodPost)
	c.HandleFunc("/items/{id}", removeItemHandler).Methods(http.MethodDelete)
	c.HandleFunc("/items/{id}", updateQuantityHandler).Methods(http.MethodPatch)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Error("server closed", zap.Error(err))
	}
}

// newCartStorage selects the durable cart backend from CART_STORAGE:
// file (default), redis, postgres, or memory.
func newCartStorage() (cart.Storage, error) {
	switch os.Getenv("CART_STORAGE") {
	case "redis":
		client := goredis.NewClient(&goredis.Options{Addr: os.Getenv("REDIS_ADDR")})
		return cartredis.New(client), nil
	case "postgres":
		db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
		if err != nil {
			return nil, err
		}
		if _, err := db.Exec("CREATE TABLE IF NOT EXISTS carts (id TEXT PRIMARY KEY, data JSONB)"); err != nil {
			return nil, err
		}
		return cartpg.New(db), nil
	case "memory":
		return memory.New(), nil
	default:
		path := os.Getenv("CART_FILE")
		if path == "" {
			path = "cart.json"
		}
		return cartfile.New(path), nil
	}
}

func traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.InjectTracing(r.Context(), tracer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestIDMiddleware tags every request with an id for log
// correlation alongside the trace id.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
