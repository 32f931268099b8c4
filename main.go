package main

import (
	"log"
	"net/http"
	"time"

	"daily-planner/auth"
	"daily-planner/config"
	"daily-planner/db"
	"daily-planner/handlers"
	appmw "daily-planner/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

// maxBodySize matches the original 10mb JSON body limit.
const maxBodySize = 10 << 20

func newRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
			next.ServeHTTP(w, r)
		})
	})

	r.Post("/api/register", handlers.Register)
	r.Post("/api/login", handlers.Login)

	r.Group(func(r chi.Router) {
		r.Use(appmw.RequireAuth)
		r.Get("/api/planner", handlers.GetPlanner)
		r.Post("/api/planner", handlers.UpdatePlanner)
		r.Get("/api/verify", handlers.Verify)
	})

	return r
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded:", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Config error:", err)
	}

	db.ConnectDB(cfg.DSN)
	auth.SetSecret([]byte(cfg.JWTSecret))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Println("Server running on port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("Server error:", err)
	}
}
