// Command readapi is the minimal read-only server: the three public routes
// and nothing else. Mutations stay with the full server.
package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"eventboard/config"
	"eventboard/internal/adapters/supabase"
	"eventboard/internal/domain"
	"eventboard/internal/repository/postgres"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	var events domain.EventStore
	switch cfg.StoreProvider {
	case "supabase":
		events = supabase.New(cfg.SupabaseURL, cfg.SupabaseKey, nil)
	case "postgres":
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("open database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Error("ping database", "err", err)
			os.Exit(1)
		}
		events = postgres.NewEventStore(db)
	default:
		logger.Error("unknown store provider", "provider", cfg.StoreProvider)
		os.Exit(1)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.Header("Allow", http.MethodGet)
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/events", func(c *gin.Context) {
		list, err := events.ListEvents(c.Request.Context())
		if err != nil {
			logger.Error("list events failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
			return
		}
		if list == nil {
			list = []domain.Event{}
		}
		c.JSON(http.StatusOK, list)
	})
	router.GET("/events/:category", func(c *gin.Context) {
		category := c.Param("category")
		list, err := events.ListEventsByCategory(c.Request.Context(), category)
		if err != nil {
			logger.Error("list events by category failed", "category", category, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
			return
		}
		if list == nil {
			list = []domain.Event{}
		}
		c.JSON(http.StatusOK, list)
	})

	addr := ":" + cfg.Port
	logger.Info("starting read-only server", "addr", addr, "store", cfg.StoreProvider)
	if err := router.Run(addr); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
