package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"contractassist/internal/api"
	"contractassist/internal/config"
	"contractassist/internal/metrics"
	"contractassist/internal/service/ai"
	"contractassist/internal/service/assistant"
	"contractassist/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.Printf("provider: %s model: %s\n", cfg.Provider.Name, cfg.Provider.Model)

	client, err := ai.NewClient(context.Background(), cfg)
	if err != nil {
		log.Fatalf("init ai client: %v", err)
	}

	store := storage.NewStore()
	assistantService := assistant.NewService(store, client)
	handlers := api.NewHandler(assistantService)

	reg := prometheus.NewRegistry()
	metrics.RegisterCollectors(reg)

	router := gin.Default()
	handlers.RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	withCORS := cors.AllowAll().Handler(router)

	log.Printf("listening on %s\n", cfg.Server.Address)
	if err := http.ListenAndServe(cfg.Server.Address, withCORS); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
