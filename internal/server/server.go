package server

import (
	"context"
	"net/http"

	"gymfinder/internal/cache"
	"gymfinder/internal/config"
	"gymfinder/internal/gym"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, cacheClient *cache.Client) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))
	router.Use(corsMiddleware())

	// A typed nil *cache.Client must not end up inside the Cache
	// interface, or the service's nil check stops working.
	var listingCache gym.Cache
	if cacheClient != nil {
		listingCache = cacheClient
	}

	gymRepo := gym.NewRepository(db)
	gymService := gym.NewService(gymRepo, gym.Options{
		DefaultCity:   cfg.DefaultCity,
		EnforceRadius: cfg.EnforceRadius,
		Labels:        gym.DefaultLabels(),
		Cache:         listingCache,
		CacheTTL:      cfg.CacheTTL,
	})
	gymHandler := gym.NewHandler(gymService, cfg.DefaultCity)

	apiGroup := router.Group("/api")
	{
		gyms := apiGroup.Group("/gyms")
		{
			gyms.GET("", gymHandler.Search)
			gyms.GET("/cities", gymHandler.ListCities)
			gyms.GET("/countries", gymHandler.ListCountries)
			gyms.GET("/:uuid", gymHandler.GetGym)
		}
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: router,
		},
		config: cfg,
	}
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
