package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Optional .env loader
	"github.com/labstack/echo/v4" // Echo web framework

	"parselog/internal/config"     // Internal config loader
	"parselog/internal/handler"    // HTTP handlers
	"parselog/internal/middleware" // Rate limiting and caching middleware
	"parselog/internal/parser"     // External tool adapter
	"parselog/internal/queue"      // Audit consumer
	"parselog/internal/router"     // Route registration
)

func main() {
	_ = godotenv.Load() // load .env when present; real env always wins

	cfg := config.Load()            // Load environment config
	rdb := config.NewRedisClient()  // May be nil; middleware degrades to pass-through

	e := echo.New() // Create Echo instance
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	p := parser.NewCommand(cfg.ParserBin, cfg.ParserFlag, cfg.ParserTimeout)
	h := handler.NewParseHandler(p)
	router.RegisterRoutes(e, h) // Register application routes

	if cfg.AuditConsumer { // Optional in-process audit trail consumer
		go func() {
			if err := queue.StartAuditConsumer(); err != nil {
				log.Printf("audit-consumer: %v", err)
			}
		}()
	}

	addr := cfg.Addr()                                                        // Address string from host and port
	log.Printf("listening on %s (env=%s, parser=%s)", addr, cfg.Env, cfg.ParserBin) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
