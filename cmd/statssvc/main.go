package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/redis/go-redis/v9"

	log "github.com/sirupsen/logrus"
	config "github.com/wordrush/boggle-services/configs"
	"github.com/wordrush/boggle-services/internal/comm"
	nats "github.com/wordrush/boggle-services/internal/nats"
	"github.com/wordrush/boggle-services/internal/statssvc/broker"
	"github.com/wordrush/boggle-services/internal/statssvc/cache"
	"github.com/wordrush/boggle-services/internal/statssvc/db"
	handlers "github.com/wordrush/boggle-services/internal/statssvc/handlers"
	"github.com/wordrush/boggle-services/internal/statssvc/store"
)

const SERVICE_NAME = "stats"

var instanceId string

func init() {
	instanceId = "001"
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
	config.LoadEnv(SERVICE_NAME)
}

func main() {

	// pg connection
	dbpool, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.ClosePool()
	log.Printf("pg connection established successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.EnsureSchema(ctx, dbpool); err != nil {
		cancel()
		log.Fatalf("Failed to ensure leaderboard schema: %v", err)
	}
	cancel()

	leaderboardStore := store.NewLeaderboardStore(dbpool)

	// Redis page cache; the leaderboard still serves from pg without it
	var pageCache *cache.Cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Warnf("unable to connect to redis, leaderboard cache disabled: %v", err)
	} else {
		pageCache = cache.New(redisClient)
		log.Printf("redis connection established successfully")
	}

	// Connect to NATS
	n, err := nats.Connect()
	if err != nil {
		log.Errorf("Error: unable to connect to NATS server %v", err)
		os.Exit(0)
	}

	defer n.Conn.Close()
	log.Printf("NATS connection established successfully %s", n.Url)

	// consume game events into the leaderboard
	b := broker.NewBroker(n.Conn, leaderboardStore)
	sub, err := b.SubscribeGameEvents(comm.TopicGameEvents)
	if err != nil {
		log.Errorf("Error: unable to subscribe to game events %v", err)
		os.Exit(0)
	}

	// Setup router
	r := chi.NewRouter()
	c := config.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// Init handlers and routes
	h := handlers.NewHandler(leaderboardStore, pageCache)
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + os.Getenv("STATS_SERVICE_PORT"),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	sub.Unsubscribe()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
