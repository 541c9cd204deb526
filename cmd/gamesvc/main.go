package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"

	log "github.com/sirupsen/logrus"
	config "github.com/wordrush/boggle-services/configs"
	"github.com/wordrush/boggle-services/internal/db"
	"github.com/wordrush/boggle-services/internal/gamesvc/broker"
	handlers "github.com/wordrush/boggle-services/internal/gamesvc/handlers"
	"github.com/wordrush/boggle-services/internal/gamesvc/service"
	"github.com/wordrush/boggle-services/internal/gamesvc/store"
	"github.com/wordrush/boggle-services/internal/gamesvc/words"
	nats "github.com/wordrush/boggle-services/internal/nats"
)

const SERVICE_NAME = "game"

var instanceId string

func init() {
	instanceId = "001"
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
	config.LoadEnv(SERVICE_NAME)
}

func main() {

	// dictionary load
	if err := words.Init(); err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	log.Printf("dictionary loaded with %d words", words.Count())

	// mongo connection
	database, cancelDB, err := db.ConnectToDB()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer cancelDB()
	log.Printf("mongo connection established successfully")

	db.CreateUniqueIndex(database, "users", "username")

	userStore := store.NewMongoUserStore(database)
	userService := service.NewUserService(userStore)

	gameStore := store.NewMongoGameStore(database)
	gameService := service.NewGameService(gameStore)
	challengeService := service.NewChallengeService(gameStore, userStore)

	// Connect to NATS; game play works without it, stats just go dark
	var gameBroker *broker.Broker
	n, err := nats.Connect()
	if err != nil {
		log.Warnf("unable to connect to NATS server, game events disabled: %v", err)
		gameBroker = broker.NewBroker(nil)
	} else {
		defer n.Conn.Close()
		log.Printf("NATS connection established successfully %s", n.Url)
		gameBroker = broker.NewBroker(n.Conn)
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

	// to protect the service api from any over requests
	rateLimitStr := os.Getenv("RATE_LIMIT")
	rateLimit, err := strconv.Atoi(rateLimitStr)
	if err != nil {
		log.Fatalf("Invalid RATE_LIMIT value: %v", err)
	}
	r.Use(httprate.LimitByIP(rateLimit, 1*time.Minute))

	// Init handlers and routes
	h := handlers.NewHandler(userService, gameService, challengeService, gameBroker)
	h.InitAuth()
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + os.Getenv("GAME_SERVICE_PORT"),
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

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
