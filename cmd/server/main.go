package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sos-service/config"
	"sos-service/internal/api"
	"sos-service/internal/location"
	"sos-service/internal/notification"
	"sos-service/internal/realtime"
	"sos-service/internal/sos"
	"sos-service/pkg/constants"
	"sos-service/pkg/consul"
	"sos-service/pkg/firebase"
	"sos-service/pkg/validator"
	"sos-service/pkg/zap"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.LoadConfig()

	logger, err := zap.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := validator.RegisterCustomValidations(); err != nil {
		logger.Fatalf("Failed to register validators: %v", err)
	}

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry, closeRegistry, err := newRegistry(appCtx, cfg)
	if err != nil {
		logger.Fatalf("Failed to init location registry: %v", err)
	}
	defer closeRegistry()

	counter, closeCounter, err := newPressCounter(appCtx, cfg)
	if err != nil {
		logger.Fatalf("Failed to init SOS press counter: %v", err)
	}
	defer closeCounter()

	_, fcmClient, err := firebase.SetUpFireBase(appCtx, cfg.Firebase.CredentialsFile)
	if err != nil {
		logger.Fatalf("Failed to set up firebase: %v", err)
	}

	hub := realtime.NewHub(logger)
	go hub.Run(appCtx)

	dispatcher := notification.NewDispatcher(
		notification.NewFCMProvider(fcmClient, cfg.Firebase.DryRun),
		notification.DispatcherConfig{
			MaxAttempts:    cfg.Notification.MaxAttempts,
			Backoff:        cfg.Notification.Backoff,
			AttemptTimeout: cfg.Notification.AttemptTimeout,
			Title:          "🚨 SOS Alert",
			AlertType:      constants.AlertTypeSos,
		},
		logger,
	)

	locationService := location.NewLocationService(registry, hub, logger)
	sosService := sos.NewSosService(registry, dispatcher, counter, hub, sos.Options{
		RadiusKm:     cfg.Sos.RadiusKm,
		FanoutLimit:  cfg.Sos.FanoutLimit,
		NotifySender: cfg.Sos.NotifySender,
	}, logger)

	c := cron.New(cron.WithSeconds())
	if _, err := location.ScheduleEviction(c, cfg.Location.EvictCron, locationService, cfg.Location.StaleAfter, logger); err != nil {
		logger.Fatalf("AddFunc error: %v", err)
	}
	c.Start()
	defer c.Stop()

	router := api.NewRouter(cfg, logger, api.Handlers{
		Location: location.NewLocationHandler(locationService),
		Sos:      sos.NewSosHandler(sosService),
		Hub:      hub,
	})

	if cfg.Consul.Enabled {
		consulConn := consul.NewConsulConn(logger, cfg)
		if _, err := consulConn.Connect(); err != nil {
			logger.Fatalf("Failed to register in consul: %v", err)
		}
		defer consulConn.Deregister()
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// in-flight SOS fan-outs may be mid-backoff; give them a full retry window
	shutdownTimeout := 5*time.Second + time.Duration(cfg.Notification.MaxAttempts)*(cfg.Notification.Backoff+cfg.Notification.AttemptTimeout)
	ctx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Error shutting down server: %v", err)
	}
	logger.Info("Server stopped")
}

func newRegistry(ctx context.Context, cfg *config.Config) (location.Registry, func(), error) {
	if cfg.Location.Store != config.StoreMongo {
		return location.NewMemoryRegistry(), func() {}, nil
	}

	client, err := connectToMongoDB(ctx, cfg.Mongo.URI)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Failed to disconnect MongoDB: %v", err)
		}
	}

	collection := client.Database(cfg.Mongo.Database).Collection("locations")
	registry, err := location.NewMongoRegistry(ctx, collection)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return registry, closeFn, nil
}

func newPressCounter(ctx context.Context, cfg *config.Config) (sos.PressCounter, func(), error) {
	if cfg.Sos.CounterStore != config.StoreRedis {
		return sos.NewMemoryCounter(), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, err
	}

	return sos.NewRedisCounter(rdb), func() { _ = rdb.Close() }, nil
}

func connectToMongoDB(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Println("Failed to connect to MongoDB")
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Println("Failed to ping MongoDB")
		return nil, err
	}

	log.Println("Successfully connected to MongoDB")
	return client, nil
}
