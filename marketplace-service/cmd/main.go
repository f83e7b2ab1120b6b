package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bazaar/marketplace-service/internal/app/marketplace/config"
	"bazaar/marketplace-service/internal/app/marketplace/handler"
	"bazaar/marketplace-service/internal/app/marketplace/infrastructure"
	"bazaar/marketplace-service/internal/app/marketplace/infrastructure/cache"
	"bazaar/marketplace-service/internal/app/marketplace/infrastructure/identity"
	"bazaar/marketplace-service/internal/app/marketplace/infrastructure/messaging"
	"bazaar/marketplace-service/internal/app/marketplace/infrastructure/payment"
	"bazaar/marketplace-service/internal/app/marketplace/repository"
	"bazaar/marketplace-service/internal/app/marketplace/service"
	"bazaar/pkg/logger"
)

const serviceName = "marketplace-service"

func main() {
	// .env опционален: в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(serviceName, cfg.LogLevel)

	if cfg.Logstash != "" {
		if err := logger.InitLogstash(cfg.Logstash, serviceName, cfg.LogLevel); err != nil {
			logger.Warn().Err(err).Msg("Failed to connect to Logstash, using stdout only")
		} else {
			logger.Info().Str("logstash_addr", cfg.Logstash).Msg("Connected to Logstash")
		}
	}

	mongoClient, err := connectMongoDB(cfg.MongoDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Error().Err(err).Msg("Error disconnecting from MongoDB")
		}
	}()
	logger.Info().
		Str("database", cfg.MongoDB.Database).
		Msg("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB.Database)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repository.EnsureIndexes(indexCtx, db); err != nil {
		indexCancel()
		logger.Fatal().Err(err).Msg("Failed to create MongoDB indexes")
	}
	indexCancel()

	itemNameCache := newItemNameCache(cfg.Redis)
	defer itemNameCache.Close()

	publisher := newPublisher(cfg.Kafka)
	defer publisher.Close()

	verifier, err := newVerifier(cfg.Auth)
	if err != nil {
		logger.Fatal().Err(err).Str("provider", cfg.Auth.Provider).Msg("Failed to initialize token verifier")
	}

	gateway := payment.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.Currency)

	userService := service.NewUserService(repository.NewUserRepository(db))
	productService := service.NewProductService(repository.NewProductRepository(db), itemNameCache, publisher)
	watchlistService := service.NewWatchlistService(repository.NewWatchlistRepository(db))
	orderService := service.NewOrderService(repository.NewOrderRepository(db), publisher)
	reviewService := service.NewReviewService(repository.NewReviewRepository(db), publisher)
	adService := service.NewAdvertisementService(repository.NewAdvertisementRepository(db))
	paymentService := service.NewPaymentService(gateway)

	authMiddleware := handler.NewAuthMiddleware(verifier, userService)
	router := handler.SetupRoutes(handler.Handlers{
		Users:          handler.NewUserHandler(userService),
		Products:       handler.NewProductHandler(productService),
		Watchlist:      handler.NewWatchlistHandler(watchlistService),
		Orders:         handler.NewOrderHandler(orderService),
		Reviews:        handler.NewReviewHandler(reviewService),
		Advertisements: handler.NewAdvertisementHandler(adService),
		Payments:       handler.NewPaymentHandler(paymentService),
	}, authMiddleware, cfg.CORS.AllowOrigins)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("Starting Marketplace Service")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down Marketplace Service...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Marketplace Service stopped gracefully")
}

func connectMongoDB(cfg config.MongoDBConfig) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(cfg.URI)

	var client *mongo.Client
	var err error

	for i := 0; i < 10; i++ {
		client, err = tryConnect(clientOptions)
		if err == nil {
			return client, nil
		}

		logger.Warn().
			Int("attempt", i+1).
			Err(err).
			Msg("Failed to connect to MongoDB, retrying...")
		time.Sleep(3 * time.Second)
	}

	return nil, err
}

func tryConnect(clientOptions *options.ClientOptions) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

// newItemNameCache подключает Redis; без адреса или при недоступном Redis работает без кеша
func newItemNameCache(cfg config.RedisConfig) infrastructure.ItemNameCache {
	if cfg.Addr == "" {
		logger.Info().Msg("Redis address is not set, item name cache disabled")
		return cache.NoopCache{}
	}

	redisCache, err := cache.NewRedisCache(cfg.Addr, cfg.Password, cfg.DB, cfg.TTL)
	if err != nil {
		logger.Warn().Err(err).Str("addr", cfg.Addr).Msg("Failed to connect to Redis, item name cache disabled")
		return cache.NoopCache{}
	}

	logger.Info().
		Str("addr", cfg.Addr).
		Dur("ttl", cfg.TTL).
		Msg("Connected to Redis")
	return redisCache
}

func newPublisher(cfg config.KafkaConfig) infrastructure.MessagePublisher {
	if len(cfg.Brokers) == 0 {
		logger.Info().Msg("Kafka brokers are not set, marketplace events disabled")
		return messaging.NoopPublisher{}
	}

	logger.Info().
		Strs("brokers", cfg.Brokers).
		Str("topic", cfg.Topic).
		Msg("Initialized Kafka producer")
	return messaging.NewKafkaProducer(cfg.Brokers, cfg.Topic)
}

func newVerifier(cfg config.AuthConfig) (infrastructure.IdentityVerifier, error) {
	switch cfg.Provider {
	case config.AuthProviderJWT:
		logger.Warn().Msg("Using shared-secret JWT verification, not for production")
		return identity.NewJWTVerifier(cfg.JWTSecret), nil
	case config.AuthProviderFirebase:
		credentials, err := cfg.Firebase.CredentialsJSON()
		if err != nil {
			return nil, fmt.Errorf("encode firebase credentials: %w", err)
		}
		// контекст живет весь срок процесса: клиент Firebase держит его для загрузки ключей
		return identity.NewFirebaseVerifier(context.Background(), credentials, cfg.Firebase.ProjectID)
	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.Provider)
	}
}
