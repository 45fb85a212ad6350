package main

import (
	"context"
	"fmt"

	"github.com/MikeRez0/ypsmartshop/internal/adapter/auth"
	"github.com/MikeRez0/ypsmartshop/internal/adapter/config"
	"github.com/MikeRez0/ypsmartshop/internal/adapter/handler/http"
	"github.com/MikeRez0/ypsmartshop/internal/adapter/idempotency"
	"github.com/MikeRez0/ypsmartshop/internal/adapter/logger"
	"github.com/MikeRez0/ypsmartshop/internal/adapter/storage"
	"github.com/MikeRez0/ypsmartshop/internal/adapter/storage/memory"
	"github.com/MikeRez0/ypsmartshop/internal/adapter/storage/repository"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/MikeRez0/ypsmartshop/internal/core/service"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s", err)
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	repo, err := newRepository(ctx, conf, log)
	if err != nil {
		log.Error("storage error", zap.Error(err))
		return
	}

	idem, err := newIdempotencyStore(ctx, conf.Idempotency, log)
	if err != nil {
		log.Error("idempotency store error", zap.Error(err))
		return
	}

	tokenService, err := auth.New(conf.Auth)
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}
	if conf.Auth.Key == "" {
		log.Warn("No token key configured, generated a random one", zap.String("key", tokenService.KeyHex()))
	}

	promos, err := service.NewPromoService(repo, log.Named("Promos"))
	if err != nil {
		log.Error("promo service creating error", zap.Error(err))
		return
	}
	pricing, err := service.NewPricingEngine(promos, conf.Pricing.TaxRate, log.Named("Pricing"))
	if err != nil {
		log.Error("pricing engine creating error", zap.Error(err))
		return
	}
	stock, err := service.NewStockGuard(repo, repo, log.Named("Stock"))
	if err != nil {
		log.Error("stock guard creating error", zap.Error(err))
		return
	}
	clients, err := service.NewClientService(repo, log.Named("Clients"))
	if err != nil {
		log.Error("client service creating error", zap.Error(err))
		return
	}
	catalog, err := service.NewCatalogService(repo, stock, log.Named("Catalog"))
	if err != nil {
		log.Error("catalog service creating error", zap.Error(err))
		return
	}
	orders, err := service.NewOrderService(repo, pricing, stock, promos, clients, log.Named("Orders"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}
	payments, err := service.NewPaymentService(repo, log.Named("Payments"))
	if err != nil {
		log.Error("payment service creating error", zap.Error(err))
		return
	}

	productHandler, err := http.NewProductHandler(catalog, log.Named("Product handler"))
	if err != nil {
		log.Error("product handler creating error", zap.Error(err))
		return
	}
	clientHandler, err := http.NewClientHandler(clients, log.Named("Client handler"))
	if err != nil {
		log.Error("client handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(orders, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(payments, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}
	promoHandler, err := http.NewPromoHandler(promos, log.Named("Promo handler"))
	if err != nil {
		log.Error("promo handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.Idempotency, tokenService, idem,
		productHandler, clientHandler, orderHandler, paymentHandler, promoHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	log.Info("Starting server", zap.String("address", conf.HTTP.HostString))
	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}

// newRepository uses Postgres when a DSN is configured and the in-memory store otherwise.
func newRepository(ctx context.Context, conf *config.Config, log *zap.Logger) (port.Repository, error) {
	if conf.Database.DSN == "" {
		log.Warn("No database configured, data is kept in memory")
		return memory.NewStore(), nil
	}

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	err = db.RunMigrations()
	if err != nil {
		return nil, fmt.Errorf("database migration error: %w", err)
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	return repo, nil
}

func newIdempotencyStore(ctx context.Context, conf *config.Idempotency, log *zap.Logger) (port.IdempotencyStore, error) {
	if conf.RedisAddress == "" {
		log.Warn("No redis configured, idempotency keys are kept in memory")
		return idempotency.NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{Addr: conf.RedisAddress})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return idempotency.NewRedisStore(client), nil
}
