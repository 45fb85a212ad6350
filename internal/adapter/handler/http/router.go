package http

import (
	"github.com/MikeRez0/ypsmartshop/internal/adapter/config"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.Idempotency,
	tokenService port.TokenService,
	idempotencyStore port.IdempotencyStore,
	productHandler *ProductHandler,
	clientHandler *ClientHandler,
	orderHandler *OrderHandler,
	paymentHandler *PaymentHandler,
	promoHandler *PromoHandler,
	logger *zap.Logger) (*Router, error) {

	h := NewHandler(logger)

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(logger))

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", h.authOptional(tokenService), productHandler.GetProduct)

			admin := products.Group("")
			admin.Use(h.authCheck(tokenService))
			admin.POST("", productHandler.CreateProduct)
			admin.PUT("/:id", productHandler.UpdateProduct)
			admin.DELETE("/:id", productHandler.DeleteProduct)
			admin.POST("/:id/restock", productHandler.Restock)
		}

		clients := api.Group("/clients")
		{
			clients.Use(h.authCheck(tokenService))
			clients.POST("", clientHandler.CreateClient)
			clients.GET("", clientHandler.ListClients)
			clients.GET("/:id", clientHandler.GetClient)
			clients.PUT("/:id", clientHandler.UpdateClient)
			clients.DELETE("/:id", clientHandler.DeleteClient)
		}

		orders := api.Group("/orders")
		{
			orders.Use(h.authCheck(tokenService))
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("/:id/confirm", orderHandler.ConfirmOrder)
			orders.POST("/:id/cancel", orderHandler.CancelOrder)
			orders.GET("/:id/payments", paymentHandler.ListPayments)
		}

		payments := api.Group("/payments")
		{
			payments.Use(h.authCheck(tokenService))
			payments.POST("", h.idempotency(idempotencyStore, conf.TTL), paymentHandler.AddPayment)
			payments.POST("/:id/validate", paymentHandler.ValidatePayment)
			payments.POST("/:id/cancel", paymentHandler.CancelPayment)
		}

		promos := api.Group("/promo-codes")
		{
			promos.Use(h.authCheck(tokenService))
			promos.POST("", promoHandler.CreatePromo)
			promos.GET("", promoHandler.ListPromos)
			promos.GET("/:code", promoHandler.GetPromo)
			promos.POST("/:code/deactivate", promoHandler.DeactivatePromo)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
