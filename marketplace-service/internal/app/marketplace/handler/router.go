package handler

import (
	"net/http"
	"time"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/pkg/logger"
	"bazaar/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "marketplace-service"

// Handlers - все обработчики сервиса, собираются в main и передаются в SetupRoutes
type Handlers struct {
	Users          *UserHandler
	Products       *ProductHandler
	Watchlist      *WatchlistHandler
	Orders         *OrderHandler
	Reviews        *ReviewHandler
	Advertisements *AdvertisementHandler
	Payments       *PaymentHandler
}

// SetupRoutes настраивает все маршруты приложения с использованием Gin.
// Проверка токена подключается точечно, на каждый закрытый маршрут
func SetupRoutes(h Handlers, authMiddleware *AuthMiddleware, allowOrigins []string) *gin.Engine {
	router := gin.New()

	// Recovery middleware для обработки panic
	router.Use(gin.Recovery())

	// JSON logging middleware для HTTP-запросов (ELK Stack)
	router.Use(logger.GinLoggerMiddleware())

	// Prometheus metrics middleware
	router.Use(metrics.GinPrometheusMiddleware(serviceName))

	router.Use(cors.New(corsConfig(allowOrigins)))

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "Route not found")
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := authMiddleware.Authenticate()
	admin := authMiddleware.RequireRole(entity.RoleAdmin)

	// Пользователи
	router.POST("/users", h.Users.Upsert)
	router.GET("/users", h.Users.List)
	router.PATCH("/users/:id", h.Users.UpdateRole)
	router.GET("/users/role/:email", h.Users.GetByEmail)

	// Товары
	router.POST("/products", auth, h.Products.Create)
	router.GET("/products/all", h.Products.ListAll)
	router.GET("/products", h.Products.HomeFeed)
	router.GET("/product/:id", h.Products.GetByID)
	router.GET("/unique_itemName", auth, h.Products.ItemNames)
	router.GET("/my_products/:email", h.Products.ListByVendor)
	router.DELETE("/products/:id", h.Products.Delete)
	router.PUT("/product/:id", auth, h.Products.Replace)
	router.PATCH("/products/:id/status", auth, admin, h.Products.UpdateStatus)
	router.GET("/product_by_itemName/:name", h.Products.GetByItemName)

	// Список наблюдения
	router.POST("/watchList", auth, h.Watchlist.Add)
	router.GET("/my_watchList/:email", auth, h.Watchlist.ListByUser)
	router.DELETE("/watchList/:id", auth, h.Watchlist.Delete)

	// Отзывы
	router.POST("/reviews", auth, h.Reviews.Create)
	router.GET("/reviews/:id", auth, h.Reviews.ListByProduct)

	// Реклама
	router.POST("/advertisements", h.Advertisements.Create)
	router.GET("/myAdvertisements/:email", h.Advertisements.ListByVendor)
	router.PATCH("/myAdvertisements/:id", h.Advertisements.Update)
	router.DELETE("/myAdvertisements/:id", h.Advertisements.Delete)

	// Заказы и оплата
	router.POST("/orders", auth, h.Orders.Create)
	router.GET("/myOrders/:email", auth, h.Orders.ListByBuyer)
	router.POST("/create-payment-intent", h.Payments.CreatePaymentIntent)

	return router
}

func corsConfig(allowOrigins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}

	if len(allowOrigins) == 0 || (len(allowOrigins) == 1 && allowOrigins[0] == "*") {
		config.AllowAllOrigins = true
		return config
	}

	config.AllowOrigins = allowOrigins
	config.AllowCredentials = true
	return config
}
