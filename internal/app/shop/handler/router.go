package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shopline/pkg/logger"
)

// SetupRoutes настраивает все маршруты приложения с использованием Gin
func SetupRoutes(
	authHandler *AuthHandler,
	importHandler *ImportHandler,
	catalogHandler *CatalogHandler,
	cartHandler *CartHandler,
	authMiddleware *AuthMiddleware,
) *gin.Engine {
	router := gin.New()

	// Recovery middleware для обработки panic
	router.Use(gin.Recovery())

	// JSON logging middleware для HTTP-запросов
	router.Use(logger.GinLoggerMiddleware())

	// Prometheus metrics middleware
	router.Use(MetricsMiddleware())

	// CORS настройки
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "shopline",
		})
	})

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Публичные эндпоинты (без аутентификации)
	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)

		// Защищенные эндпоинты (требуют аутентификации)
		protected := auth.Group("")
		protected.Use(authMiddleware.Authenticate())
		{
			protected.POST("/logout", authHandler.Logout)
		}
	}

	// Каталог доступен без аутентификации
	router.GET("/products", catalogHandler.GetOffers)
	router.GET("/categories", catalogHandler.GetCategories)

	// Импорт каталога - только для магазинов
	importGroup := router.Group("/import")
	importGroup.Use(authMiddleware.Authenticate())
	{
		importGroup.POST("", importHandler.ImportProducts)
	}

	// Корзина и заказы
	cart := router.Group("/cart")
	cart.Use(authMiddleware.Authenticate())
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("", cartHandler.AddToCart)
		cart.DELETE("", cartHandler.RemoveFromCart)
	}

	orders := router.Group("/orders")
	orders.Use(authMiddleware.Authenticate())
	{
		orders.GET("", cartHandler.ListOrders)
		orders.POST("/confirm", cartHandler.ConfirmOrder)
	}

	// Контакты доставки
	contacts := router.Group("/contacts")
	contacts.Use(authMiddleware.Authenticate())
	{
		contacts.GET("", cartHandler.ListContacts)
		contacts.POST("", cartHandler.CreateContact)
		contacts.PUT("/:id", cartHandler.UpdateContact)
		contacts.DELETE("/:id", cartHandler.DeleteContact)
	}

	return router
}
