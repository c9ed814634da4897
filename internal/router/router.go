// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novamart/storefront-api/internal/config"
	"github.com/novamart/storefront-api/internal/handlers"
	"github.com/novamart/storefront-api/internal/middleware"
	"github.com/novamart/storefront-api/internal/services"
	"github.com/novamart/storefront-api/internal/store"
	"github.com/novamart/storefront-api/internal/utils"
)

func Initialize(catalog *store.Catalog, carts *store.CartStore, sessions *store.SessionStore, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(catalog)
	cartService := services.NewCartService(carts, catalog)
	authService := services.NewAuthService(sessions, cfg)
	checkoutService := services.NewCheckoutService(carts, cfg)
	contactService := services.NewContactService(cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLog())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.GetProfile)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)

			// Admin routes
			protected := products.Group("")
			protected.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				protected.POST("", productHandler.CreateProduct)
				protected.PUT("/:id", productHandler.UpdateProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
			}
		}

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", productHandler.GetCategories)
		}

		// Cart routes
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.GET("/quote", cartHandler.GetQuote)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:lineId", cartHandler.UpdateQuantity)
			cart.DELETE("/items/:lineId", cartHandler.RemoveItem)
			cart.DELETE("", cartHandler.ClearCart)
		}

		// Checkout routes
		checkout := v1.Group("/checkout")
		checkout.Use(middleware.CheckoutRateLimit())
		{
			checkout.POST("", checkoutHandler.PlaceOrder)
		}

		// Contact routes
		contact := v1.Group("/contact")
		{
			contact.POST("", contactHandler.Submit)
		}
	}

	return r
}
