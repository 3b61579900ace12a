package routes

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"online-shop/config"
	"online-shop/controllers"
	"online-shop/middleware"
	"online-shop/repositories"
	"online-shop/services"
)

func SetupRoutes(router *gin.Engine) {
	tokens := services.NewTokenService(config.AppConfig.JWTSecret, config.AppConfig.JWTExpiry)

	userRepo := repositories.NewUserRepository()
	productRepo := repositories.NewProductRepository()
	cartRepo := repositories.NewCartRepository()
	wishlistRepo := repositories.NewWishlistRepository()
	contactRepo := repositories.NewContactRepository()

	mailer, err := services.NewSMTPMailer()
	if err != nil {
		log.Println("Contact notifications disabled:", err)
	}

	var productCache services.ProductCache
	if config.RedisClient != nil {
		productCache = services.NewRedisProductCache(config.RedisClient)
	}

	authCtrl := controllers.NewAuthController(services.NewAuthService(userRepo, tokens))
	productCtrl := controllers.NewProductController(services.NewProductService(productRepo, productCache))
	cartCtrl := controllers.NewCartController(services.NewCartService(userRepo, cartRepo, productCache))
	wishlistCtrl := controllers.NewWishlistController(services.NewWishlistService(userRepo, wishlistRepo, productRepo))

	contactSvc := services.NewContactService(contactRepo, nil)
	if mailer != nil {
		contactSvc = services.NewContactService(contactRepo, mailer)
	}
	contactCtrl := controllers.NewContactController(contactSvc)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.GET("/products/code/:code", productCtrl.GetProductByCode)
	router.GET("/products/category/:category", productCtrl.GetProductsByCategory)
	router.GET("/products/status/:status", productCtrl.GetProductsByInventoryStatus)

	router.POST("/contacts", contactCtrl.SubmitContact)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(tokens))
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/items", cartCtrl.AddToCart)
		auth.PUT("/cart/items/:itemId", cartCtrl.UpdateCartItem)
		auth.DELETE("/cart/items/:itemId", cartCtrl.RemoveFromCart)
		auth.DELETE("/cart", cartCtrl.ClearCart)
		auth.POST("/cart/checkout", cartCtrl.Checkout)

		auth.GET("/wishlist", wishlistCtrl.GetWishlist)
		auth.POST("/wishlist/items", wishlistCtrl.AddToWishlist)
		auth.DELETE("/wishlist/items/:itemId", wishlistCtrl.RemoveFromWishlist)
		auth.DELETE("/wishlist", wishlistCtrl.ClearWishlist)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(tokens), middleware.AdminMiddleware())
	{
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PUT("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.GET("/contacts", contactCtrl.GetAllContacts)
	}
}
