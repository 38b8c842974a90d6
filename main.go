package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/touchpointee/avanyaa-store/internal/config"
	"github.com/touchpointee/avanyaa-store/internal/database"
	"github.com/touchpointee/avanyaa-store/internal/email"
	"github.com/touchpointee/avanyaa-store/internal/handlers"
	"github.com/touchpointee/avanyaa-store/internal/middleware"
	"github.com/touchpointee/avanyaa-store/internal/storage"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureCategoryIndexes(db); err != nil {
		log.Printf("category index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}
	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("user index warning: %v", err)
	}
	if err := database.EnsureSizeIndexes(db); err != nil {
		log.Printf("size index warning: %v", err)
	}
	if err := database.EnsureWishlistIndexes(db); err != nil {
		log.Printf("wishlist index warning: %v", err)
	}

	mailer := email.NewMailer(config.AppEnv)

	imageStore, err := storage.NewImageStore(config.AppEnv)
	if err != nil {
		log.Fatal(err)
	}

	jwtSecret := config.AppEnv.JWTSecret
	accessTTL := config.AppEnv.AccessTokenTTL

	r := gin.Default()

	api := r.Group("/api")
	{
		api.POST("/auth/register", handlers.Register(db, jwtSecret, accessTTL))
		api.POST("/auth/login", handlers.Login(db, jwtSecret, accessTTL))
		api.GET("/auth/me", middleware.AuthGuard(jwtSecret), handlers.GetMe(db))
		api.POST("/admin/login", handlers.AdminLogin(db, jwtSecret, accessTTL))

		api.GET("/homepage", handlers.GetHomepage(db))

		api.GET("/products", handlers.GetProducts(db))
		api.GET("/products/slug/:slug", handlers.GetProductBySlug(db))
		api.GET("/products/:id", handlers.GetProduct(db))

		api.GET("/categories", handlers.GetCategories(db, jwtSecret))
		api.GET("/banners", handlers.GetBanners(db, jwtSecret))
		api.GET("/homepage-sections", handlers.GetHomepageSections(db, jwtSecret))
		api.GET("/sizes", handlers.GetSizes(db))

		api.POST("/orders", handlers.CreateOrder(db, mailer, jwtSecret))
		api.GET("/orders", middleware.AuthGuard(jwtSecret), handlers.GetOrders(db))
		api.GET("/orders/:id", middleware.AuthGuard(jwtSecret), handlers.GetOrder(db))

		wishlist := api.Group("/wishlist")
		wishlist.Use(middleware.UserAuth(jwtSecret))
		{
			wishlist.GET("", handlers.GetWishlist(db))
			wishlist.POST("", handlers.AddToWishlist(db))
			wishlist.DELETE("", handlers.RemoveFromWishlist(db))
			wishlist.POST("/sync", handlers.SyncWishlist(db))
		}

		admin := api.Group("")
		admin.Use(middleware.AdminAuth(jwtSecret))
		{
			admin.POST("/products", handlers.CreateProduct(db))
			admin.PUT("/products/:id", handlers.UpdateProduct(db))
			admin.DELETE("/products/:id", handlers.DeleteProduct(db))

			admin.POST("/categories", handlers.CreateCategory(db))
			admin.PUT("/categories/:id", handlers.UpdateCategory(db))
			admin.DELETE("/categories/:id", handlers.DeleteCategory(db))

			admin.POST("/banners", handlers.CreateBanner(db))
			admin.PUT("/banners/:id", handlers.UpdateBanner(db))
			admin.DELETE("/banners/:id", handlers.DeleteBanner(db))

			admin.POST("/homepage-sections", handlers.CreateHomepageSection(db))
			admin.PUT("/homepage-sections/:id", handlers.UpdateHomepageSection(db))
			admin.DELETE("/homepage-sections/:id", handlers.DeleteHomepageSection(db))

			admin.POST("/sizes", handlers.CreateSize(db))
			admin.PUT("/sizes/:id", handlers.UpdateSize(db))
			admin.DELETE("/sizes/:id", handlers.DeleteSize(db))

			admin.PUT("/orders/:id", handlers.UpdateOrderStatus(db))

			admin.GET("/analytics", handlers.GetAnalytics(db))

			admin.POST("/upload", handlers.UploadImage(imageStore))
			admin.DELETE("/upload", handlers.DeleteImage(imageStore))
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
