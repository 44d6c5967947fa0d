package routers

import (
	"log"
	"os"
	"time"

	"productshelf/catalog"
	"productshelf/controllers"
	"productshelf/middlewares"
	"productshelf/web"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func Route() *gin.Engine {
	router := gin.Default()
	router.Use(CORS())
	router.Use(middlewares.RequestID())
	api := controllers.NewAPI()

	redisHost := os.Getenv("REDIS_HOST")
	redisPort := os.Getenv("REDIS_PORT")

	api.Redis = redis.NewClient(&redis.Options{
		Addr: redisHost + ":" + redisPort,
		DB:   0,
	})

	api.Catalog = catalog.NewClient(catalog.NewBackend(os.Getenv("PRODUCTS_API_URL")))
	api.CacheTTL = cacheTTL()

	router.GET("/", web.Index)
	router.GET("/api/health", api.Health)

	product := router.Group("/api/products")
	{
		product.GET("", api.GetProducts)
		product.POST("", api.CreateProduct)
		product.PUT("/:id", api.UpdateProduct)
		product.DELETE("/:id", api.DeleteProduct)
	}

	return router
}

// CORS Cross Origin Resource Sharing
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, "+
			"Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func cacheTTL() time.Duration {
	ttl := os.Getenv("CACHE_TTL")
	if ttl == "" {
		return time.Minute
	}

	d, err := time.ParseDuration(ttl)
	if err != nil {
		log.Printf("invalid CACHE_TTL %q, using 1m: %v", ttl, err)
		return time.Minute
	}

	return d
}
