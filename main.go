package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"fruit-order-service/config"
	"fruit-order-service/consumers"
	"fruit-order-service/controllers"
	"fruit-order-service/middlewares"
	"fruit-order-service/models"
	"fruit-order-service/payment"
	"fruit-order-service/rabbitmq"
	"fruit-order-service/stores"
)

// paymentEvents 支付结果落指标，broker 可用时再发事件
type paymentEvents struct {
	bridge *rabbitmq.EventBridge
}

func (e *paymentEvents) OrderPlaced(order models.Order) {
	middlewares.RecordPaymentOutcome("success")
	if e.bridge != nil {
		e.bridge.OrderPlaced(order)
	}
}

func (e *paymentEvents) PaymentFailed(sessionID string) {
	middlewares.RecordPaymentOutcome("failed")
	if e.bridge != nil {
		e.bridge.PaymentFailed(sessionID)
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Err(err).Msg("Could not load .env file")
	}

	// 加载配置
	cfg := config.LoadConfig()

	if cfg.Environment == "production" {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	} else {
		log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	}

	// 初始化持久化，Redis 不可用时退化为纯内存运行
	var blobs stores.BlobStore
	redisBlobs, err := stores.NewRedisBlobStore(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, running without persistence")
	} else {
		blobs = redisBlobs
		defer redisBlobs.Close()
	}

	authStore := stores.NewAuthStore(blobs)
	cartStore := stores.NewCartStore(blobs)
	orderStore := stores.NewOrderStore(blobs)

	// 初始化RabbitMQ，缺席不影响下单流程
	events := &paymentEvents{}
	rmq, err := rabbitmq.NewRabbitMQ(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("RabbitMQ unavailable, order events disabled")
	} else {
		defer rmq.Close()

		// 设置队列和交换机
		if err := rmq.SetupQueues(); err != nil {
			log.Fatal().Err(err).Msg("Failed to setup RabbitMQ queues")
		}

		// 启动消息消费者
		go consumers.StartOrderConsumer(rmq.Channel, cfg, orderStore)
		events.bridge = rabbitmq.NewEventBridge(rmq)
	}

	processor := payment.NewProcessor(
		cartStore,
		orderStore,
		time.Duration(cfg.PaymentDelayMs)*time.Millisecond,
		cfg.PaymentSuccessRate,
		events,
	)
	defer processor.Close()

	authController := controllers.NewAuthController(authStore)
	catalogController := controllers.NewCatalogController()
	cartController := controllers.NewCartController(cartStore, cfg)
	orderController := controllers.NewOrderController(orderStore)
	paymentController := controllers.NewPaymentController(processor)

	// 创建Gin路由
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// 应用Prometheus中间件
	r.Use(middlewares.PrometheusMiddleware())

	// 暴露Prometheus指标端点
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 健康检查端点
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 公开路由：登录和商品目录
	r.POST("/api/auth/login", authController.Login)
	r.POST("/api/auth/guest", authController.LoginAsGuest)
	r.GET("/api/products", catalogController.GetProducts)
	r.GET("/api/products/:id", catalogController.GetProduct)
	r.GET("/api/offers", catalogController.GetOffers)

	// 需要认证的路由组
	authGroup := r.Group("/api")
	authGroup.Use(middlewares.AuthMiddleware(authStore))
	{
		authGroup.POST("/auth/logout", authController.Logout)
		authGroup.GET("/auth/me", authController.Me)

		authGroup.GET("/cart", cartController.GetCart)
		authGroup.POST("/cart/items", cartController.AddItem)
		authGroup.PUT("/cart/items/:productId", cartController.UpdateItem)
		authGroup.DELETE("/cart/items/:productId", cartController.RemoveItem)
		authGroup.DELETE("/cart", cartController.ClearCart)
		authGroup.GET("/checkout/summary", cartController.GetCheckoutSummary)

		authGroup.GET("/orders", orderController.GetOrders)
		authGroup.GET("/orders/:id", orderController.GetOrderDetails)

		authGroup.POST("/payments", paymentController.StartPayment)
		authGroup.GET("/payments/:id", paymentController.GetPayment)
		authGroup.POST("/payments/:id/retry", paymentController.RetryPayment)
		authGroup.DELETE("/payments/:id", paymentController.CancelPayment)
	}

	// 死信队列处理端点
	r.POST("/dead-letter", orderController.HandleDeadLetter)

	// 启动服务器
	port := ":" + cfg.Port
	log.Info().Str("port", port).Msg("Fruit order service starting")
	if err := r.Run(port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
