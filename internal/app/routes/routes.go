package routes

import (
	"time"

	_ "oksms-http-service/docs"
	"oksms-http-service/internal/app/controllers"
	"oksms-http-service/internal/app/middleware"
	"oksms-http-service/internal/domain/services/container"
	"oksms-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 为每个请求分配请求ID
	r.Use(middleware.RequestID())

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, nil)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerManagerRoutes(api, container)
	// 注册管理员专属路由
	registerAdminRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加IP限流中间件 - 每秒允许10个请求，最多突发20个请求
	api.Use(middleware.IPRateLimiter(10, 20))

	// 健康检查路由
	healthController := controllers.NewHealthCheckController()
	api.GET("/ping", healthController.Ping)
	api.GET("/health", controllers.HandleHealthFunc(container))

	// 认证路由
	api.POST("/auth/login", controllers.HandleJWTFunc(container, "login"))
}

// registerManagerRoutes 注册经理权限路由
// 日常运营操作admin和manager都可以执行
func registerManagerRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateManager())

	// 添加通用限流中间件 - 每秒30个请求，最多突发50个请求
	auth.Use(middleware.IPRateLimiter(30, 50))

	// 房间路由
	roomGroup := auth.Group("/rooms")
	roomGroup.GET("", controllers.HandleRoomFunc(container, "getRooms"))
	roomGroup.GET("/:id", controllers.HandleRoomFunc(container, "getRoom"))
	roomGroup.PUT("/:id", controllers.HandleRoomFunc(container, "updateRoom"))
	roomGroup.GET("/:id/occupancies", controllers.HandleRoomFunc(container, "getRoomOccupancies"))

	// 租户路由
	tenantGroup := auth.Group("/tenants")
	tenantGroup.GET("", controllers.HandleTenantFunc(container, "getTenants"))
	tenantGroup.POST("/check-in", controllers.HandleTenantFunc(container, "checkIn"))
	tenantGroup.GET("/:id", controllers.HandleTenantFunc(container, "getTenant"))
	tenantGroup.PUT("/:id", controllers.HandleTenantFunc(container, "updateTenant"))
	tenantGroup.GET("/:id/occupancies", controllers.HandleTenantFunc(container, "getTenantOccupancies"))
	tenantGroup.POST("/:id/switch-room", controllers.HandleTenantFunc(container, "switchRoom"))
	tenantGroup.POST("/:id/check-out", controllers.HandleTenantFunc(container, "checkOut"))
	tenantGroup.GET("/:id/ledger", controllers.HandleTenantFunc(container, "getTenantLedger"))

	// 入住记录路由
	occupancyGroup := auth.Group("/occupancies")
	occupancyGroup.GET("", controllers.HandleOccupancyFunc(container, "getOccupancies"))
	occupancyGroup.GET("/:id", controllers.HandleOccupancyFunc(container, "getOccupancy"))
	occupancyGroup.GET("/:id/charges", controllers.HandleOccupancyFunc(container, "getOccupancyCharges"))

	// 账单路由
	billingGroup := auth.Group("/billing")
	billingGroup.Use(middleware.CombinedRateLimiter(5, 10)) // 账单生成开销较大，按IP+路径单独限流
	billingGroup.POST("/generate", controllers.HandleBillingFunc(container, "generateCharges"))
	billingGroup.GET("/charges", controllers.HandleBillingFunc(container, "getCharges"))
	billingGroup.GET("/charges/:id", controllers.HandleBillingFunc(container, "getCharge"))

	// 付款路由
	paymentGroup := auth.Group("/payments")
	paymentGroup.POST("", controllers.HandlePaymentFunc(container, "recordPayment"))
	paymentGroup.GET("", controllers.HandlePaymentFunc(container, "getPayments"))
	paymentGroup.GET("/:id", controllers.HandlePaymentFunc(container, "getPayment"))

	// 报表路由
	reportGroup := auth.Group("/reports")
	reportGroup.GET("/arrears", middleware.Cache(30*time.Second), controllers.HandleReportFunc(container, "getArrearsReport"))
}

// registerAdminRoutes 注册管理员专属路由
// 结构性变更（房源增删、历史记录删除、用户管理）只有admin可以执行
func registerAdminRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	admin := api.Group("/")
	admin.Use(middleware.AuthenticateSystemAdmin())
	admin.Use(middleware.IPRateLimiter(30, 50))

	// 房源管理
	admin.POST("/rooms", controllers.HandleRoomFunc(container, "createRoom"))
	admin.DELETE("/rooms/:id", controllers.HandleRoomFunc(container, "deleteRoom"))

	// 历史记录删除
	admin.DELETE("/tenants/:id", controllers.HandleTenantFunc(container, "deleteTenant"))
	admin.DELETE("/occupancies/:id", controllers.HandleOccupancyFunc(container, "deleteOccupancy"))

	// 用户管理
	userGroup := admin.Group("/users")
	userGroup.GET("", controllers.HandleUserFunc(container, "getUsers"))
	userGroup.GET("/:id", controllers.HandleUserFunc(container, "getUser"))
	userGroup.POST("", controllers.HandleUserFunc(container, "createUser"))
	userGroup.PUT("/:id", controllers.HandleUserFunc(container, "updateUser"))
	userGroup.DELETE("/:id", controllers.HandleUserFunc(container, "deleteUser"))
}
