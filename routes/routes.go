package routes

import (
	"cashback-backend/config"
	"cashback-backend/controllers"
	"cashback-backend/services"
	"cashback-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Dependencies are the services the HTTP layer is built on.
type Dependencies struct {
	Config        *config.Config
	Log           logrus.FieldLogger
	Imports       *services.ImportService
	Transactions  *services.TransactionService
	Customers     *services.CustomerService
	Notifications *services.NotificationService
}

func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	origins := make(map[string]bool, len(deps.Config.CORSOrigins))
	for _, o := range deps.Config.CORSOrigins {
		origins[o] = true
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			return origins[origin]
		},
	}))

	r.Use(config.PerformanceLogger(deps.Log))

	r.GET("/health", controllers.HealthCheck)

	secret := deps.Config.Auth.JWTSecret
	authController := &controllers.AuthController{
		Auth:         deps.Config.Auth,
		SecureCookie: deps.Config.GinMode == gin.ReleaseMode,
		Log:          deps.Log,
	}
	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)

		auth.Use(utils.AuthMiddleware(secret))
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(secret))
	{
		dashboardController := &controllers.DashboardController{Customers: deps.Customers}
		api.GET("/stats", dashboardController.GetStats)

		customerController := &controllers.CustomerController{Customers: deps.Customers}
		customers := api.Group("/customers")
		{
			customers.GET("", customerController.GetCustomers)
			customers.GET("/select", customerController.GetCustomerOptions)
			customers.GET("/:id", customerController.GetCustomer)
			customers.GET("/:id/transactions", customerController.GetCustomerTransactions)
		}

		transactionController := &controllers.TransactionController{Transactions: deps.Transactions}
		api.GET("/transactions", transactionController.GetTransactions)
		api.POST("/transactions", transactionController.CreateTransaction)

		importController := &controllers.ImportController{
			Imports:        deps.Imports,
			MaxUploadBytes: deps.Config.Import.MaxUploadBytes,
		}
		api.POST("/import", importController.ImportJSON)
		api.POST("/import/excel", importController.ImportExcel)
		api.GET("/template", importController.DownloadTemplate)

		if deps.Notifications != nil {
			reminderController := &controllers.ReminderController{Notifications: deps.Notifications}
			api.POST("/notifications/send", reminderController.SendCashbackReminders)
		}
	}

	return r
}
