package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rafaeldias/pos-backoffice/controllers"
	"github.com/rafaeldias/pos-backoffice/middlewares"
	"github.com/rafaeldias/pos-backoffice/repository"
	"github.com/rafaeldias/pos-backoffice/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.ErrorHandler())

	store := repository.NewGormStore(db)
	sessionCtrl := controllers.NewSessionController(services.NewSessionService(store))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(store))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	sessions := r.Group("/table-sessions")
	{
		sessions.POST("", sessionCtrl.OpenSession)
		sessions.GET("", sessionCtrl.ListSessions)
		sessions.PATCH("/:id", sessionCtrl.CloseSession)
	}

	orders := r.Group("/orders")
	{
		orders.POST("", middlewares.NewStrictRateLimiter(), orderCtrl.CreateOrder)
		orders.GET("/:table_session_id", orderCtrl.ListOrders)
		orders.GET("/:table_session_id/total", orderCtrl.SummarizeOrders)
	}

	return r
}
