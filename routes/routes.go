package routes

import (
	"github.com/abu0717/canteen/configs"
	"github.com/abu0717/canteen/controllers"
	"github.com/abu0717/canteen/entity"
	"github.com/abu0717/canteen/middlewares"
	"github.com/abu0717/canteen/repository"
	"github.com/abu0717/canteen/services"
	"github.com/abu0717/canteen/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers onto the
// engine. The registry comes in from main so the whole process shares
// one connection index.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, registry *ws.Registry) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	cafeRepo := repository.NewCafeRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	adRepo := repository.NewAdvertisementRepository(db)

	// Services
	access := services.NewCafeAccess(cafeRepo, workerRepo)
	dispatcher := ws.NewDispatcher(registry)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cafeSvc := services.NewCafeService(cafeRepo, access)
	menuSvc := services.NewMenuService(menuRepo, access)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, cafeRepo, userRepo, access, dispatcher)
	workerSvc := services.NewWorkerService(db, workerRepo, cafeRepo, userRepo)
	feedbackSvc := services.NewFeedbackService(feedbackRepo, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	cafeCtrl := controllers.NewCafeController(cafeSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	workerCtrl := controllers.NewWorkerController(workerSvc)
	feedbackCtrl := controllers.NewFeedbackController(feedbackSvc)
	adminCtrl := controllers.NewAdminController(userRepo, cafeRepo, adRepo)
	wsHandler := ws.NewHandler(registry, access, userRepo)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}
	staff := []string{entity.RoleCafeOwner, entity.RoleCafeWorker, entity.RoleAdmin}
	ownerAdmin := []string{entity.RoleCafeOwner, entity.RoleAdmin}

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth(), authCtrl.Me)
	}

	// Public
	r.GET("/cafes", cafeCtrl.List)
	r.GET("/cafes/:id", cafeCtrl.Detail)
	r.GET("/cafes/:id/menu", menuCtrl.ListByCafe)
	r.GET("/cafes/:id/categories", menuCtrl.ListCategories)
	r.GET("/feedback/cafe/:cafeId", feedbackCtrl.ListByCafe)
	r.GET("/advertisements", adminCtrl.ListActiveAds)

	// Cafes & menu (owner/admin)
	manage := r.Group("/", auth(ownerAdmin...))
	{
		manage.POST("/cafes", cafeCtrl.Create)
		manage.PATCH("/cafes/:id", cafeCtrl.Update)
		manage.DELETE("/cafes/:id", cafeCtrl.Delete)
		manage.POST("/cafes/:id/categories", menuCtrl.CreateCategory)
		manage.POST("/cafes/:id/menu", menuCtrl.Create)
		manage.PATCH("/menu/:id", menuCtrl.Update)
		manage.DELETE("/menu/:id", menuCtrl.Delete)
		manage.GET("/cafes/:id/inventory", cafeCtrl.ListInventory)
		manage.POST("/cafes/:id/inventory", cafeCtrl.CreateInventory)
		manage.PATCH("/inventory/:id", cafeCtrl.UpdateInventory)
		manage.DELETE("/inventory/:id", cafeCtrl.DeleteInventory)
	}

	// Orders
	orders := r.Group("/orders")
	{
		orders.POST("", auth(entity.RoleStudent), orderCtrl.Create)
		orders.GET("", auth(), orderCtrl.ListForMe)
		orders.GET("/history", auth(), orderCtrl.History)
		orders.GET("/:id", auth(), orderCtrl.Detail)
		orders.GET("/cafe/:cafeId", auth(staff...), orderCtrl.ListForCafe)
		orders.PUT("/:id", auth(staff...), orderCtrl.UpdateStatus)
		orders.DELETE("/:id", auth(), orderCtrl.Cancel)
	}

	// Workers
	r.POST("/workers", auth(ownerAdmin...), workerCtrl.Assign)
	r.GET("/workers/cafe/:cafeId", auth(ownerAdmin...), workerCtrl.ListByCafe)
	r.DELETE("/workers/:id", auth(ownerAdmin...), workerCtrl.Remove)
	r.POST("/worker-requests", auth(entity.RoleCafeWorker, entity.RoleStudent), workerCtrl.Apply)
	r.GET("/worker-requests/cafe/:cafeId", auth(ownerAdmin...), workerCtrl.ListRequests)
	r.PATCH("/worker-requests/:id/approve", auth(ownerAdmin...), workerCtrl.Approve)
	r.PATCH("/worker-requests/:id/reject", auth(ownerAdmin...), workerCtrl.Reject)

	// Feedback
	r.POST("/feedback", auth(entity.RoleStudent), feedbackCtrl.Create)
	r.DELETE("/feedback/:id", auth(), feedbackCtrl.Delete)

	// Admin
	admin := r.Group("/admin", auth(entity.RoleAdmin))
	{
		admin.GET("/users", adminCtrl.ListUsers)
		admin.GET("/cafes", adminCtrl.ListCafes)
		admin.POST("/advertisements", adminCtrl.CreateAd)
		admin.DELETE("/advertisements/:id", adminCtrl.DeleteAd)
	}

	// Websockets (token via query or header)
	wsGroup := r.Group("/ws", middlewares.WSAuthMiddleware(cfg.JWTSecret))
	{
		wsGroup.GET("/cafe/:cafeId", wsHandler.HandleCafeSocket)
		wsGroup.GET("/orders", wsHandler.HandleOrdersSocket)
	}
}
