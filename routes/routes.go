package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tableside/configs"
	"tableside/controllers"
	"tableside/middlewares"
	"tableside/repository"
	"tableside/services"
	"tableside/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	tableRepo := repository.NewTableRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	optRepo := repository.NewOptionRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo)
	tableSvc := services.NewTableService(tableRepo, restRepo)
	catSvc := services.NewCategoryService(catRepo)
	menuSvc := services.NewMenuService(menuRepo, catRepo)
	optSvc := services.NewOptionService(optRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, tableRepo, menuRepo, restRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	tableCtrl := controllers.NewTableController(tableSvc, cfg.PublicBaseURL)
	catCtrl := controllers.NewCategoryController(catSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	optCtrl := controllers.NewOptionController(optSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	frontCtrl := controllers.NewStorefrontController(tableSvc, menuSvc, orderSvc, restSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Storefront (diners; logged-in users get attributed via OptionalAuth)
	t := r.Group("/t/:token", middlewares.OptionalAuth(cfg.JWTSecret))
	{
		t.GET("", frontCtrl.Resolve)
		t.GET("/menu", frontCtrl.Menu)
		t.POST("/orders", frontCtrl.CreateOrder)
		t.GET("/orders/:id", frontCtrl.OrderStatus)
	}

	// Collaborative cart relay
	cartHub := ws.NewCartHub(tableSvc)
	go cartHub.Run()
	r.GET("/ws/cart/:token", cartHub.Join)

	// Admin console (staff/admin)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "staff", "admin"))
	{
		admin.GET("/restaurants", restCtrl.List)
		admin.POST("/restaurants", restCtrl.Create)
		admin.GET("/restaurants/:id", restCtrl.Detail)
		admin.PATCH("/restaurants/:id", restCtrl.Update)
		admin.DELETE("/restaurants/:id", restCtrl.Delete)

		admin.GET("/restaurants/:id/tables", tableCtrl.ListForRestaurant)
		admin.POST("/restaurants/:id/tables", tableCtrl.Create)
		admin.PATCH("/tables/:id", tableCtrl.Update)
		admin.DELETE("/tables/:id", tableCtrl.Delete)
		admin.GET("/tables/:id/qr", tableCtrl.QR)
		admin.POST("/tables/:id/qr", tableCtrl.RegenerateQR)

		admin.GET("/restaurants/:id/categories", catCtrl.ListForRestaurant)
		admin.POST("/restaurants/:id/categories", catCtrl.Create)
		admin.PUT("/restaurants/:id/categories/reorder", catCtrl.Reorder)
		admin.PATCH("/categories/:id", catCtrl.Update)
		admin.DELETE("/categories/:id", catCtrl.Delete)

		admin.GET("/restaurants/:id/menu-items", menuCtrl.ListForRestaurant)
		admin.POST("/restaurants/:id/menu-items", menuCtrl.Create)
		admin.GET("/menu-items/:id", menuCtrl.Detail)
		admin.PATCH("/menu-items/:id", menuCtrl.Update)
		admin.DELETE("/menu-items/:id", menuCtrl.Delete)
		admin.PUT("/categories/:id/menu-items/reorder", menuCtrl.Reorder)

		admin.GET("/menu-items/:id/options", optCtrl.ListForMenuItem)
		admin.POST("/menu-items/:id/options", optCtrl.CreateGroup)
		admin.PATCH("/options/:id", optCtrl.UpdateGroup)
		admin.DELETE("/options/:id", optCtrl.DeleteGroup)
		admin.POST("/options/:id/choices", optCtrl.CreateChoice)
		admin.PATCH("/choices/:id", optCtrl.UpdateChoice)
		admin.DELETE("/choices/:id", optCtrl.DeleteChoice)

		admin.GET("/restaurants/:id/orders", orderCtrl.ListForRestaurant)
		admin.GET("/restaurants/:id/orders/:oid", orderCtrl.Detail)
		admin.PATCH("/order-items/:id/status", orderCtrl.AdvanceItemStatus)
	}
}
