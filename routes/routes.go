package routes

import (
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/configs"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/controllers"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/middlewares"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/payments"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/repository"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/services"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, gateway payments.Gateway, hub *ws.ChatHub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	dishRepo := repository.NewDishRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	planRepo := repository.NewMealPlanRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	chatRepo := repository.NewChatRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	profileSvc := services.NewProfileService(userRepo)
	dishSvc := services.NewDishService(dishRepo)
	cartSvc := services.NewCartService(db, cartRepo, dishRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, gateway, cfg.PublicBaseURL)
	planSvc := services.NewMealPlanService(planRepo, dishRepo)
	subSvc := services.NewSubscriptionService(subRepo, planRepo, userRepo, gateway, cfg.PublicBaseURL)
	chatSvc := services.NewChatService(chatRepo, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	profileCtrl := controllers.NewProfileController(profileSvc)
	dishCtrl := controllers.NewDishController(dishSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	chefOrderCtrl := controllers.NewChefOrderController(orderSvc)
	planCtrl := controllers.NewMealPlanController(planSvc)
	subCtrl := controllers.NewSubscriptionController(subSvc)
	paymentCtrl := controllers.NewPaymentController(gateway, orderSvc, subSvc)
	uploadCtrl := controllers.NewUploadController(cfg.UploadDir, cfg.PublicBaseURL)
	cityCtrl := controllers.NewCityController(db)
	chatCtrl := controllers.NewChatController(chatSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public catalog
	r.GET("/dishes", dishCtrl.List)
	r.GET("/dishes/:id", dishCtrl.Get)
	r.GET("/meal-plans", planCtrl.List)
	r.GET("/meal-plans/:id", planCtrl.Get)
	r.GET("/cities", cityCtrl.List)

	// Payments: gateway webhook plus the browser return pages
	r.POST("/payments/webhook", paymentCtrl.Webhook)
	r.GET("/payments/success", paymentCtrl.Success)
	r.GET("/payments/cancel", paymentCtrl.Cancel)

	// Signed-in users
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/:id", cartCtrl.UpdateQuantity)
		u.DELETE("/cart/items/:id", cartCtrl.RemoveItem)

		u.POST("/orders", orderCtrl.Checkout)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.PATCH("/orders/:id/cancel", orderCtrl.Cancel)
		u.DELETE("/orders/:id", orderCtrl.SoftDelete)
		u.DELETE("/orders/:id/permanent", orderCtrl.HardDelete)

		u.POST("/subscriptions", subCtrl.Subscribe)
		u.GET("/subscriptions", subCtrl.ListForMe)
		u.PATCH("/subscriptions/:id/cancel", subCtrl.Cancel)

		u.GET("/profile/addresses", profileCtrl.ListAddresses)
		u.POST("/profile/addresses", profileCtrl.AddAddress)
		u.PATCH("/profile/addresses/:id", profileCtrl.UpdateAddress)
		u.DELETE("/profile/addresses/:id", profileCtrl.DeleteAddress)

		u.POST("/dishes/:id/favorite", dishCtrl.ToggleFavorite)
		u.GET("/profile/favorites", dishCtrl.ListFavorites)

		u.GET("/orders/:id/chat", chatCtrl.RoomForOrder)
		u.GET("/chat/rooms/:id/messages", chatCtrl.ListMessages)

		u.POST("/uploads", uploadCtrl.Upload)
	}

	// Chef console
	chef := r.Group("/chef", middlewares.AuthMiddleware(cfg.JWTSecret, "chef"))
	{
		chef.GET("/dishes", dishCtrl.ListMine)
		chef.POST("/dishes", dishCtrl.Create)
		chef.PATCH("/dishes/:id", dishCtrl.Update)
		chef.DELETE("/dishes/:id", dishCtrl.Delete)

		chef.GET("/orders", chefOrderCtrl.List)
		chef.PATCH("/orders/:id/status", chefOrderCtrl.UpdateStatus)

		chef.GET("/meal-plans", planCtrl.ListMine)
		chef.POST("/meal-plans", planCtrl.Create)
		chef.PUT("/meal-plans/:id", planCtrl.Update)
		chef.DELETE("/meal-plans/:id", planCtrl.Delete)

		chef.GET("/subscriptions", subCtrl.ListForChef)
		chef.PATCH("/subscriptions/:id/status", subCtrl.UpdateStatus)
	}

	// WebSocket chat; token comes from the query string for browser clients
	r.GET("/ws/chat/:roomId", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
