package routes

import (
	"log/slog"

	"github.com/RodriLang/food-ordering-API-sub001/configs"
	"github.com/RodriLang/food-ordering-API-sub001/controllers"
	"github.com/RodriLang/food-ordering-API-sub001/middlewares"
	"github.com/RodriLang/food-ordering-API-sub001/repository"
	"github.com/RodriLang/food-ordering-API-sub001/services"
	"github.com/RodriLang/food-ordering-API-sub001/sse"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *slog.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	productRepo := repository.NewProductRepository(db)
	tableRepo := repository.NewTableRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	offerRepo := repository.NewOfferRepository(db)

	// Broadcaster + services
	broadcaster := sse.NewBroadcaster(log, cfg.SubscriberExpiry)
	stockSvc := services.NewStockService(productRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(productRepo)
	sessionSvc := services.NewSessionService(db, sessionRepo, tableRepo, broadcaster)
	orderSvc := services.NewOrderService(db, orderRepo, sessionRepo, paymentRepo, productRepo, stockSvc, broadcaster)
	paymentSvc := services.NewPaymentService(db, paymentRepo, orderRepo)
	offerSvc := services.NewOfferService(offerRepo, sessionRepo, broadcaster)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	tableCtrl := controllers.NewTableController(tableRepo)
	sessionCtrl := controllers.NewSessionController(sessionSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	offerCtrl := controllers.NewOfferController(offerSvc)
	events := sse.NewHandler(broadcaster, sessionRepo)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Everything below is tenant-scoped: X-Venue header resolves the venue.
	v := r.Group("/", middlewares.VenueMiddleware(venueRepo))
	{
		v.GET("/menu", catalogCtrl.Menu)

		// Guests join by scanning the table's QR code; a login is honored when
		// present but never required.
		v.POST("/tables/:code/scan",
			middlewares.OptionalAuthMiddleware(cfg.JWTSecret), sessionCtrl.Scan)

		v.GET("/sessions/:id/events", events.Stream)
		v.GET("/sessions/:id/events/ws", events.StreamWS)
		v.POST("/sessions/:id/leave", sessionCtrl.Leave)
		v.GET("/sessions/:id/messages", sessionCtrl.Messages)
		v.POST("/sessions/:id/messages", sessionCtrl.SendMessage)
		v.GET("/sessions/:id/orders", orderCtrl.ListForSession)

		v.POST("/orders", orderCtrl.Create)
		v.GET("/orders/:id", orderCtrl.Detail)
		v.POST("/orders/:id/items", orderCtrl.AddItem)
		v.PATCH("/orders/:id/items/:itemId", orderCtrl.UpdateItem)
		v.DELETE("/orders/:id/items/:itemId", orderCtrl.RemoveItem)

		v.POST("/payments/settle", paymentCtrl.Settle)
		v.GET("/payments/:id", paymentCtrl.Detail)

		// Partner surface (staff and up)
		p := v.Group("/partner",
			middlewares.AuthMiddleware(cfg.JWTSecret, "staff", "owner", "admin"),
			middlewares.VenueOwnerMiddleware(venueRepo),
		)
		{
			p.GET("/tables", tableCtrl.List)
			p.POST("/tables", tableCtrl.Create)

			p.GET("/categories", catalogCtrl.Categories)
			p.POST("/categories", catalogCtrl.CreateCategory)
			p.POST("/products", catalogCtrl.CreateProduct)
			p.PATCH("/products/:id", catalogCtrl.UpdateProduct)

			p.GET("/offers", offerCtrl.List)
			p.POST("/offers", offerCtrl.Create)

			p.POST("/sessions/:id/end", sessionCtrl.End)

			p.PATCH("/orders/:id/approve", orderCtrl.Approve)
			p.PATCH("/orders/:id/start", orderCtrl.Start)
			p.PATCH("/orders/:id/complete", orderCtrl.Complete)
			p.PATCH("/orders/:id/serve", orderCtrl.Serve)
			p.PATCH("/orders/:id/cancel", orderCtrl.Cancel)
		}
	}
}
