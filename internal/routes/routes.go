package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/barberbook/barberbook-api/internal/audit"
	"github.com/barberbook/barberbook-api/internal/config"
	"github.com/barberbook/barberbook-api/internal/handlers"
	"github.com/barberbook/barberbook-api/internal/infra/repository"
	"github.com/barberbook/barberbook-api/internal/middleware"
	"github.com/barberbook/barberbook-api/internal/storage"
	usecase "github.com/barberbook/barberbook-api/internal/usecase/booking"
)

// RegisterRoutes wires repositories, use cases and handlers onto the engine.
// rdb and store may be nil; the rate limiter and image endpoints degrade
// accordingly.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	rdb *redis.Client,
	store storage.ObjectStore,
) {
	repo := repository.NewBookingGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	getAvailability := usecase.NewGetAvailability(repo)
	createReservation := usecase.NewCreateReservation(repo, dispatcher)
	transitionReservation := usecase.NewTransitionReservation(repo, dispatcher)
	listByDate := usecase.NewListReservationsByDate(repo)
	listByMonth := usecase.NewListReservationsByMonth(repo)

	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	profileHandler := handlers.NewProfileHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	staffHandler := handlers.NewStaffHandler(db)
	reservationHandler := handlers.NewReservationHandler(listByDate, listByMonth, transitionReservation)
	publicHandler := handlers.NewPublicHandler(db, store, getAvailability, createReservation)
	imageHandler := handlers.NewShopImageHandler(db, store)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	api := r.Group("/api")

	public := api.Group("/public")
	public.Use(middleware.PublicRateLimit(
		rdb,
		cfg.PublicRateLimit,
		time.Duration(cfg.PublicRateWindow)*time.Second,
	))
	{
		public.GET("/shops", publicHandler.ListShops)
		public.GET("/:slug", publicHandler.GetShop)
		public.GET("/:slug/availability", publicHandler.GetAvailability)
		public.POST("/:slug/reservations", publicHandler.CreateReservation)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	me := api.Group("/me")
	me.Use(middleware.AuthMiddleware(cfg))
	{
		me.GET("", meHandler.GetMe)

		me.GET("/profile", profileHandler.Get)
		me.PATCH("/profile", profileHandler.Update)

		me.GET("/services", serviceHandler.List)
		me.POST("/services", serviceHandler.Create)
		me.PATCH("/services/:id", serviceHandler.Update)
		me.DELETE("/services/:id", serviceHandler.Delete)

		me.GET("/staff", staffHandler.List)
		me.POST("/staff", staffHandler.Create)
		me.PATCH("/staff/:id", staffHandler.Update)
		me.DELETE("/staff/:id", staffHandler.Delete)
		me.GET("/staff/:id/availability", staffHandler.GetAvailability)
		me.PUT("/staff/:id/availability", staffHandler.UpdateAvailability)
		me.GET("/staff/:id/blocked-slots", staffHandler.ListBlockedSlots)
		me.POST("/staff/:id/blocked-slots", staffHandler.CreateBlockedSlot)
		me.DELETE("/blocked-slots/:id", staffHandler.DeleteBlockedSlot)

		me.GET("/reservations", reservationHandler.List)
		me.PATCH("/reservations/:id/status", reservationHandler.UpdateStatus)

		me.GET("/images", imageHandler.List)
		me.POST("/images", imageHandler.Upload)
		me.DELETE("/images/:id", imageHandler.Delete)

		me.GET("/audit-logs", auditLogsHandler.List)
	}
}
