// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"showtime/internal/announcements"
	"showtime/internal/auth"
	"showtime/internal/bookings"
	"showtime/internal/feed"
	"showtime/internal/food"
	"showtime/internal/kitchen"
	"showtime/internal/promos"
	"showtime/internal/regions"
	"showtime/internal/roles"
	"showtime/internal/seats"
	"showtime/internal/shared/config"
	"showtime/internal/shared/database"
	"showtime/internal/shared/middleware"
	"showtime/internal/shows"
	"showtime/internal/users"
	"showtime/internal/venues"
	"showtime/pkg/cache"
	"showtime/pkg/logger"
	"showtime/pkg/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer feed.Producer
	log      *logger.Logger

	// Cross-module services, populated during setup in dependency
	// order.
	cacheService   cache.Service
	venueService   venues.Service
	showService    shows.Service
	seatService    seats.Service
	foodService    food.Service
	promoService   promos.Service
	bookingRepo    bookings.Repository
	kitchenService kitchen.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, producer feed.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
		log:      logger.GetDefault(),
	}
}

// KitchenService exposes the kitchen board service so the server can
// attach the poller and the change feed consumer to it.
func (r *Router) KitchenService() kitchen.Service {
	return r.kitchenService
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	// Uploaded avatars are served straight off disk.
	engine.Static(r.config.Upload.PublicBase, r.config.Upload.Path)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if r.db.Redis != nil {
		r.cacheService = cache.NewService(r.db.GetRedis())
	}

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupUserRoutes(api)
		r.setupRoleRoutes(api)
		r.setupRegionRoutes(api)
		r.setupAnnouncementRoutes(api)

		// Venues before shows, shows before seats: each feeds the
		// next through a narrow service interface.
		r.setupVenueRoutes(api)
		r.setupShowRoutes(api)

		// Booking repo is created ahead of the seat routes so the
		// grid can overlay sold seats.
		r.bookingRepo = bookings.NewRepository(r.db.GetPostgreSQL())
		r.setupSeatRoutes(api)

		r.setupFoodRoutes(api)
		r.setupPromoRoutes(api)
		r.setupBookingRoutes(api)
		r.setupKitchenRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "showtime-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "showtime-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)

	auth.NewRouter(authController).SetupRoutes(rg)
}

func (r *Router) setupUserRoutes(rg *gin.RouterGroup) {
	store, err := storage.NewDiskStore(r.config.Upload.Path, r.config.Upload.PublicBase, r.config.Upload.MaxSize)
	if err != nil {
		r.log.Error("failed to initialize avatar storage; avatar upload disabled", "error", err)
		return
	}

	avatarService := users.NewAvatarService(r.db.GetPostgreSQL(), store)
	avatarController := users.NewAvatarController(avatarService)

	userRoutes := rg.Group("/users")
	userRoutes.Use(middleware.JWTAuth())
	{
		userRoutes.POST("/avatar", avatarController.UploadAvatar)
	}
}

func (r *Router) setupRoleRoutes(rg *gin.RouterGroup) {
	roleRepo := roles.NewRepository(r.db.GetPostgreSQL())
	roleService := roles.NewService(roleRepo)
	roleController := roles.NewController(roleService)

	roles.SetupRoleRoutes(rg, roleController)
}

func (r *Router) setupRegionRoutes(rg *gin.RouterGroup) {
	regionRepo := regions.NewRepository(r.db.GetPostgreSQL())
	regionService := regions.NewService(regionRepo, r.config.DefaultCity)
	regionController := regions.NewController(regionService)

	regions.SetupRegionRoutes(rg, regionController)
}

func (r *Router) setupAnnouncementRoutes(rg *gin.RouterGroup) {
	annRepo := announcements.NewRepository(r.db.GetPostgreSQL())
	annService := announcements.NewService(annRepo)
	annController := announcements.NewController(annService)

	announcements.SetupAnnouncementRoutes(rg, annController)
}

func (r *Router) setupVenueRoutes(rg *gin.RouterGroup) {
	venueRepo := venues.NewRepository(r.db.GetPostgreSQL())
	seatRepo := seats.NewRepository(r.db.GetPostgreSQL())
	r.venueService = venues.NewService(venueRepo, seatRepo)
	venueController := venues.NewController(r.venueService)

	venues.SetupVenueRoutes(rg, venueController)
}

func (r *Router) setupShowRoutes(rg *gin.RouterGroup) {
	showRepo := shows.NewRepository(r.db.GetPostgreSQL())
	r.showService = shows.NewService(showRepo, r.venueService)
	if r.cacheService != nil {
		r.showService.SetCacheService(r.cacheService)
	}
	showController := shows.NewController(r.showService)

	shows.SetupShowRoutes(rg, showController)
}

func (r *Router) setupSeatRoutes(rg *gin.RouterGroup) {
	seatRepo := seats.NewRepository(r.db.GetPostgreSQL())
	selections := seats.NewSelectionStore(r.cacheService, r.config.Redis.SelectionTTL)
	r.seatService = seats.NewService(seatRepo, r.showService, selections, r.config.Booking.MaxSelectedSeats)
	r.seatService.SetBookedSeatSource(r.bookingRepo)
	seatController := seats.NewController(r.seatService)

	seats.SetupSeatRoutes(rg, seatController)
}

func (r *Router) setupFoodRoutes(rg *gin.RouterGroup) {
	foodRepo := food.NewRepository(r.db.GetPostgreSQL())
	r.foodService = food.NewService(foodRepo, r.producer, r.log)
	if r.cacheService != nil {
		r.foodService.SetCacheService(r.cacheService)
	}
	foodController := food.NewController(r.foodService)

	food.SetupFoodRoutes(rg, foodController)
}

func (r *Router) setupPromoRoutes(rg *gin.RouterGroup) {
	promoRepo := promos.NewRepository(r.db.GetPostgreSQL())
	r.promoService = promos.NewService(promoRepo)
	promoController := promos.NewController(r.promoService)

	promos.SetupPromoRoutes(rg, promoController)
}

func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	rates := bookings.FeeRates{
		Movie: r.config.Booking.MovieFeeRate,
		Event: r.config.Booking.EventFeeRate,
	}
	bookingService := bookings.NewService(r.bookingRepo, r.seatService, r.showService, r.foodService, r.promoService, rates, r.log)
	bookingController := bookings.NewController(bookingService)

	bookings.SetupBookingRoutes(rg, bookingController)
}

func (r *Router) setupKitchenRoutes(rg *gin.RouterGroup) {
	r.kitchenService = kitchen.NewService(r.foodService, r.bookingRepo, r.log)
	kitchenController := kitchen.NewController(r.kitchenService)

	kitchen.SetupKitchenRoutes(rg, kitchenController)
}
