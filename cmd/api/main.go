package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"camperrent/internal/config"
	"camperrent/internal/database"
	"camperrent/internal/middleware"
	"camperrent/internal/modules/auth"
	"camperrent/internal/modules/booking"
	"camperrent/internal/modules/fleet"
	jwtsvc "camperrent/internal/pkg/jwt"
	"camperrent/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.AutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			log.Fatal(err)
		}
	}

	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	fleetService := fleet.NewService(vehicleRepo, bookingRepo)
	fleetHandler := fleet.NewHandler(fleetService)

	feedHub := booking.NewHub()
	defer feedHub.Close()

	bookingService := booking.NewService(bookingRepo, vehicleRepo, feedHub)
	bookingHandler := booking.NewHandler(bookingService, feedHub)

	r := gin.New()
	r.Use(
		gin.Logger(),
		middleware.RequestID(),
		middleware.ErrorLogger(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.Metrics(),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		fleetHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			fleetHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
