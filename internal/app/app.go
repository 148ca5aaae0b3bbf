// Package app wires repositories, services and handlers into the HTTP router.
package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"servicehub/internal/config"
	"servicehub/internal/middleware"
	"servicehub/internal/modules/admin"
	"servicehub/internal/modules/apiv1"
	"servicehub/internal/modules/auth"
	"servicehub/internal/modules/catalog"
	"servicehub/internal/modules/request"
	"servicehub/internal/modules/review"
	jwtsvc "servicehub/internal/pkg/jwt"
	"servicehub/internal/repository"
)

type App struct {
	Router *gin.Engine
	cfg    *config.Config
}

func New(cfg *config.Config, db *gorm.DB) *App {
	users := repository.NewUserRepository(db)
	customers := repository.NewCustomerRepository(db)
	professionals := repository.NewProfessionalRepository(db)
	services := repository.NewServiceRepository(db)
	requests := repository.NewRequestRepository(db)
	reviews := repository.NewReviewRepository(db)

	jwt := jwtsvc.New(cfg.SecretKey, cfg.TokenTTL)
	gate := middleware.NewProfileGate(customers, professionals)

	authHandler := auth.NewHandler(auth.NewService(users, customers, professionals, jwt))
	catalogHandler := catalog.NewHandler(catalog.NewService(services, professionals, reviews))
	requestHandler := request.NewHandler(request.NewService(requests, professionals, reviews))
	reviewHandler := review.NewHandler(review.NewService(reviews, requests))
	adminHandler := admin.NewHandler(admin.NewService(services, professionals, customers, users, requests, reviews))
	apiHandler := apiv1.NewHandler(services, customers, professionals, requests)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	authHandler.RegisterPublicRoutes(api)
	catalogHandler.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwt))
	authHandler.RegisterProtectedRoutes(protected)

	customerGroup := api.Group("/customer")
	customerGroup.Use(middleware.JWTAuth(jwt), middleware.RequireRole("customer"), gate.RequireCustomer())
	catalogHandler.RegisterCustomerRoutes(customerGroup)
	requestHandler.RegisterCustomerRoutes(customerGroup)
	reviewHandler.RegisterCustomerRoutes(customerGroup)

	professionalGroup := api.Group("/professional")
	professionalGroup.Use(middleware.JWTAuth(jwt), middleware.RequireRole("professional"), gate.RequireProfessional())
	requestHandler.RegisterProfessionalRoutes(professionalGroup)

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.JWTAuth(jwt), middleware.AdminOnly())
	adminHandler.RegisterRoutes(adminGroup)
	requestHandler.RegisterAdminRoutes(adminGroup)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.APIKeyAuth(users))
	apiHandler.RegisterRoutes(v1)

	return &App{Router: r, cfg: cfg}
}

func (a *App) Run() error {
	return a.Router.Run(a.cfg.HTTPAddr)
}
