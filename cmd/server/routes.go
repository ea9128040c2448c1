package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/OpenHoursHQ/openhours/internal/config"
	"github.com/OpenHoursHQ/openhours/internal/db"
	"github.com/OpenHoursHQ/openhours/internal/http/api"
	authapi "github.com/OpenHoursHQ/openhours/internal/http/api/auth/endpoints"
	businessapi "github.com/OpenHoursHQ/openhours/internal/http/api/business/endpoints"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, cfg *config.Config, store db.Store) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
	}))

	// public surface: auth bootstrap, timezone catalog, business profiles
	api.MountGroup(r, api.GroupConfig{Prefix: "/api"},
		authapi.AuthPublicModule(cfg.JWTSecret, store),
		businessapi.TimezonesModule(),
		businessapi.BusinessPublicModule(store),
	)

	// owner surface: everything behind JWT
	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api",
		Auth:      true,
		SecretKey: cfg.JWTSecret,
		Store:     store,
	},
		authapi.AuthSessionModule(cfg.JWTSecret, store),
		businessapi.BusinessAdminModule(store),
		businessapi.HoursAdminModule(store),
	)
}
