package routers

import (
	"mado-service/internal/app/config"
	"mado-service/internal/app/delivery/http/controllers"
	"mado-service/internal/app/delivery/http/middlewares"
	"mado-service/internal/pkg/constvars"
	"mado-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func useCommonMiddlewares(router *chi.Mux, internalConfig *config.InternalConfig, middlewares *middlewares.Middlewares) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.CreateRateLimiter())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestBodyLimit)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthyMessage, map[string]string{
			"version": internalConfig.App.Version,
		})
	})
}

// SetupDraftsRoutes mounts the server-rendered drafts page.
func SetupDraftsRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	draftsController *controllers.DraftsController,
) {
	useCommonMiddlewares(router, internalConfig, middlewares)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.SessionCookie)
		attachDraftsRoutes(r, draftsController)
	})
}

// SetupMadoRoutes mounts the MADO backend API.
func SetupMadoRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	madoController *controllers.MadoController,
) {
	useCommonMiddlewares(router, internalConfig, middlewares)

	attachMadoRoutes(router, madoController)
}
