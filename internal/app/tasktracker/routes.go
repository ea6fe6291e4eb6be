// Package tasktracker предоставляет маршруты для основного приложения.
package tasktracker

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/task-tracker/internal/config"
	"github.com/magabrotheeeer/task-tracker/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/task-tracker/internal/http/handlers/auth/signup"
	"github.com/magabrotheeeer/task-tracker/internal/http/handlers/health"
	taskcreate "github.com/magabrotheeeer/task-tracker/internal/http/handlers/task/create"
	tasklist "github.com/magabrotheeeer/task-tracker/internal/http/handlers/task/list"
	taskread "github.com/magabrotheeeer/task-tracker/internal/http/handlers/task/read"
	taskremove "github.com/magabrotheeeer/task-tracker/internal/http/handlers/task/remove"
	taskupdate "github.com/magabrotheeeer/task-tracker/internal/http/handlers/task/update"
	userdetails "github.com/magabrotheeeer/task-tracker/internal/http/handlers/user/details"
	userread "github.com/magabrotheeeer/task-tracker/internal/http/handlers/user/read"
	userupdate "github.com/magabrotheeeer/task-tracker/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/task-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/task-tracker/internal/lib/jwt"
	authservice "github.com/magabrotheeeer/task-tracker/internal/services/auth"
	taskservice "github.com/magabrotheeeer/task-tracker/internal/services/task"
	userservice "github.com/magabrotheeeer/task-tracker/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, jwtMaker jwt.Maker,
	authService *authservice.Service, taskService *taskservice.Service, userService *userservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Открытые конечные точки
	r.Get("/", health.New(logger).ServeHTTP)
	r.Post("/signup", signup.New(logger, authService).ServeHTTP)
	r.Post("/login", login.New(logger, authService).ServeHTTP)

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
		r.Get("/tasks", tasklist.New(logger, taskService).ServeHTTP)
		r.Post("/addtask", taskcreate.New(logger, taskService).ServeHTTP)
		r.Get("/edit/{id}", taskread.New(logger, taskService).ServeHTTP)
		r.Post("/edittask/{id}", taskupdate.New(logger, taskService).ServeHTTP)
		r.Delete("/del/{id}", taskremove.New(logger, taskService).ServeHTTP)
		r.Get("/userdeets", userdetails.New(logger, userService).ServeHTTP)
		r.Get("/update/{id}", userread.New(logger, userService).ServeHTTP)
		r.Put("/update/{id}", userupdate.New(logger, userService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
