package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/warblerhq/warbler/internal/handlers"
	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/middlewares"
	"github.com/warblerhq/warbler/internal/monitoring"
	"github.com/warblerhq/warbler/internal/services"
	"github.com/warblerhq/warbler/internal/sessions"
	"github.com/warblerhq/warbler/internal/templates"
)

// SetupRoutes initializes all the application routes.
// The routing logic is isolated here.
func SetupRoutes(
	db *sqlx.DB,
	auth *services.AuthService,
	users *services.UserService,
	messages *services.MessageService,
	manager *sessions.Manager,
	renderer *templates.Renderer,
	swaggerURL string,
) http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(middlewares.LoggingMiddleware(logger.Log))
	router.Use(monitoring.InstrumentHandler)
	router.Use(middlewares.SessionMiddleware(manager))

	tx := middlewares.TxMiddleware(db)

	// Public pages
	router.Get("/", handlers.NewHomeHandler(users, messages, manager, renderer))
	router.Get("/signup", handlers.NewSignupPageHandler(manager, renderer))
	router.With(tx).Post("/signup", handlers.NewSignupHandler(auth, manager, renderer))
	router.Get("/login", handlers.NewLoginPageHandler(manager, renderer))
	router.Post("/login", handlers.NewLoginHandler(auth, manager, renderer))

	// Pages that need a logged-in user
	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireUser(manager))

		r.Get("/logout", handlers.NewLogoutHandler(manager))

		r.Get("/users", handlers.NewUsersIndexHandler(users, manager, renderer))
		r.Get("/users/profile", handlers.NewProfileEditPageHandler(users, manager, renderer))
		r.With(tx).Post("/users/profile", handlers.NewProfileEditHandler(users, manager, renderer))
		r.With(tx).Post("/users/delete", handlers.NewUserDeleteHandler(users, manager))
		r.Get("/users/{userID}", handlers.NewUserShowHandler(users, messages, manager, renderer))
		r.Get("/users/{userID}/following", handlers.NewFollowingHandler(users, manager, renderer))
		r.Get("/users/{userID}/followers", handlers.NewFollowersHandler(users, manager, renderer))
		r.With(tx).Post("/users/follow/{userID}", handlers.NewFollowHandler(users, manager, renderer))
		r.With(tx).Post("/users/stop-following/{userID}", handlers.NewStopFollowingHandler(users, manager, renderer))

		r.Get("/messages/new", handlers.NewMessageNewPageHandler(users, manager, renderer))
		r.With(tx).Post("/messages/new", handlers.NewMessageCreateHandler(messages, manager, renderer))
		r.Get("/messages/{messageID}", handlers.NewMessageShowHandler(messages, users, manager, renderer))
		r.With(tx).Post("/messages/{messageID}/delete", handlers.NewMessageDeleteHandler(messages, manager, renderer))
	})

	// JSON API
	router.Route("/api/v1", func(r chi.Router) {
		r.With(tx).Post("/register", handlers.NewAPIRegisterHandler(auth))
		r.Post("/login", handlers.NewAPILoginHandler(auth, manager))
		r.Get("/msgs", handlers.NewAPIMessagesHandler(messages))
		r.Get("/users/{username}/msgs", handlers.NewAPIUserMessagesHandler(users, messages))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAPIUser())

			r.With(tx).Post("/msgs", handlers.NewAPIPostMessageHandler(messages))
			r.Get("/users/{username}/fllws", handlers.NewAPIFollowsHandler(users))
			r.With(tx).Post("/fllws", handlers.NewAPIFollowHandler(users, users))
		})
	})

	// Operational endpoints
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(swaggerURL),
	))

	router.NotFound(handlers.NewNotFoundHandler(manager, renderer))

	return router
}
