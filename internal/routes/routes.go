package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "ADVENTURA_BACK-END/docs"
	"ADVENTURA_BACK-END/internal/config"
	"ADVENTURA_BACK-END/internal/handlers"
	"ADVENTURA_BACK-END/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	cfg *config.Config,
	adventuresHandler *handlers.AdventuresHandler,
	friendsHandler *handlers.FriendsHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Adventure routes (collection plus all nested resources)
	http.HandleFunc("/api/adventures", middleware.AuthMiddleware(adventuresHandler.Adventures, &cfg.JWT))
	http.HandleFunc("/api/adventures/", middleware.AuthMiddleware(adventuresHandler.Adventures, &cfg.JWT))

	// Friend routes
	http.HandleFunc("/api/friends", middleware.AuthMiddleware(friendsHandler.ListFriends, &cfg.JWT))

	// Swagger documentation
	http.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Adventura backend is running."))
}
