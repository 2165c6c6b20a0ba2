package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"devportal/internal/delivery/http/controllers"
	"devportal/internal/delivery/http/middleware"
	"devportal/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes, wrapped in
// CORS and request logging.
func NewRouter(accountController *controllers.AccountController, verifier domain.TokenVerifier, allowedOrigins []string, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	admin := middleware.RequireAdmin(verifier, logger)

	// Pending invites
	mux.HandleFunc("GET /admin/accounts/pending-invites", admin(accountController.ListPendingInvites))
	mux.HandleFunc("POST /admin/accounts/pending-invites", admin(accountController.CreatePendingInvite))
	mux.HandleFunc("DELETE /admin/accounts/pending-invites/{identityPoolId}", admin(accountController.DeletePendingInvite))

	// Pending requests
	mux.HandleFunc("GET /admin/accounts/pending-requests", admin(accountController.ListPendingRequests))
	mux.HandleFunc("PUT /admin/accounts/{userId}/denyRequest", admin(accountController.DenyRequest))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return middleware.LoggingMiddleware(logger, middleware.CORS(allowedOrigins, mux))
}
