package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/monosijkayal/open-form/internal/service"
	"github.com/monosijkayal/open-form/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	FormService     *service.FormService
	ResponseService *service.ResponseService
	BankService     *service.BankService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	formHandler := handler.NewFormHandler(c.FormService)
	responseHandler := handler.NewResponseHandler(c.ResponseService)
	bankHandler := handler.NewBankHandler(c.BankService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Forms. The respond route is registered before the formId route so the
	// literal "respond" segment is not captured as a formId.
	api.HandleFunc("/forms", formHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/forms/respond/{shareId}", formHandler.GetByShareID).Methods("GET", "OPTIONS")
	api.HandleFunc("/forms/{formId}", formHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/forms/{formId}", formHandler.Update).Methods("PUT", "OPTIONS")

	// Responses
	api.HandleFunc("/responses/share/{shareId}", responseHandler.SubmitByShare).Methods("POST", "OPTIONS")
	api.HandleFunc("/responses/{formId}", responseHandler.Submit).Methods("POST", "OPTIONS")
	api.HandleFunc("/responses/{formId}", responseHandler.List).Methods("GET", "OPTIONS")

	// Standalone question bank
	api.HandleFunc("/questions", bankHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/questions", bankHandler.List).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
