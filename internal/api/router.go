package api

import (
	"log"
	"net/http"
	"time"

	"charchat-backend/internal/config"
	"charchat-backend/internal/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterDependencies holds all the dependencies required by the router setup,
// primarily handlers and configuration.
type RouterDependencies struct {
	AuthHandler      *handlers.AuthHandler
	CharacterHandler *handlers.CharacterHandler
	SessionHandler   *handlers.SessionHandler
	ChatHandler      *handlers.ChatHandler
	Config           *config.Config
}

// NewRouter creates and configures the main Chi router for the application.
func NewRouter(deps RouterDependencies) *chi.Mux {
	r := chi.NewRouter()

	// --- Base Middleware Stack ---
	r.Use(middleware.RequestID)                 // Inject request ID into context
	r.Use(middleware.RealIP)                    // Use X-Forwarded-For or X-Real-IP
	r.Use(middleware.Logger)                    // Log requests (consider a structured logger)
	r.Use(middleware.Recoverer)                 // Recover from panics, return 500
	r.Use(middleware.Timeout(60 * time.Second)) // Set a request timeout

	// --- CORS Configuration ---
	// The chat endpoint is called straight from browsers, so the policy
	// stays permissive: any origin, no credentials.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           86400,
	}))

	// --- Public Routes (No JWT Required) ---
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/v1/auth", func(r chi.Router) {
		if deps.AuthHandler == nil {
			panic("AuthHandler dependency is nil in router setup")
		}
		r.Post("/signup", deps.AuthHandler.HandleSignup)
		r.Post("/login", deps.AuthHandler.HandleLogin)
	})

	// --- Public Chat Endpoint ---
	// The send-message flow identifies the user by the userId field in
	// the request body rather than a bearer token, mirroring how the
	// widget embeds call it.
	if deps.ChatHandler != nil {
		r.Post("/v1/chat", deps.ChatHandler.HandleSendMessage)
	} else {
		log.Println("WARN: ChatHandler dependency is nil, skipping /v1/chat route.")
	}

	// --- Authenticated Routes (JWT Required) ---
	r.Route("/v1", func(r chi.Router) {
		// Apply JWT Authentication Middleware
		r.Use(JwtAuthMiddleware(deps.Config.JWTSecret))

		// --- Mount Character Routes ---
		if deps.CharacterHandler != nil {
			r.Route("/characters", func(r chi.Router) {
				r.Get("/", deps.CharacterHandler.HandleListCharacters)
				r.Get("/{characterID}", deps.CharacterHandler.HandleGetCharacter)
			})
		} else {
			log.Println("WARN: CharacterHandler dependency is nil, skipping /v1/characters routes.")
		}

		// --- Mount Session Routes ---
		if deps.SessionHandler != nil {
			r.Route("/sessions", func(r chi.Router) {
				r.Get("/", deps.SessionHandler.HandleListSessions)
				r.Get("/messages", deps.SessionHandler.HandleListMessages)
			})
		} else {
			log.Println("WARN: SessionHandler dependency is nil, skipping /v1/sessions routes.")
		}
	})

	return r
}
