package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/brunohpsv/medagendar/internal/chat"
	"github.com/brunohpsv/medagendar/internal/http/handlers"
	httpmiddleware "github.com/brunohpsv/medagendar/internal/http/middleware"
	"github.com/brunohpsv/medagendar/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	DoctorsHandler      *handlers.DoctorsHandler
	AppointmentsHandler *handlers.AppointmentsHandler
	TriageHandler       *handlers.TriageHandler
	AdminHandler        *handlers.AdminHandler
	ChatHandler         *chat.Handler
	MetricsHandler      http.Handler
	CORSAllowedOrigins  []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// Directory
	r.Route("/doctors", func(r chi.Router) {
		r.Get("/", cfg.DoctorsHandler.List)
		r.Post("/", cfg.DoctorsHandler.Register)
		r.Route("/{doctorID}", func(r chi.Router) {
			r.Get("/", cfg.DoctorsHandler.Get)
			r.Get("/schedule", cfg.DoctorsHandler.GetSchedule)
			r.Put("/profile", cfg.DoctorsHandler.UpdateProfile)
			r.Put("/work-config", cfg.DoctorsHandler.UpdateWorkConfig)
		})
	})
	r.Get("/specialties", cfg.DoctorsHandler.Specialties)

	// Bookings
	r.Route("/appointments", func(r chi.Router) {
		r.Post("/", cfg.AppointmentsHandler.Book)
		r.Get("/", cfg.AppointmentsHandler.List)
		r.Post("/{appointmentID}/cancel", cfg.AppointmentsHandler.Cancel)
	})

	// Symptom triage calls a paid external service; keep it rate limited.
	if cfg.TriageHandler != nil {
		r.Route("/triage", func(r chi.Router) {
			r.Use(httpmiddleware.RateLimit(1, 5))
			r.Post("/analyze", cfg.TriageHandler.Analyze)
			r.Post("/recommend", cfg.TriageHandler.Recommend)
		})
	}
	if cfg.ChatHandler != nil {
		r.Route("/chat", func(r chi.Router) {
			r.Get("/ws", cfg.ChatHandler.HandleWebSocket)
			r.With(httpmiddleware.RateLimit(1, 5)).Post("/message", cfg.ChatHandler.HandleMessage)
		})
	}

	// Admin
	r.Route("/admin", func(r chi.Router) {
		r.Get("/stats", cfg.AdminHandler.Stats)
		r.Delete("/doctors/{doctorID}", cfg.AdminHandler.RemoveDoctor)
	})

	return r
}
