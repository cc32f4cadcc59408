package http

import (
	"BetGuide-Backend/internal/analytics"
	"BetGuide-Backend/internal/auth"
	"BetGuide-Backend/internal/metrics"
	"BetGuide-Backend/internal/repository"
	"BetGuide-Backend/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// Version отдается в /health
const Version = "1.0.0"

// Server HTTP сервер с обработчиками
type Server struct {
	bookmakersHandler *BookmakersHandler
	bonusesHandler    *BonusesHandler
	blogHandler       *BlogHandler
	affiliateHandler  *AffiliateHandler
	healthHandler     *HealthHandler
	adminGate         *auth.AdminGate
	metrics           *metrics.Metrics
	allowedOrigins    []string
	log               *zap.Logger
}

// NewServer создает новый HTTP сервер. m может быть nil, тогда /metrics не монтируется.
func NewServer(
	storage repository.Storage,
	blogService *service.BlogService,
	bonusService *service.BonusService,
	tracker *analytics.Tracker,
	adminGate *auth.AdminGate,
	m *metrics.Metrics,
	allowedOrigins []string,
	log *zap.Logger,
) *Server {
	validator := NewValidator()

	return &Server{
		bookmakersHandler: NewBookmakersHandler(storage, validator, log),
		bonusesHandler:    NewBonusesHandler(storage, bonusService, validator, log),
		blogHandler:       NewBlogHandler(blogService, validator, log),
		affiliateHandler:  NewAffiliateHandler(storage, storage, tracker, log),
		healthHandler:     NewHealthHandler(storage, Version, log),
		adminGate:         adminGate,
		metrics:           m,
		allowedOrigins:    allowedOrigins,
		log:               log,
	}
}

// SetupRoutes настраивает маршруты
func (s *Server) SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
	}
	r.Use(auth.CORS(s.allowedOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, "Not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// Health checks (без аутентификации)
	r.Get("/health", s.healthHandler.Health)
	r.Get("/ready", s.healthHandler.Ready)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	// Swagger документация
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	admin := s.adminGate.Require

	r.Route("/api/bookmakers", func(r chi.Router) {
		r.Get("/", s.bookmakersHandler.ListActive)
		r.Get("/featured", s.bookmakersHandler.ListFeatured)
		r.With(admin).Get("/all", s.bookmakersHandler.ListAll)
		r.Get("/{slug}", s.bookmakersHandler.GetBySlug)
		r.Post("/{id}/click", s.affiliateHandler.TrackClick)

		r.With(admin).Post("/", s.bookmakersHandler.Create)
		r.With(admin).Patch("/{id}", s.bookmakersHandler.Update)
		r.With(admin).Delete("/{id}", s.bookmakersHandler.Delete)
	})

	r.Route("/api/bonuses", func(r chi.Router) {
		r.Get("/", s.bonusesHandler.ListActive)
		r.With(admin).Get("/all", s.bonusesHandler.ListAll)
		r.Get("/bookmaker/{bookmakerId}", s.bonusesHandler.ListByBookmaker)

		r.With(admin).Post("/", s.bonusesHandler.Create)
		r.With(admin).Patch("/{id}", s.bonusesHandler.Update)
		r.With(admin).Delete("/{id}", s.bonusesHandler.Delete)
	})

	r.Route("/api/blog", func(r chi.Router) {
		r.Get("/", s.blogHandler.ListPublished)
		r.With(admin).Get("/all", s.blogHandler.ListAll)
		r.Get("/{slug}", s.blogHandler.GetBySlug)

		r.With(admin).Post("/", s.blogHandler.Create)
		r.With(admin).Patch("/{id}", s.blogHandler.Update)
		r.With(admin).Delete("/{id}", s.blogHandler.Delete)
	})

	r.Route("/api/affiliate", func(r chi.Router) {
		r.Use(admin)
		r.Get("/clicks", s.affiliateHandler.ListClicks)
		r.Get("/clicks/{bookmakerId}", s.affiliateHandler.ListClicksByBookmaker)
	})

	return r
}
