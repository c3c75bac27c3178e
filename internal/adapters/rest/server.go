package rest

import (
	"context"
	"fmt"
	core_port "listing-view-service/internal/core/port"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server - наш REST API сервер.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer создает новый экземпляр сервера.
func NewServer(port string, handlers *ListingsHandler, baseLogger core_port.LoggerPort) *Server {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Content-Type", "application/json"))

	r.Use(cors.Handler(cors.Options{
		// AllowedOrigins - список доменов, с которых разрешены запросы
		AllowedOrigins: []string{"http://localhost:5173"},

		AllowedMethods: []string{"GET", "POST", "OPTIONS"},

		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-User-ID"},

		AllowCredentials: true,

		// MaxAge - на сколько секунд браузер может кэшировать результат preflight-запроса
		MaxAge: 300, // 5 минут
	}))

	r.Route("/api/v1/listings", func(r chi.Router) {
		// Страница списка доступна и анонимно; пользователь (если есть)
		// передается заголовком и обрабатывается в самом хендлере.
		r.Get("/", handlers.GetListingsPage)

		// Переключение отметки требует пользователя.
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware)
			r.Post("/{listingID}/like", handlers.ToggleLike)
		})
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
