package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmkorzh/farmbox/internal/crafting"
	"github.com/dmkorzh/farmbox/internal/database"
	"github.com/dmkorzh/farmbox/internal/dump"
	"github.com/dmkorzh/farmbox/internal/economy"
	"github.com/dmkorzh/farmbox/internal/farm"
	"github.com/dmkorzh/farmbox/internal/handler"
	"github.com/dmkorzh/farmbox/internal/job"
	"github.com/dmkorzh/farmbox/internal/logger"
	"github.com/dmkorzh/farmbox/internal/metrics"
	"github.com/dmkorzh/farmbox/internal/player"
)

type Server struct {
	httpServer      *http.Server
	dbPool          database.Pool
	playerService   player.Service
	farmService     farm.Service
	economyService  economy.Service
	craftingService crafting.Service
	dumpService     dump.Service
	jobService      job.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, playerService player.Service, farmService farm.Service, economyService economy.Service, craftingService crafting.Service, dumpService dump.Service, jobService job.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Player routes
		playerHandler := handler.NewPlayerHandler(playerService)
		r.Route("/player", func(r chi.Router) {
			r.Post("/register", playerHandler.Register)
			r.Post("/reset", playerHandler.Reset)
		})

		// Farm lifecycle routes
		farmHandler := handler.NewFarmHandler(farmService)
		r.Get("/farm", playerHandler.GetSnapshot)
		r.Route("/farm", func(r chi.Router) {
			r.Post("/plant", farmHandler.Plant)
			r.Post("/plant-all", farmHandler.PlantAll)
			r.Post("/harvest", farmHandler.Harvest)
			r.Post("/harvest-all", farmHandler.HarvestAll)
			r.Post("/remove", farmHandler.Remove)
			r.Post("/remove-all", farmHandler.RemoveAll)
			r.Post("/accelerate", farmHandler.Accelerate)
			r.Post("/water-bottle", farmHandler.UseWaterBottle)
		})

		// Economy routes
		economyHandler := handler.NewEconomyHandler(economyService)
		r.Route("/economy", func(r chi.Router) {
			r.Post("/slot/buy", economyHandler.BuySlot)
			r.Post("/deposit", economyHandler.Deposit)
			r.Post("/withdraw", economyHandler.Withdraw)
			r.Post("/sell-gold", economyHandler.SellGoldFruits)
			r.Post("/trade", economyHandler.Trade)
			r.Post("/premium", economyHandler.BuyPremium)
			r.Get("/offers", economyHandler.ListOffers)
		})

		// Crafting routes
		craftingHandler := handler.NewCraftingHandler(craftingService)
		r.Post("/craft", craftingHandler.Craft)
		r.Get("/recipes", craftingHandler.ListRecipes)

		// Dump sink routes
		dumpHandler := handler.NewDumpHandler(dumpService)
		r.Route("/dump", func(r chi.Router) {
			r.Post("/", dumpHandler.Dump)
			r.Get("/table", dumpHandler.DropTable)
		})

		// Worker routes
		jobHandler := handler.NewJobHandler(jobService)
		r.Route("/worker", func(r chi.Router) {
			r.Post("/hire", jobHandler.HireWorker)
			r.Post("/fire", jobHandler.FireWorker)
		})

		// Manual tick routes, for ops and integration tests
		tickHandler := handler.NewTickHandler(farmService)
		r.Route("/tick", func(r chi.Router) {
			r.Post("/growth", tickHandler.TickGrowth)
			r.Post("/water", tickHandler.TickWater)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:          dbPool,
		playerService:   playerService,
		farmService:     farmService,
		economyService:  economyService,
		craftingService: craftingService,
		dumpService:     dumpService,
		jobService:      jobService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
