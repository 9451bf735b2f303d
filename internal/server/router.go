package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"rural-health-assistant/internal/config"
	"rural-health-assistant/internal/handlers"
	"rural-health-assistant/internal/middleware"
)

// NewRouter wires every route onto a gin engine.
func NewRouter(cfg *config.Config, h *handlers.Handler, authn *middleware.Authenticator, log logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(cors.New(corsConfig(cfg.CORS)))

	r.GET("/", h.Home)
	r.GET("/health", h.Health)

	r.POST("/appointments", h.CreateAppointment)
	doctorOnly := []gin.HandlerFunc{middleware.Auth(authn, cfg.Auth.ProtectDoctorRoutes)}
	if cfg.Auth.ProtectDoctorRoutes {
		doctorOnly = append(doctorOnly, middleware.RequireRole(middleware.DoctorRole))
	}
	r.GET("/appointments", append(doctorOnly, h.ListAppointments)...)

	r.POST("/recovery", h.LogRecovery)
	r.GET("/recovery/:user", h.RecoveryLogs)

	r.GET("/tips", h.Tips)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.POST("/chatbot", h.Chatbot)

	r.POST("/ask", h.Ask)
	r.POST("/suggest", h.Suggest)

	api := r.Group("/api")
	{
		api.POST("/symptom-check", h.SymptomCheck)
		api.POST("/diagnose", h.Diagnose)
		api.POST("/process_symptoms", h.ProcessSymptoms)
		api.GET("/languages", h.Languages)
	}

	return r
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader}
	c.ExposeHeaders = []string{middleware.RequestIDHeader}

	if len(cfg.AllowedOrigins) == 0 || (len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
		c.AllowCredentials = true
	}
	return c
}

// Run serves handler until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg config.ServerConfig, handler http.Handler, log logrus.FieldLogger) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("🚀 Server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
