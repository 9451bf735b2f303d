package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"rural-health-assistant/internal/auth"
	"rural-health-assistant/internal/models"
	"rural-health-assistant/internal/telemetry"
)

// Store is the persistence the handlers need; repository.Repository implements it.
type Store interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) error
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	AppendRecoveryEntry(ctx context.Context, user string, entry models.RecoveryEntry) error
	ListRecoveryEntries(ctx context.Context, user string) ([]models.RecoveryEntry, error)
	ListTips(ctx context.Context) ([]string, error)
	FindUsersByName(ctx context.Context, name string) ([]models.User, error)
	Ping(ctx context.Context) error
}

// Diagnoser is implemented by diagnosis.Pipeline.
type Diagnoser interface {
	Diagnose(ctx context.Context, symptom, languageCode string) (models.DiagnosisResult, error)
	QuickCheck(ctx context.Context, symptom string) (models.DiagnosisResult, error)
}

// Generator is the raw text model used by the mentor endpoints.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// SessionManager is implemented by auth.SessionStore.
type SessionManager interface {
	Create(ctx context.Context, data auth.SessionData) (string, error)
	Delete(ctx context.Context, id string) error
	TTL() time.Duration
}

// Handler serves every HTTP route of the assistant.
type Handler struct {
	store     Store
	diagnoser Diagnoser
	generator Generator
	tokens    *auth.TokenService
	sessions  SessionManager // nil when sessions are disabled
	log       logrus.FieldLogger
}

// Deps are the collaborators a Handler is built from. Sessions may be nil.
type Deps struct {
	Store     Store
	Diagnoser Diagnoser
	Generator Generator
	Tokens    *auth.TokenService
	Sessions  SessionManager
	Log       logrus.FieldLogger
}

// NewHandler creates a handler from its dependencies.
func NewHandler(d Deps) *Handler {
	return &Handler{
		store:     d.Store,
		diagnoser: d.Diagnoser,
		generator: d.Generator,
		tokens:    d.Tokens,
		sessions:  d.Sessions,
		log:       d.Log,
	}
}

// requestContext is the request's context carrying its Sentry hub.
func requestContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		ctx = sentry.SetHubOnContext(ctx, hub)
	}
	return ctx
}

// report logs err and sends it to Sentry tagged with the route.
func (h *Handler) report(c *gin.Context, message string, err error) {
	_ = c.Error(err)
	h.log.WithError(err).WithField("path", c.FullPath()).Error("❌ " + message)
	telemetry.CaptureError(requestContext(c), err, map[string]string{"route": c.FullPath()})
}

// fail reports err and answers with a generic message.
func (h *Handler) fail(c *gin.Context, status int, message string, err error) {
	h.report(c, message, err)
	c.JSON(status, gin.H{"error": message})
}

// Home answers the liveness probe used by the frontend.
func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Rural health assistant backend is running"})
}

// Health reports whether the document store is reachable.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.WithError(err).Warn("health check: store unreachable")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "degraded",
			"service": "rural-health-assistant",
			"db":      "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "rural-health-assistant",
		"db":      "ok",
	})
}
