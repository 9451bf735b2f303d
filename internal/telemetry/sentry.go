package telemetry

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"

	"rural-health-assistant/internal/config"
)

// InitSentry configures error reporting. With an empty DSN the SDK is
// initialised but sends nothing, so callers never need to branch on it.
func InitSentry(cfg config.SentryConfig) (flush func(), err error) {
	err = sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
	})
	if err != nil {
		return func() {}, err
	}

	return func() { sentry.Flush(2 * time.Second) }, nil
}

// CaptureError reports err with the given tags attached. It uses the hub
// stored on ctx (one per request) and falls back to a clone of the global
// hub, so concurrent callers never share a scope.
func CaptureError(ctx context.Context, err error, tags map[string]string) {
	if err == nil {
		return
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		hub.CaptureException(err)
	})
}
