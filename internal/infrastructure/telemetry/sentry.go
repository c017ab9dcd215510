// Package telemetry reports errors to Sentry. Every function is a no-op until
// Init succeeds with a non-empty DSN.
package telemetry

import (
	"runtime"
	"sync/atomic"
	"time"

	gosentry "github.com/getsentry/sentry-go"
)

const flushTimeout = 2 * time.Second

var enabled atomic.Bool

// Init initializes the Sentry SDK. An empty dsn disables reporting.
func Init(dsn, environment, version string) error {
	if dsn == "" {
		enabled.Store(false)
		return nil
	}

	err := gosentry.Init(gosentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		Release:          "sidepanel@" + version,
		AttachStacktrace: true,
	})
	if err != nil {
		return err
	}

	gosentry.ConfigureScope(func(scope *gosentry.Scope) {
		scope.SetTag("os", runtime.GOOS)
		scope.SetTag("arch", runtime.GOARCH)
		scope.SetTag("go_version", runtime.Version())
	})

	enabled.Store(true)
	return nil
}

// IsEnabled returns whether reporting is active.
func IsEnabled() bool {
	return enabled.Load()
}

// Flush waits briefly for buffered events to be sent.
func Flush() {
	if !IsEnabled() {
		return
	}
	gosentry.Flush(flushTimeout)
}

// RecoverPanic captures a panic, flushes, then re-panics.
// Usage: defer telemetry.RecoverPanic()
func RecoverPanic() {
	if !IsEnabled() {
		return
	}
	if err := recover(); err != nil {
		gosentry.CurrentHub().Recover(err)
		gosentry.Flush(flushTimeout)
		panic(err)
	}
}

// Reporter sends handled errors to Sentry.
type Reporter struct{}

// CaptureError reports err with the given tags.
func (Reporter) CaptureError(err error, tags map[string]string) {
	if err == nil || !IsEnabled() {
		return
	}
	gosentry.WithScope(func(scope *gosentry.Scope) {
		scope.SetTags(tags)
		gosentry.CaptureException(err)
	})
}
