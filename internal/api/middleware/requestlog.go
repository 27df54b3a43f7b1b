package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

type ctxKey struct{}

// RequestID returns the request ID stored by RequestLog, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// probePaths are logged only when their outcome changes, so a healthy pod
// polled every few seconds stays quiet.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured
// fields. It generates a request ID if none is provided and propagates it
// through the response header, the echo context, and the request context.
// Only the path is logged; query strings carry link tokens.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu     sync.Mutex
		probed = map[string]bool{}
	)

	// quiet reports whether a successful probe repeats the previous one.
	quiet := func(path string, ok bool) bool {
		mu.Lock()
		defer mu.Unlock()
		last, seen := probed[path]
		probed[path] = ok
		return ok && seen && last
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			req := c.Request()
			reqID := req.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), ctxKey{}, reqID)))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			path := req.URL.Path
			_, probe := probePaths[path]
			if probe && quiet(path, status < 400) {
				return nil
			}

			level := slog.LevelInfo
			switch {
			case probe && status >= 400, status >= 400 && status < 500:
				level = slog.LevelWarn
			case status >= 500:
				level = slog.LevelError
			}

			log.Log(req.Context(), level, "request",
				"method", req.Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			)
			return nil
		}
	}
}
