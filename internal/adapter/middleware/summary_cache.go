package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis round-trips never block a request longer than this; on timeout the
// summary is just recomputed.
const cacheOpTimeout = 2 * time.Second

type respRecorder struct {
	w    http.ResponseWriter
	buf  *bytes.Buffer
	code int
}

func (r *respRecorder) Header() http.Header { return r.w.Header() }
func (r *respRecorder) Write(b []byte) (int, error) {
	if r.buf != nil {
		r.buf.Write(b)
	}
	return r.w.Write(b)
}
func (r *respRecorder) WriteHeader(statusCode int) { r.code = statusCode; r.w.WriteHeader(statusCode) }

// SummaryCache serves GET summary responses from redis for up to ttl.
// A nil client disables caching entirely. Only 200 responses are stored,
// so an aggregation failure is never replayed.
func SummaryCache(rdb *redis.Client, ttl time.Duration, log *logrus.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if rdb == nil || c.Request().Method != http.MethodGet {
				return next(c)
			}
			key := cacheKey(c.Path())

			ctx, cancel := context.WithTimeout(c.Request().Context(), cacheOpTimeout)
			body, err := rdb.Get(ctx, key).Bytes()
			cancel()
			if err == nil {
				return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, body)
			}
			if !errors.Is(err, redis.Nil) {
				log.WithError(err).WithField("key", key).Warn("summary cache read failed")
			}

			rec := &respRecorder{w: c.Response().Writer, buf: &bytes.Buffer{}, code: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}
			if rec.code == http.StatusOK && rec.buf.Len() > 0 {
				sctx, scancel := context.WithTimeout(context.Background(), cacheOpTimeout)
				defer scancel()
				if err := rdb.Set(sctx, key, rec.buf.Bytes(), ttl).Err(); err != nil {
					log.WithError(err).WithField("key", key).Warn("summary cache write failed")
				}
			}
			return nil
		}
	}
}

// SummaryInvalidate drops every cached summary after a successful mutation,
// so batch updates are visible on the next summary read.
func SummaryInvalidate(rdb *redis.Client, log *logrus.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := next(c); err != nil {
				c.Error(err)
			}
			if rdb == nil {
				return nil
			}
			if code := c.Response().Status; code < 200 || code >= 300 {
				return nil
			}
			ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
			defer cancel()
			if err := rdb.Del(ctx, summaryKeys()...).Err(); err != nil {
				log.WithError(err).Warn("summary cache invalidation failed")
			}
			return nil
		}
	}
}

func cacheKey(path string) string { return "summary:" + path }

func summaryKeys() []string {
	return []string{cacheKey("/loans/summary"), cacheKey("/pools/summary")}
}
