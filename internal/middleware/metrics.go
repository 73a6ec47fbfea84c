// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elhoucineqara/saascompare/internal/metrics"
)

// unmeteredPaths are probe and scrape routes excluded from HTTP metrics.
var unmeteredPaths = map[string]bool{
	"/metrics": true,
	"/health":  true,
	"/ready":   true,
	"/live":    true,
}

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP requests.
// Paths are labelled by route template so slugs do not explode cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if unmeteredPaths[c.FullPath()] {
			c.Next()
			return
		}

		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}
