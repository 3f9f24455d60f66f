// Copyright (c) 2026 Historical Places Explorer. All rights reserved.
// Author: red4golf

package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/red4golf/historical-places-explorer/internal/platform/metrics"
)

// Metrics records request counts and latency per route pattern.
//
// It must be mounted on the chi router (not an arbitrary mux) so that the
// matched route pattern is available after the handler runs; raw paths
// would explode label cardinality.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			startTime := time.Now()
			wrappedWriter := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

			next.ServeHTTP(wrappedWriter, request)

			route := chi.RouteContext(request.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			metrics.ObserveRequest(request.Method, route, wrappedWriter.status, time.Since(startTime))
		})
	}
}
