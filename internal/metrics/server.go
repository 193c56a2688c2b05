package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router builds the HTTP surface: /metrics, /health and whatever mount adds.
func Router(mount func(chi.Router)) http.Handler {
	Init()
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(countRequests)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/health", health)
	if mount != nil {
		mount(r)
	}
	return r
}

// Serve runs the HTTP surface on addr until ctx is cancelled. The returned
// channel receives exactly one value when the server stops.
func Serve(ctx context.Context, addr string, mount func(chi.Router)) <-chan error {
	errCh := make(chan error, 2)
	srv := &http.Server{
		Addr:              addr,
		Handler:           Router(mount),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errCh <- err
			return
		}
		errCh <- ctx.Err()
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	return errCh
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		HTTPRequests.WithLabelValues(r.Method, route).Inc()
	})
}
