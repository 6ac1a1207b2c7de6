// Package api serves a live preview of the animation over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/matt-g-everett/anitx/stream"
	"github.com/matt-g-everett/anitx/util"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Api exposes the latest rendered frame, a health check and metrics.
type Api struct {
	latest *util.ObservableValue[*stream.Frame]
	logger *slog.Logger
}

// NewApi creates an Api reading frames from latest.
func NewApi(latest *util.ObservableValue[*stream.Frame], logger *slog.Logger) *Api {
	a := new(Api)
	a.latest = latest
	a.logger = logger
	return a
}

// Routes builds the router.
func (a *Api) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/frame.png", a.handleFrame)
	r.Get("/healthz", a.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func (a *Api) handleFrame(w http.ResponseWriter, r *http.Request) {
	f := a.latest.Current()
	if f == nil {
		http.Error(w, "no frame rendered yet", http.StatusServiceUnavailable)
		return
	}
	data, err := f.MarshalBinary()
	if err != nil {
		a.logger.Error("encode frame", "index", f.Index, "error", err)
		http.Error(w, "frame encoding failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Frame-Index", strconv.FormatUint(f.Index, 10))
	w.Header().Set("X-Frame-Elapsed", f.Elapsed.String())
	_, _ = w.Write(data)
}

func (a *Api) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Serve listens on addr until ctx is done.
func (a *Api) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	a.logger.Info("listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
