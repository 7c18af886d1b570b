// Package server exposes resolved themes over a read-only HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/kastheco/lacquer/catalog"
	"github.com/kastheco/lacquer/color"
	"github.com/kastheco/lacquer/log"
	"github.com/kastheco/lacquer/theme"
)

const (
	defaultSamples = 10
	maxSamples     = 1024
)

// Source is where the handler finds themes. *catalog.Catalog implements it.
type Source interface {
	List(ctx context.Context) ([]catalog.Info, error)
	Load(ctx context.Context, id string) (*theme.Theme, error)
}

// NewHandler returns an http.Handler that serves themes from src.
// It uses Go 1.22+ ServeMux pattern matching for method+path routing.
// Requests are traced with otelhttp and counted in the /metrics registry.
func NewHandler(src Source) http.Handler {
	mux := http.NewServeMux()
	logger := log.For("server")

	// Health check
	mux.HandleFunc("GET /v1/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.Handle("GET /metrics", metricsHandler())

	mux.HandleFunc("GET /v1/themes", func(w http.ResponseWriter, r *http.Request) {
		infos, err := src.List(r.Context())
		if err != nil {
			logger.Error("list themes", "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if infos == nil {
			infos = []catalog.Info{}
		}
		writeJSON(w, http.StatusOK, infos)
	})

	// loadTheme writes the error response itself and returns nil on failure.
	loadTheme := func(w http.ResponseWriter, r *http.Request) *theme.Theme {
		id := r.PathValue("id")
		start := time.Now()
		t, err := src.Load(r.Context(), id)
		if err != nil {
			if errors.Is(err, theme.ErrThemeNotFound) {
				observeLoad(start, "not_found")
				writeError(w, http.StatusNotFound, "theme not found: "+id)
				return nil
			}
			observeLoad(start, "error")
			logger.Error("load theme", "id", id, "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return nil
		}
		observeLoad(start, "success")
		return t
	}

	mux.HandleFunc("GET /v1/themes/{id}", func(w http.ResponseWriter, r *http.Request) {
		t := loadTheme(w, r)
		if t == nil {
			return
		}
		writeJSON(w, http.StatusOK, t.Snapshot())
	})

	mux.HandleFunc("GET /v1/themes/{id}/css", func(w http.ResponseWriter, r *http.Request) {
		t := loadTheme(w, r)
		if t == nil {
			return
		}
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(GenerateCSS(t)))
	})

	// Sample a gradient (?n= number of colors, default 10)
	mux.HandleFunc("GET /v1/themes/{id}/gradients/{gradient}", func(w http.ResponseWriter, r *http.Request) {
		n := defaultSamples
		if raw := r.URL.Query().Get("n"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > maxSamples {
				writeError(w, http.StatusBadRequest, "n must be an integer between 1 and "+strconv.Itoa(maxSamples))
				return
			}
			n = parsed
		}

		t := loadTheme(w, r)
		if t == nil {
			return
		}
		name := r.PathValue("gradient")
		g, ok := t.GetGradient(name)
		if !ok {
			writeError(w, http.StatusNotFound, "gradient not found: "+name)
			return
		}
		gradientSamplesTotal.Add(float64(n))
		writeJSON(w, http.StatusOK, gradientSamples{
			Gradient: name,
			Stops:    g.Stops(),
			Colors:   g.Generate(n),
		})
	})

	return otelhttp.NewHandler(instrument(mux), "lacquer-server")
}

type gradientSamples struct {
	Gradient string        `json:"gradient"`
	Stops    []color.Color `json:"stops"`
	Colors   []color.Color `json:"colors"`
}

// writeJSON encodes v as JSON and writes it to w with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
