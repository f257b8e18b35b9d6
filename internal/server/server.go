package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"runtime"
	"time"

	"vidthumb/internal/logging"
	"vidthumb/internal/settings"
	"vidthumb/internal/thumbnail"
	"vidthumb/internal/video"
	"vidthumb/internal/watermark"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config holds the server configuration.
type Config struct {
	Addr    string
	Version string
}

// Server serves the thumbnail HTTP API.
type Server struct {
	config     Config
	httpServer *http.Server
}

// New builds a Server with its routes wired up.
func New(config Config) *Server {
	s := &Server{config: config}

	r := mux.NewRouter()
	r.Use(metricsMiddleware)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/info", s.handleInfo).Methods(http.MethodGet)
	api.HandleFunc("/thumbnails", s.handleGenerate).Methods(http.MethodPost)

	s.httpServer = &http.Server{
		Addr:         config.Addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute, // grid generation on long videos is slow
	}
	return s
}

// ListenAndServe blocks serving requests until Shutdown or a listener error.
func (s *Server) ListenAndServe() error {
	logging.Info("listening on %s", s.config.Addr)
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

type healthResponse struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, healthResponse{
		Status:       "healthy",
		Version:      s.config.Version,
		GoVersion:    runtime.Version(),
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
	})
}

type infoResponse struct {
	Path       string  `json:"path"`
	Duration   float64 `json:"duration"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	FPS        float64 `json:"fps"`
	Resolution string  `json:"resolution"`
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeJSONError(w, "missing required query parameter: path", http.StatusBadRequest)
		return
	}
	if _, err := os.Stat(path); err != nil {
		writeJSONError(w, "video not found", http.StatusNotFound)
		return
	}

	src, err := video.Open(path)
	if err != nil {
		logging.Error("failed to open %s: %v", path, err)
		writeJSONError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	defer src.Close()

	info := src.Info()
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, infoResponse{
		Path:       info.Path,
		Duration:   info.Duration,
		Width:      info.Width,
		Height:     info.Height,
		FPS:        info.FPS,
		Resolution: info.Resolution(),
	})
}

// generateRequest mirrors the persisted settings record, plus the video to
// operate on. Absent settings fields take their defaults.
type generateRequest struct {
	VideoPath string             `json:"video_path"`
	Thumbnail thumbnail.Settings `json:"thumbnail"`
	Watermark watermark.Settings `json:"watermark"`
}

type generateResponse struct {
	OutputPath string `json:"output_path"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	defaults := settings.Default()
	req := generateRequest{
		Thumbnail: defaults.Thumbnail,
		Watermark: defaults.Watermark,
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.VideoPath == "" {
		writeJSONError(w, "missing required field: video_path", http.StatusBadRequest)
		return
	}
	if _, err := os.Stat(req.VideoPath); err != nil {
		writeJSONError(w, "video not found", http.StatusNotFound)
		return
	}

	mode := string(req.Thumbnail.Mode)
	start := time.Now()

	outputPath, img, err := thumbnail.New(req.VideoPath).Generate(req.Thumbnail, req.Watermark, nil)
	if err != nil {
		thumbnailsGenerated.WithLabelValues(mode, "error").Inc()
		logging.Error("generation failed for %s: %v", req.VideoPath, err)

		status := http.StatusInternalServerError
		if errors.Is(err, thumbnail.ErrUnsupportedMode) {
			status = http.StatusBadRequest
		}
		writeJSONError(w, err.Error(), status)
		return
	}

	thumbnailsGenerated.WithLabelValues(mode, "success").Inc()
	generationDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, generateResponse{
		OutputPath: outputPath,
		Width:      img.Bounds().Dx(),
		Height:     img.Bounds().Dy(),
	})
}

// writeJSON encodes v to the response writer. Encoding errors are logged
// since there is nothing useful to do about them mid-response.
func writeJSON(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode JSON response: %v", err)
	}
}

// writeJSONError writes an error response as JSON with the given status.
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	writeJSON(w, map[string]string{"error": message})
}
