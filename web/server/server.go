package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// DefaultTileSize is the tile size used for web renders
const DefaultTileSize = 32

// Parameter limits shared by parsing and /api/scene-config
const (
	minImageSize = 1
	maxImageSize = 2000
	maxBounces   = 50
	minAperture  = 0.05
	maxAperture  = 10.0
)

// Server handles web requests for the path tracer
type Server struct {
	port int
	mux  *http.ServeMux
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	s := &Server{port: port, mux: http.NewServeMux()}

	// API endpoints
	s.mux.HandleFunc("/api/render", s.handleRenderImage)
	s.mux.HandleFunc("/api/render/stream", s.handleRenderStream)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)
	s.mux.HandleFunc("/api/health", s.handleHealth)

	return s
}

// Handler returns the HTTP handler serving all routes
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string  `json:"scene"`      // Scene id from /api/scenes
	Width      int     `json:"width"`      // Image width (0 = scene default)
	Height     int     `json:"height"`     // Image height (0 = scene default)
	Aperture   float64 `json:"aperture"`   // Field of view scale (0 = scene default)
	MaxBounces int     `json:"maxBounces"` // Bounce budget (-1 = scene default)
	Format     string  `json:"format"`     // png, bmp or tiff
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists builtin scenes and scene files, grouped
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// handleRenderImage renders a whole frame and returns it encoded in the requested format
func (s *Server) handleRenderImage(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, sceneErrorStatus(err), err.Error())
		return
	}

	raytracer := s.newRaytracer(sceneObj, req, nil)
	img, stats, err := raytracer.RenderParallel(r.Context(), nil)
	if err != nil {
		log.Printf("Render of %s aborted: %v", req.Scene, err)
		return
	}

	var buf bytes.Buffer
	if err := loaders.EncodeImage(&buf, img, req.Format); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	contentType, _ := loaders.ContentType(req.Format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.MaxBounces, err = parseIntParam(query, "bounces", -1, 0, maxBounces); err != nil {
		return nil, err
	}
	if req.Aperture, err = parseFloatParam(query, "aperture", 0, minAperture, maxAperture); err != nil {
		return nil, err
	}

	req.Format = query.Get("format")
	if req.Format == "" {
		req.Format = "png"
	}
	if !slices.Contains(loaders.SupportedFormats, req.Format) {
		return nil, fmt.Errorf("format must be one of %s, got: %s", strings.Join(loaders.SupportedFormats, ", "), req.Format)
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.MaxBounces > 20 {
		log.Printf("Render warning: Large image with many bounces may render slowly")
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene builds the requested scene with the request's camera overrides.
// Only builtin ids and discovered scene files are served, never raw paths.
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	if strings.ContainsAny(req.Scene, `/\`) || strings.HasSuffix(req.Scene, ".json") {
		return nil, fmt.Errorf("%w: %q", scene.ErrUnknownScene, req.Scene)
	}
	return scene.LoadScene(req.Scene, scene.CameraConfig{
		Aperture: req.Aperture,
		Width:    req.Width,
		Height:   req.Height,
	})
}

// newRaytracer creates a raytracer honoring the request's bounce override
func (s *Server) newRaytracer(sceneObj *scene.Scene, req *RenderRequest, logger core.Logger) *renderer.Raytracer {
	bounces := sceneObj.SamplingConfig.MaxBounces
	if req.MaxBounces >= 0 {
		bounces = req.MaxBounces
	}
	config := renderer.RenderConfig{
		MaxBounces: bounces,
		NumWorkers: 0, // Auto-detect
		TileSize:   DefaultTileSize,
	}
	if logger == nil {
		logger = serverLogger{}
	}
	return renderer.NewSceneRaytracer(sceneObj, config, logger)
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	req := &RenderRequest{Scene: r.URL.Query().Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, sceneErrorStatus(err), err.Error())
		return
	}

	response := map[string]interface{}{
		"scene": req.Scene,
		"name":  sceneObj.Name,
		"defaults": map[string]interface{}{
			"width":      sceneObj.CameraConfig.Width,
			"height":     sceneObj.CameraConfig.Height,
			"aperture":   sceneObj.CameraConfig.Aperture,
			"maxBounces": sceneObj.SamplingConfig.MaxBounces,
		},
		"limits": map[string]interface{}{
			"width":    map[string]int{"min": minImageSize, "max": maxImageSize},
			"height":   map[string]int{"min": minImageSize, "max": maxImageSize},
			"bounces":  map[string]int{"min": 0, "max": maxBounces},
			"aperture": map[string]float64{"min": minAperture, "max": maxAperture},
		},
		"formats": loaders.SupportedFormats,
	}

	writeJSON(w, http.StatusOK, response)
}

func sceneErrorStatus(err error) int {
	if errors.Is(err, scene.ErrUnknownScene) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
