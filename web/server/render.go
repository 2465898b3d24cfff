package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// TileUpdate represents a single tile update sent via SSE
type TileUpdate struct {
	TileX      int    `json:"tileX"`
	TileY      int    `json:"tileY"`
	ImageData  string `json:"imageData"`  // Base64 encoded PNG of just this tile
	TileNumber int    `json:"tileNumber"` // Completed tiles so far (1-based)
	TotalTiles int    `json:"totalTiles"` // Total number of tiles in the image
}

// RenderComplete is the payload of the final "complete" event
type RenderComplete struct {
	ImageData   string `json:"imageData"` // Base64 encoded PNG of the full frame
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	MaxBounces  int    `json:"maxBounces"`
	TotalTiles  int    `json:"totalTiles"`
	NumWorkers  int    `json:"numWorkers"`
	ElapsedMs   int64  `json:"elapsedMs"`
	ObjectCount int    `json:"objectCount"`
	LightCount  int    `json:"lightCount"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "tile", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// handleRenderStream renders a frame and streams finished tiles via SSE
func (s *Server) handleRenderStream(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Unified SSE event channel, drained by a single writer
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(w, ctx, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	consoleChan, webLogger := s.setupConsoleLogging()
	consoleDone := make(chan struct{})
	go func() {
		defer close(consoleDone)
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()

	raytracer := s.newRaytracer(sceneObj, req, webLogger)
	webLogger.Printf("Rendering %s at %dx%d\n", sceneObj.Name, raytracer.Width(), raytracer.Height())

	resultChan, tileChan, errChan := raytracer.RenderAsync(ctx, renderer.RenderOptions{TileUpdates: true})

	// A disconnect cancels ctx, which ends the render and closes all three channels
	var result renderer.RenderResult
	var renderErr error
	for resultChan != nil || tileChan != nil || errChan != nil {
		select {
		case tileResult, ok := <-tileChan:
			if !ok {
				tileChan = nil
				continue
			}
			s.handleTileUpdate(ctx, sseEventChan, tileResult)

		case res, ok := <-resultChan:
			if !ok {
				resultChan = nil
				continue
			}
			result = res

		case err, ok := <-errChan:
			if !ok {
				errChan = nil
				continue
			}
			renderErr = err
		}
	}

	// Flush console output before the final event
	close(consoleChan)
	<-consoleDone

	if renderErr != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Rendering failed: %v", renderErr))
		return
	}
	s.handleComplete(ctx, sseEventChan, result, raytracer, len(sceneObj.Objects), len(sceneObj.Lights))
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	return consoleChan, NewWebLogger(renderID, consoleChan)
}

// writeSSEEvents handles writing all SSE events in a single goroutine (thread-safe)
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan <-chan SSEEvent) {
	flusher, _ := w.(http.Flusher)
	for event := range sseEventChan {
		// Keep draining after a disconnect so senders never block
		if ctx.Err() != nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
			continue
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}

// streamConsoleMessages forwards console messages until the console channel closes
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for consoleMsg := range consoleChan {
		data, err := json.Marshal(consoleMsg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			continue
		}

		select {
		case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
		case <-ctx.Done():
		}
	}
}

// handleTileUpdate processes and sends tile update events
func (s *Server) handleTileUpdate(ctx context.Context, sseEventChan chan<- SSEEvent, tileResult renderer.TileCompletionResult) {
	tileData, err := imageToBase64PNG(tileResult.TileImage)
	if err != nil {
		log.Printf("Error encoding tile image (%d, %d): %v", tileResult.TileX, tileResult.TileY, err)
		return
	}

	update := TileUpdate{
		TileX:      tileResult.TileX,
		TileY:      tileResult.TileY,
		ImageData:  tileData,
		TileNumber: tileResult.TileNumber,
		TotalTiles: tileResult.TotalTiles,
	}

	s.sendJSONEvent(ctx, sseEventChan, "tile", update)
}

// handleComplete sends the finished frame and its statistics
func (s *Server) handleComplete(ctx context.Context, sseEventChan chan<- SSEEvent, result renderer.RenderResult,
	raytracer *renderer.Raytracer, objectCount, lightCount int) {
	imageData, err := imageToBase64PNG(result.Image)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Encoding failed: %v", err))
		return
	}

	complete := RenderComplete{
		ImageData:   imageData,
		Width:       raytracer.Width(),
		Height:      raytracer.Height(),
		MaxBounces:  raytracer.Config().MaxBounces,
		TotalTiles:  result.Stats.TotalTiles,
		NumWorkers:  result.Stats.NumWorkers,
		ElapsedMs:   result.Stats.Duration.Milliseconds(),
		ObjectCount: objectCount,
		LightCount:  lightCount,
	}

	s.sendJSONEvent(ctx, sseEventChan, "complete", complete)
}

func (s *Server) sendJSONEvent(ctx context.Context, sseEventChan chan<- SSEEvent, eventType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshaling %s event: %v", eventType, err)
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: eventType, Data: string(data)}:
	case <-ctx.Done():
	}
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan<- SSEEvent, message string) {
	select {
	case sseEventChan <- SSEEvent{Type: "error", Data: message}:
	case <-ctx.Done():
		// Client disconnected, don't block
	}
}
