// Package server exposes the opmatrix tools over HTTP for agent frameworks.
//
// Tool call endpoint: POST /tool
// Schema endpoint:    GET  /schema
// Health endpoint:    GET  /health
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	opmatrix "github.com/njchilds90/opmatrix"
	"github.com/njchilds90/opmatrix/internal/config"
)

const requestIDHeader = "X-Request-ID"

// Server serves tool calls. The zero value is not usable; call New.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	mux    *http.ServeMux
}

func New(cfg *config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{cfg: cfg, logger: logger, mux: http.NewServeMux()}
	s.mux.HandleFunc("/tool", s.handleTool)
	s.mux.HandleFunc("/schema", s.handleSchema)
	s.mux.HandleFunc("/health", s.handleHealth)
	return s
}

// Handler returns the root handler with request ID and panic recovery
// middleware applied.
func (s *Server) Handler() http.Handler {
	return s.withRequestID(s.mux)
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		start := time.Now()
		log := s.logger.With(zap.String("request_id", id), zap.String("path", r.URL.Path))
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic in handler", zap.Any("panic", rec), zap.ByteString("stack", debug.Stack()))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
			log.Debug("request handled", zap.String("method", r.Method), zap.Duration("elapsed", time.Since(start)))
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// POST /tool — handle a tool call
func (s *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req opmatrix.ToolRequest
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	// Ensure there's no trailing junk.
	if dec.More() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: trailing data"})
		return
	}

	resp := opmatrix.HandleToolCall(req)
	fields := []zap.Field{
		zap.String("request_id", w.Header().Get(requestIDHeader)),
		zap.String("tool", req.Tool),
	}
	if resp.Error != "" {
		s.logger.Info("tool call failed", append(fields, zap.String("error", resp.Error))...)
	} else {
		s.logger.Debug("tool call", fields...)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GET /schema — return tool schema for agent registration
func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, opmatrix.MCPToolSpec())
}

// GET /health — liveness check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"tables": len(opmatrix.Tables()),
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) httpServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.GetReadHeaderTimeout(),
		ReadTimeout:       s.cfg.GetReadTimeout(),
		WriteTimeout:      s.cfg.GetWriteTimeout(),
		IdleTimeout:       s.cfg.GetIdleTimeout(),
	}
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully
// within the configured shutdown timeout. It returns nil on a clean
// shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := s.httpServer()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("opmatrix tool server listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.GetShutdownTimeout())
		defer cancel()
		s.logger.Info("shutting down tool server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
