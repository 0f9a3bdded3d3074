package adminrpc

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/apparata/appconsole/catalog"
	"github.com/apparata/appconsole/handler"
	"github.com/apparata/appconsole/observability"
	"github.com/apparata/appconsole/parser"
	"github.com/apparata/appconsole/session"
)

// Server is the admin introspection HTTP server: GET /sessions lists
// active connection IDs, GET /catalog reports the served catalog
// version, and POST /execute runs a command line out-of-band (for
// operator tooling that drives the service without opening a frame
// connection).
type Server struct {
	Connections *session.Registry
	Catalog     *catalog.Document
	Handlers    *handler.Registry
	Logger      *log.Logger
	Metrics     *observability.Metrics

	mux *http.ServeMux
}

// NewServer builds a Server wired to the given service state.
func NewServer(connections *session.Registry, doc *catalog.Document, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{Connections: connections, Catalog: doc, Logger: logger, mux: http.NewServeMux()}
	s.mux.HandleFunc("/sessions", s.handleSessions)
	s.mux.HandleFunc("/catalog", s.handleCatalog)
	s.mux.HandleFunc("/execute", s.handleExecute)
	return s
}

// Handler returns the server's http.Handler, wrapped with logging and
// panic recovery middleware.
func (s *Server) Handler() http.Handler {
	return Chain(s.mux, LoggingMiddleware(s.Logger), RecoveryMiddleware(s.Logger))
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"sessions": s.Connections.List(),
		"count":    s.Connections.Len(),
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"version":      s.Catalog.Version,
		"commandCount": len(s.Catalog.Commands),
	})
}

// handleExecute runs a command line against the configured handler
// registry and returns its result as JSON. The request body is
// decoded into a loosely-typed map rather than a fixed struct, since
// admin callers may post either {"line": "..."} or a nested
// {"command": {"line": "...", "timeoutMs": N}} shape; requestLine and
// requestTimeoutMs let both forms through the same path without a
// type assertion panic on a malformed body.
func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.Handlers == nil || s.Catalog == nil {
		http.Error(w, "execute not configured", http.StatusServiceUnavailable)
		return
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	line, ok := requestLine(body)
	if !ok {
		http.Error(w, `missing "line" (or "command.line")`, http.StatusBadRequest)
		return
	}
	timeoutMs := requestTimeoutMs(body)

	spanCtx, span := observability.Tracer().Start(r.Context(), "parser.Parse")
	inv, err := parser.Parse(s.Catalog.Commands, line)
	if err != nil {
		s.Metrics.RecordParseOutcome(parseOutcomeKind(err))
		span.RecordError(err)
		span.End()
		writeJSON(w, map[string]any{"error": err.Error()})
		return
	}
	s.Metrics.RecordParseOutcome("")
	span.End()

	ctx := spanCtx
	if timeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
		defer cancel()
	}

	result, err := s.Handlers.Dispatch(ctx, inv)
	if err != nil {
		writeJSON(w, map[string]any{"error": err.Error()})
		return
	}

	resp := map[string]any{"output": result.Output}
	if result.Screenshot != nil {
		resp["screenshotBytes"] = len(result.Screenshot)
	}
	if len(result.Files) > 0 {
		names := make([]string, len(result.Files))
		for i, f := range result.Files {
			names[i] = f.Name
		}
		resp["files"] = names
	}
	writeJSON(w, resp)
}

// requestLine pulls the command line to execute out of an execute
// request body, accepting either a flat {"line": "..."} shape or a
// nested {"command": {"line": "..."}} one.
func requestLine(body map[string]any) (string, bool) {
	if cmd, ok := body["command"].(map[string]any); ok {
		if line, ok := cmd["line"].(string); ok && line != "" {
			return line, true
		}
	}
	if line, ok := body["line"].(string); ok && line != "" {
		return line, true
	}
	return "", false
}

// requestTimeoutMs pulls an optional dispatch timeout out of an
// execute request body, accepting the same flat/nested shapes as
// requestLine. JSON numbers decode as float64, so both int and
// float64 are accepted here.
func requestTimeoutMs(body map[string]any) int {
	if cmd, ok := body["command"].(map[string]any); ok {
		if ms, ok := toInt(cmd["timeoutMs"]); ok {
			return ms
		}
	}
	if ms, ok := toInt(body["timeoutMs"]); ok {
		return ms
	}
	return 0
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}

// parseOutcomeKind extracts the parser.Error kind label for metrics,
// falling back to a generic label for errors outside the parser's own
// *Error type.
func parseOutcomeKind(err error) string {
	var perr *parser.Error
	if errors.As(err, &perr) {
		return string(perr.Kind)
	}
	return "parseError"
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
