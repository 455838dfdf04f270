package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"strings"

	"github.com/aretw0/algotrace"
	"github.com/aretw0/algotrace/pkg/analysis"
	"github.com/aretw0/algotrace/pkg/catalog"
	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/graph"
	"github.com/aretw0/algotrace/pkg/input"
	"github.com/aretw0/algotrace/pkg/linear"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds request bodies. A full linear history of 200 steps fits easily.
const maxBodyBytes = 1 << 20

// Engine defines the trace operations the HTTP server exposes.
// *algotrace.Engine satisfies it.
type Engine interface {
	Generate(ctx context.Context, alg domain.Algorithm, input []int) ([]domain.Step, error)
	BuildTree(ctx context.Context, values []int) (*domain.TreeNode, []domain.Step)
	InsertNode(ctx context.Context, root *domain.TreeNode, value int) (*domain.TreeNode, []domain.Step)
	SearchTree(ctx context.Context, root *domain.TreeNode, value int) (bool, []domain.Step)
	TraverseTree(ctx context.Context, root *domain.TreeNode, order domain.TraversalOrder) []domain.Step
	BFS(ctx context.Context, g *domain.GraphData, start string) ([]domain.Step, error)
	DFS(ctx context.Context, g *domain.GraphData, start string) ([]domain.Step, error)
	ShortestPath(ctx context.Context, g *domain.GraphData, start, end string) ([]string, []domain.Step, error)
}

var _ Engine = (*algotrace.Engine)(nil)

// Server serves traces over JSON.
type Server struct {
	Engine  Engine
	Catalog *catalog.Catalog
	Logger  *slog.Logger

	metrics http.Handler
	rng     func() *rand.Rand
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetricsHandler mounts h on GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithRand sets the source used for random inputs. Each request gets the
// *rand.Rand returned by fn.
func WithRand(fn func() *rand.Rand) Option {
	return func(s *Server) {
		s.rng = fn
	}
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine Engine, cat *catalog.Catalog, opts ...Option) http.Handler {
	s := &Server{
		Engine:  engine,
		Catalog: cat,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		rng: func() *rand.Rand {
			return rand.New(rand.NewSource(rand.Int63()))
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/algorithms", s.ListAlgorithms)
	r.Get("/algorithms/{name}", s.GetAlgorithm)
	r.Post("/steps", s.GenerateSteps)
	r.Post("/tree/{op}", s.TreeOperation)
	r.Post("/graph/{op}", s.GraphOperation)
	r.Post("/linear/{kind}/{op}", s.LinearOperation)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "algotrace-http",
		"version": strings.TrimSpace(algotrace.Version),
	})
}

// ListAlgorithms handles GET /algorithms.
func (s *Server) ListAlgorithms(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Catalog.All())
}

// GetAlgorithm handles GET /algorithms/{name}.
func (s *Server) GetAlgorithm(w http.ResponseWriter, r *http.Request) {
	info, err := s.Catalog.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, info)
}

// StepsRequest is the body of POST /steps. Random, when positive, replaces Input
// with that many random values.
type StepsRequest struct {
	Algorithm string `json:"algorithm"`
	Input     []int  `json:"input"`
	Random    int    `json:"random"`
}

// StepsResponse carries a trace and its summary.
type StepsResponse struct {
	Algorithm domain.Algorithm `json:"algorithm"`
	Input     []int            `json:"input"`
	Summary   analysis.Summary `json:"summary"`
	Steps     []domain.Step    `json:"steps"`
}

// GenerateSteps handles POST /steps.
func (s *Server) GenerateSteps(w http.ResponseWriter, r *http.Request) {
	var body StepsRequest
	if !s.decode(w, r, &body) {
		return
	}

	alg, err := domain.ParseAlgorithm(body.Algorithm)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	values := body.Input
	if body.Random > 0 {
		values = input.RandomArray(body.Random, s.rng())
	} else if err := input.ValidateArray(values); err != nil {
		s.writeError(w, r, err)
		return
	}

	steps, err := s.Engine.Generate(r.Context(), alg, values)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, StepsResponse{
		Algorithm: alg,
		Input:     values,
		Summary:   analysis.Summarize(alg, len(values), steps),
		Steps:     steps,
	})
}

// TreeRequest is the body of POST /tree/{op}. The tree is Tree when given,
// otherwise it is built from Values without recording steps.
type TreeRequest struct {
	Tree   *domain.TreeNode `json:"tree"`
	Values []int            `json:"values"`
	Value  int              `json:"value"`
	Order  string           `json:"order"`
}

// TreeResponse is the result of a tree operation. Tree is the root after the
// operation; Found is set by search only.
type TreeResponse struct {
	Tree  *domain.TreeNode `json:"tree"`
	Found *bool            `json:"found,omitempty"`
	Steps []domain.Step    `json:"steps"`
}

// TreeOperation handles POST /tree/{insert|search|traverse}.
func (s *Server) TreeOperation(w http.ResponseWriter, r *http.Request) {
	var body TreeRequest
	if !s.decode(w, r, &body) {
		return
	}

	ctx := r.Context()
	root := body.Tree
	if root == nil && len(body.Values) > 0 {
		root, _ = s.Engine.BuildTree(ctx, body.Values)
	}

	var resp TreeResponse
	switch op := chi.URLParam(r, "op"); op {
	case "insert":
		resp.Tree, resp.Steps = s.Engine.InsertNode(ctx, root, body.Value)
	case "search":
		found, steps := s.Engine.SearchTree(ctx, root, body.Value)
		resp = TreeResponse{Tree: root, Found: &found, Steps: steps}
	case "traverse":
		order := domain.Inorder
		if body.Order != "" {
			var err error
			if order, err = domain.ParseTraversalOrder(body.Order); err != nil {
				s.writeError(w, r, err)
				return
			}
		}
		resp = TreeResponse{Tree: root, Steps: s.Engine.TraverseTree(ctx, root, order)}
	default:
		s.writeError(w, r, fmt.Errorf("%w: unknown tree operation %q", errNotFound, op))
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// GraphRequest is the body of POST /graph/{op}. Graph defaults to the sample graph.
type GraphRequest struct {
	Graph *domain.GraphData `json:"graph"`
	Start string            `json:"start"`
	End   string            `json:"end"`
}

// GraphResponse is the result of a graph operation. Path is set by path only
// and is empty when the end is unreachable.
type GraphResponse struct {
	Path  []string      `json:"path,omitempty"`
	Steps []domain.Step `json:"steps"`
}

// GraphOperation handles POST /graph/{bfs|dfs|path}.
func (s *Server) GraphOperation(w http.ResponseWriter, r *http.Request) {
	var body GraphRequest
	if !s.decode(w, r, &body) {
		return
	}

	g := body.Graph
	if g == nil {
		g = graph.Sample()
	} else if err := graph.Validate(g); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}

	ctx := r.Context()
	var (
		resp GraphResponse
		err  error
	)
	switch op := chi.URLParam(r, "op"); op {
	case "bfs":
		resp.Steps, err = s.Engine.BFS(ctx, g, body.Start)
	case "dfs":
		resp.Steps, err = s.Engine.DFS(ctx, g, body.Start)
	case "path":
		resp.Path, resp.Steps, err = s.Engine.ShortestPath(ctx, g, body.Start, body.End)
	default:
		err = fmt.Errorf("%w: unknown graph operation %q", errNotFound, op)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// LinearRequest is the body of POST /linear/{kind}/{op}. An empty History
// starts from the empty structure.
type LinearRequest struct {
	History  []domain.Step `json:"history"`
	Cursor   int           `json:"cursor"`
	Value    int           `json:"value"`
	Capacity int           `json:"capacity"`
}

// LinearResponse is the new history with the cursor on its last step.
type LinearResponse struct {
	Steps  []domain.Step `json:"steps"`
	Cursor int           `json:"cursor"`
}

// LinearOperation handles POST /linear/{stack|queue}/{push|pop}.
func (s *Server) LinearOperation(w http.ResponseWriter, r *http.Request) {
	kind, err := linear.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %v", errNotFound, err))
		return
	}
	op, err := linear.ParseOp(chi.URLParam(r, "op"))
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %v", errNotFound, err))
		return
	}

	var body LinearRequest
	if !s.decode(w, r, &body) {
		return
	}
	if len(body.History) == 0 {
		body.History = []domain.Step{linear.EmptyStep(kind)}
		body.Cursor = 0
	}
	if body.Capacity <= 0 {
		body.Capacity = linear.DefaultCapacity
	}

	steps, err := linear.Apply(kind, op, body.History, body.Cursor, body.Value, body.Capacity)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, LinearResponse{Steps: steps, Cursor: len(steps) - 1})
}

// -- Helpers --

var errNotFound = errors.New("not found")

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUnknownOrder),
		errors.Is(err, domain.ErrStepOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownAlgorithm),
		errors.Is(err, domain.ErrNodeNotFound),
		errors.Is(err, errNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrEmptyStructure):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		s.writeError(w, r, fmt.Errorf("%w: invalid request body: %v", domain.ErrInvalidInput, err))
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	} else {
		s.Logger.Warn("request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "err", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}
