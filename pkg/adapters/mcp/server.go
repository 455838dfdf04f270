package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/aretw0/algotrace"
	"github.com/aretw0/algotrace/pkg/analysis"
	"github.com/aretw0/algotrace/pkg/catalog"
	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/graph"
	"github.com/aretw0/algotrace/pkg/input"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// CatalogURI is the resource exposing the algorithm catalog.
const CatalogURI = "algotrace://catalog"

// Engine defines the trace operations exposed as tools.
type Engine interface {
	Generate(ctx context.Context, alg domain.Algorithm, input []int) ([]domain.Step, error)
	BFS(ctx context.Context, g *domain.GraphData, start string) ([]domain.Step, error)
	DFS(ctx context.Context, g *domain.GraphData, start string) ([]domain.Step, error)
	ShortestPath(ctx context.Context, g *domain.GraphData, start, end string) ([]string, []domain.Step, error)
}

// GenerateArgs are the arguments of generate_steps.
type GenerateArgs struct {
	Algorithm string `json:"algorithm"`
	Input     []int  `json:"input"`
	Random    int    `json:"random"`
}

// StepsResult is the output of generate_steps.
type StepsResult struct {
	Algorithm string           `json:"algorithm" jsonschema_description:"Display name of the traced algorithm"`
	Input     []int            `json:"input" jsonschema_description:"The traced input"`
	Summary   analysis.Summary `json:"summary" jsonschema_description:"Step count, final counters and efficiency"`
	Steps     []domain.Step    `json:"steps" jsonschema_description:"Ordered snapshots, one per frame"`
}

// CatalogResult is the output of list_algorithms.
type CatalogResult struct {
	Algorithms []catalog.Info `json:"algorithms"`
}

// GraphArgs are the arguments of graph_traverse.
type GraphArgs struct {
	Mode  string `json:"mode"`
	Graph string `json:"graph"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// GraphResult is the output of graph_traverse.
type GraphResult struct {
	Path  []string      `json:"path,omitempty" jsonschema_description:"Shortest path, only for mode=path"`
	Steps []domain.Step `json:"steps"`
}

// Server exposes the engine as an MCP server.
type Server struct {
	engine    Engine
	catalog   *catalog.Catalog
	logger    *slog.Logger
	rng       *rand.Rand
	mcpServer *server.MCPServer
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRand sets the source of random inputs.
func WithRand(rng *rand.Rand) Option {
	return func(s *Server) {
		s.rng = rng
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, cat *catalog.Catalog, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		catalog:   cat,
		logger:    slog.Default(),
		rng:       rand.New(rand.NewSource(rand.Int63())),
		mcpServer: server.NewMCPServer("algotrace-mcp", strings.TrimSpace(algotrace.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	slugs := make([]string, 0, len(domain.Algorithms))
	for _, a := range domain.Algorithms {
		slugs = append(slugs, a.Slug())
	}

	// TOOL: generate_steps
	generateTool := mcp.NewTool("generate_steps",
		mcp.WithDescription("Run a sorting algorithm or a stack/queue simulation and return every step of the trace."),
		mcp.WithString("algorithm", mcp.Required(), mcp.Enum(slugs...), mcp.Description("Algorithm to trace")),
		mcp.WithArray("input", mcp.Items(map[string]any{"type": "integer"}),
			mcp.Description(fmt.Sprintf("Values to trace, %d to %d integers", input.MinLength, input.MaxLength))),
		mcp.WithNumber("random", mcp.Description("Ignore input and trace this many random values")),
		mcp.WithOutputSchema[StepsResult](),
	)
	s.mcpServer.AddTool(generateTool, mcp.NewStructuredToolHandler(s.handleGenerateSteps))

	// TOOL: list_algorithms
	listTool := mcp.NewTool("list_algorithms",
		mcp.WithDescription("List every algorithm and data structure with complexities and properties."),
		mcp.WithOutputSchema[CatalogResult](),
	)
	s.mcpServer.AddTool(listTool, mcp.NewStructuredToolHandler(s.handleListAlgorithms))

	// TOOL: graph_traverse
	graphTool := mcp.NewTool("graph_traverse",
		mcp.WithDescription("Traverse a graph breadth-first, depth-first, or find the unweighted shortest path."),
		mcp.WithString("mode", mcp.Required(), mcp.Enum("bfs", "dfs", "path"), mcp.Description("Traversal mode")),
		mcp.WithString("start", mcp.Required(), mcp.Description("Start node ID")),
		mcp.WithString("end", mcp.Description("End node ID, required for mode=path")),
		mcp.WithString("graph", mcp.Description("Graph as JSON or YAML {nodes, edges, isDirected}; defaults to the six-node sample")),
		mcp.WithOutputSchema[GraphResult](),
	)
	s.mcpServer.AddTool(graphTool, mcp.NewStructuredToolHandler(s.handleGraphTraverse))
}

func (s *Server) handleGenerateSteps(ctx context.Context, request mcp.CallToolRequest, args GenerateArgs) (StepsResult, error) {
	alg, err := domain.ParseAlgorithm(args.Algorithm)
	if err != nil {
		return StepsResult{}, err
	}

	values := args.Input
	if args.Random > 0 {
		values = input.RandomArray(args.Random, s.rng)
	} else if err := input.ValidateArray(values); err != nil {
		return StepsResult{}, err
	}

	steps, err := s.engine.Generate(ctx, alg, values)
	if err != nil {
		s.logger.Warn("MCP generate_steps failed", "algorithm", alg, "err", err)
		return StepsResult{}, err
	}
	return StepsResult{
		Algorithm: alg.String(),
		Input:     values,
		Summary:   analysis.Summarize(alg, len(values), steps),
		Steps:     steps,
	}, nil
}

func (s *Server) handleListAlgorithms(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (CatalogResult, error) {
	return CatalogResult{Algorithms: s.catalog.All()}, nil
}

func (s *Server) handleGraphTraverse(ctx context.Context, request mcp.CallToolRequest, args GraphArgs) (GraphResult, error) {
	g := graph.Sample()
	if strings.TrimSpace(args.Graph) != "" {
		decoded, err := input.DecodeGraph(strings.NewReader(args.Graph), input.FormatYAML)
		if err != nil {
			return GraphResult{}, err
		}
		g = decoded
	}

	var (
		res GraphResult
		err error
	)
	switch args.Mode {
	case "bfs":
		res.Steps, err = s.engine.BFS(ctx, g, args.Start)
	case "dfs":
		res.Steps, err = s.engine.DFS(ctx, g, args.Start)
	case "path":
		res.Path, res.Steps, err = s.engine.ShortestPath(ctx, g, args.Start, args.End)
	default:
		err = fmt.Errorf("%w: unknown mode %q", domain.ErrInvalidInput, args.Mode)
	}
	if err != nil {
		s.logger.Warn("MCP graph_traverse failed", "mode", args.Mode, "err", err)
		return GraphResult{}, err
	}
	return res, nil
}

func (s *Server) registerResources() {
	// EXPOSE: algotrace://catalog
	s.mcpServer.AddResource(mcp.NewResource(CatalogURI, "Algorithm Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.catalog.All())
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      CatalogURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
