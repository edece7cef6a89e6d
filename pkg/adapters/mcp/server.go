// Package mcp exposes the solver as a Model Context Protocol server, so
// agents can validate positions, ask for the next forced move, and run full
// deductions with human-readable explanations.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/solstice"
	"github.com/aretw0/solstice/internal/logging"
	"github.com/aretw0/solstice/pkg/domain"
	"github.com/aretw0/solstice/pkg/ports"
)

// positionArgs is the wire form of a puzzle position: rows as a JSON array
// string and constraints as JSON arrays of [row1,col1,row2,col2] quads.
// String-encoded JSON keeps the tool schema flat, the way agents handle best.
type positionArgs struct {
	Grid      string `mapstructure:"grid"`
	Equals    string `mapstructure:"equals"`
	NotEquals string `mapstructure:"notEquals"`
}

// StepInfo is the agent-facing view of one forced move: 1-indexed coordinates
// and the explanation sentence, without grid snapshots.
type StepInfo struct {
	Rule        string `json:"rule" jsonschema_description:"Name of the rule that fired"`
	Explanation string `json:"explanation" jsonschema_description:"Human-readable justification for the move"`
	Row         int    `json:"row" jsonschema_description:"1-indexed row of the filled cell"`
	Col         int    `json:"col" jsonschema_description:"1-indexed column of the filled cell"`
	Value       string `json:"value" jsonschema_description:"Symbol placed: sun or moon"`
}

// ValidateResponse reports start-position legality with every violation.
type ValidateResponse struct {
	Legal      bool     `json:"legal" jsonschema_description:"True when the position passes the full legality check"`
	Violations []string `json:"violations,omitempty" jsonschema_description:"One sentence per violation"`
}

// StepResponse carries the next forced move, or found=false when no rule applies.
type StepResponse struct {
	Found bool      `json:"found" jsonschema_description:"True when a rule produced a forced move"`
	Step  *StepInfo `json:"step,omitempty" jsonschema_description:"The forced move, when found"`
}

// SolveResponse is the outcome of running deductions to a fixpoint.
type SolveResponse struct {
	Solved bool       `json:"solved" jsonschema_description:"True when the grid was completely filled"`
	Steps  []StepInfo `json:"steps" jsonschema_description:"Every forced move in order"`
	Rows   []string   `json:"rows" jsonschema_description:"Final grid, one string per row"`
}

// Server wraps the solver and exposes it as an MCP Server.
type Server struct {
	solver    ports.Solver
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. A nil logger discards output.
func NewServer(solver ports.Solver, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		solver:    solver,
		logger:    logger,
		mcpServer: server.NewMCPServer("solstice-mcp", strings.TrimSpace(solstice.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		// Create a timeout context for the graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: validate_puzzle
	validateTool := mcp.NewTool("validate_puzzle",
		mcp.WithDescription("Check whether a starting position is legal. Reports every violation with coordinates."),
		mcp.WithString("grid", mcp.Required(), mcp.Description(`JSON array of row strings, e.g. ["S.M.","....",...]. S=sun, M=moon, .=empty`)),
		mcp.WithString("equals", mcp.Description("JSON array of [row1,col1,row2,col2] quads whose cells must match (0-indexed, optional)")),
		mcp.WithString("notEquals", mcp.Description("JSON array of [row1,col1,row2,col2] quads whose cells must differ (0-indexed, optional)")),
		mcp.WithOutputSchema[ValidateResponse](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	// TOOL: next_step
	stepTool := mcp.NewTool("next_step",
		mcp.WithDescription("Find the next forced move and explain why it is forced. found=false means no rule applies."),
		mcp.WithString("grid", mcp.Required(), mcp.Description("JSON array of row strings")),
		mcp.WithString("equals", mcp.Description("JSON array of [row1,col1,row2,col2] quads (optional)")),
		mcp.WithString("notEquals", mcp.Description("JSON array of [row1,col1,row2,col2] quads (optional)")),
		mcp.WithOutputSchema[StepResponse](),
	)
	s.mcpServer.AddTool(stepTool, mcp.NewStructuredToolHandler(s.handleNextStep))

	// TOOL: solve_puzzle
	solveTool := mcp.NewTool("solve_puzzle",
		mcp.WithDescription("Run deductions to a fixpoint. Returns every step in order with explanations; solved=false means the rules ran out before the grid was full."),
		mcp.WithString("grid", mcp.Required(), mcp.Description("JSON array of row strings")),
		mcp.WithString("equals", mcp.Description("JSON array of [row1,col1,row2,col2] quads (optional)")),
		mcp.WithString("notEquals", mcp.Description("JSON array of [row1,col1,row2,col2] quads (optional)")),
		mcp.WithOutputSchema[SolveResponse](),
	)
	s.mcpServer.AddTool(solveTool, mcp.NewStructuredToolHandler(s.handleSolve))
}

// Handler methods for structured tools

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ValidateResponse, error) {
	grid, cs, err := decodePosition(args)
	if err != nil {
		return ValidateResponse{}, err
	}

	report, err := s.solver.ValidateStart(grid, cs)
	if err != nil {
		return ValidateResponse{}, fmt.Errorf("validate failed: %w", err)
	}
	return ValidateResponse{Legal: report.Legal, Violations: report.Violations}, nil
}

func (s *Server) handleNextStep(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (StepResponse, error) {
	grid, cs, err := decodePosition(args)
	if err != nil {
		return StepResponse{}, err
	}

	step, ok, err := s.solver.NextStep(grid, cs)
	if err != nil {
		return StepResponse{}, fmt.Errorf("step failed: %w", err)
	}
	resp := StepResponse{Found: ok}
	if ok {
		info := stepInfo(step)
		resp.Step = &info
	}
	return resp, nil
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SolveResponse, error) {
	grid, cs, err := decodePosition(args)
	if err != nil {
		return SolveResponse{}, err
	}

	solution, err := s.solver.Solve(grid, cs)
	if err != nil {
		return SolveResponse{}, fmt.Errorf("solve failed: %w", err)
	}

	steps := make([]StepInfo, len(solution.Steps))
	for i, step := range solution.Steps {
		steps[i] = stepInfo(step)
	}
	return SolveResponse{
		Solved: solution.Solved,
		Steps:  steps,
		Rows:   solution.Grid.Rows(),
	}, nil
}

// decodePosition converts flat tool arguments into domain objects.
func decodePosition(args map[string]interface{}) (domain.Grid, domain.ConstraintSet, error) {
	var in positionArgs
	if err := mapstructure.Decode(args, &in); err != nil {
		return domain.Grid{}, domain.ConstraintSet{}, fmt.Errorf("invalid arguments: %w", err)
	}

	var rows []string
	if err := json.Unmarshal([]byte(in.Grid), &rows); err != nil {
		return domain.Grid{}, domain.ConstraintSet{}, fmt.Errorf("grid must be a JSON array of row strings: %w", err)
	}
	grid, err := domain.ParseGrid(rows)
	if err != nil {
		return domain.Grid{}, domain.ConstraintSet{}, err
	}

	cs := domain.ConstraintSet{}
	if cs.Equals, err = decodeQuads("equals", in.Equals); err != nil {
		return domain.Grid{}, domain.ConstraintSet{}, err
	}
	if cs.NotEquals, err = decodeQuads("notEquals", in.NotEquals); err != nil {
		return domain.Grid{}, domain.ConstraintSet{}, err
	}
	return grid, cs, nil
}

func decodeQuads(name, raw string) ([]domain.Pair, error) {
	if raw == "" {
		return nil, nil
	}
	var quads [][]int
	if err := json.Unmarshal([]byte(raw), &quads); err != nil {
		return nil, fmt.Errorf("%s must be a JSON array of [row1,col1,row2,col2] quads: %w", name, err)
	}
	pairs := make([]domain.Pair, len(quads))
	for i, q := range quads {
		if len(q) != 4 {
			return nil, fmt.Errorf("%s quad %d has %d values, want 4", name, i+1, len(q))
		}
		pairs[i] = domain.Pair{Row1: q[0], Col1: q[1], Row2: q[2], Col2: q[3]}
	}
	return pairs, nil
}

func stepInfo(step domain.Step) StepInfo {
	return StepInfo{
		Rule:        step.Rule,
		Explanation: step.Explanation,
		Row:         step.Target.Row + 1,
		Col:         step.Target.Col + 1,
		Value:       strings.ToLower(step.Value.String()),
	}
}

func (s *Server) registerResources() {
	// EXPOSE: solstice://rules
	s.mcpServer.AddResource(mcp.NewResource("solstice://rules", "Deduction Rule Reference",
		mcp.WithMIMEType("text/markdown"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "solstice://rules",
				MIMEType: "text/markdown",
				Text:     rulesMarkdown,
			},
		}, nil
	})
}

// rulesMarkdown documents the rules in dispatch order: the solver always
// reports the first rule in this list that produces a forced move.
const rulesMarkdown = `# Solstice Deduction Rules

Every line (row and column) must hold exactly as many suns as moons, with no
three equal symbols adjacent. Equals pairs must match; not-equals pairs must
differ. The rules below run in priority order and fill exactly one cell each.

1. **No-Three Rule**: two adjacent equal symbols force the opposite symbol
   into an open neighbor, blocking a run of three.
2. **Parity Rule**: a line that already holds its quota of one symbol forces
   the other symbol into every empty cell.
3. **Constraint Propagation Rule**: a pair with exactly one filled endpoint
   forces the other: copied for equals, flipped for not-equals.
4. **Edge Case Rule**: a line whose two end cells hold the same symbol forces
   the opposite symbol beside an end.
5. **Gap Rule**: two equal symbols separated by one empty cell force the
   opposite symbol between them.
6. **Two-Equals-At-End Rule**: a line starting with two equal symbols forces
   the opposite symbol into the open cell at the far end.
7. **Second-To-Last-Equals-First Rule**: when a line's first cell matches its
   second-to-last, the open last cell takes the opposite symbol.
8. **Modifier Balance Rule**: a line one short of its cap for a symbol,
   resolved through a not-equals pair, forces the open cells it cannot reach.
9. **End-With-Equals-Constraint Rule**: a filled line end with an equals pair
   on the two open far cells forces the nearer endpoint to the opposite symbol.
10. **Adjacent-Equals-Constraint Rule**: a filled cell beside an open equals
    pair in the same line forces the adjacent endpoint to the opposite symbol.
`
