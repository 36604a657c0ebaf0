package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/numeral"
	"github.com/aretw0/numeral/pkg/domain"
	pkgnumeral "github.com/aretw0/numeral/pkg/numeral"
	"github.com/aretw0/numeral/pkg/ports"
	"github.com/aretw0/numeral/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// RulesURI is the resource describing the accepted expression syntax.
const RulesURI = "numeral://rules"

// EvaluateArgs are the arguments of the "evaluate" tool.
type EvaluateArgs struct {
	Expression string `mapstructure:"expression"`
}

// EvaluateResponse aligns with the HTTP adapter's response shape.
type EvaluateResponse struct {
	Expression string        `json:"expression" jsonschema_description:"The evaluated expression"`
	Result     string        `json:"result" jsonschema_description:"The result in the input's numeral system"`
	System     domain.System `json:"system" jsonschema_description:"Numeral system: arabic or roman"`
	Value      int64         `json:"value" jsonschema_description:"The result as a decimal integer"`
}

// ConvertArgs are the arguments of the "convert" tool.
type ConvertArgs struct {
	Numeral string `mapstructure:"numeral"`
}

// ConvertResponse is the result of the "convert" tool.
type ConvertResponse struct {
	Input  string        `json:"input" jsonschema_description:"The numeral as received"`
	Output string        `json:"output" jsonschema_description:"The numeral in the other system"`
	System domain.System `json:"system" jsonschema_description:"Numeral system of the output"`
}

// Server wraps an Evaluator and exposes it as an MCP Server.
type Server struct {
	evaluator ports.Evaluator
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// NewServer creates a new MCP Server instance.
func NewServer(evaluator ports.Evaluator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		evaluator: evaluator,
		logger:    logger,
		mcpServer: server.NewMCPServer("numeral-mcp", strings.TrimSpace(numeral.Version),
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
		),
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
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

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
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: evaluate
	evaluateTool := mcp.NewTool("evaluate",
		mcp.WithDescription("Evaluate a two-operand expression written in Arabic digits (12 * 3) or Roman numerals (XII * III). The answer uses the same numeral system."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Expression such as '1 + 2' or 'VI / III'")),
		mcp.WithOutputSchema[EvaluateResponse](),
	)
	s.mcpServer.AddTool(evaluateTool, mcp.NewStructuredToolHandler(s.handleEvaluate))

	// TOOL: convert
	convertTool := mcp.NewTool("convert",
		mcp.WithDescription("Convert a single numeral between Roman and Arabic."),
		mcp.WithString("numeral", mcp.Required(), mcp.Description("A Roman numeral (XIV) or a positive integer (14)")),
		mcp.WithOutputSchema[ConvertResponse](),
	)
	s.mcpServer.AddTool(convertTool, mcp.NewStructuredToolHandler(s.handleConvert))
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(RulesURI, "Expression rules",
		mcp.WithResourceDescription("Accepted expression syntax: operands, operators and numeral systems"),
		mcp.WithMIMEType("text/markdown"),
	), s.handleRules)
}

func (s *Server) handleRules(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      RulesURI,
			MIMEType: "text/markdown",
			Text:     runner.DefaultHelp,
		},
	}, nil
}

// Handler methods for structured tools

func (s *Server) handleEvaluate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (EvaluateResponse, error) {
	var in EvaluateArgs
	if err := mapstructure.Decode(args, &in); err != nil {
		return EvaluateResponse{}, fmt.Errorf("invalid arguments: %w", err)
	}

	clean, err := runner.SanitizeInput(in.Expression)
	if err != nil {
		s.logger.Warn("MCP Evaluate: Input rejected", "error", err, "size", len(in.Expression))
		return EvaluateResponse{}, fmt.Errorf("input rejected: %w", err)
	}

	res, err := s.evaluator.Evaluate(ctx, clean)
	if err != nil {
		if !isUserError(err) {
			s.logger.Error("MCP Evaluate failed", "input", clean, "error", err)
		}
		return EvaluateResponse{}, err
	}

	return EvaluateResponse{
		Expression: res.Input,
		Result:     res.Output,
		System:     res.System,
		Value:      res.Value,
	}, nil
}

func (s *Server) handleConvert(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ConvertResponse, error) {
	var in ConvertArgs
	if err := mapstructure.Decode(args, &in); err != nil {
		return ConvertResponse{}, fmt.Errorf("invalid arguments: %w", err)
	}

	out, system, err := pkgnumeral.Convert(in.Numeral)
	if err != nil {
		return ConvertResponse{}, err
	}
	return ConvertResponse{Input: in.Numeral, Output: out, System: system}, nil
}

func isUserError(err error) bool {
	return errors.Is(err, domain.ErrInvalidExpression) ||
		errors.Is(err, domain.ErrDivisionByZero) ||
		errors.Is(err, domain.ErrNotRepresentable)
}
