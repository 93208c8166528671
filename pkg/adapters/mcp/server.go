package mcp

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/hpgl2dxf"
	"github.com/aretw0/hpgl2dxf/pkg/domain"
	"github.com/aretw0/hpgl2dxf/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// InspectResponse is the structured result of inspect_hpgl.
type InspectResponse struct {
	Segments []domain.LineSegment `json:"segments" jsonschema_description:"Lines drawn, in input order"`
	Errors   []string             `json:"errors" jsonschema_description:"Commands skipped because they could not be processed"`
	Final    domain.PenState      `json:"final" jsonschema_description:"Pen position and status after the last command"`
	Tokens   int                  `json:"tokens" jsonschema_description:"Non-empty tokens read"`
	Ignored  int                  `json:"ignored" jsonschema_description:"Tokens that are not PA, PR, PD or PU"`
}

// Server exposes a converter as MCP tools.
type Server struct {
	conv      ports.Converter
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(conv ports.Converter) *Server {
	s := &Server{
		conv:      conv,
		mcpServer: server.NewMCPServer("hpgl2dxf-mcp", strings.TrimSpace(hpgl2dxf.Version)),
	}
	s.registerTools()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when ctx is done.
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

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
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
	convertTool := mcp.NewTool("convert_hpgl",
		mcp.WithDescription("Convert an HPGL program to a DXF document made of LINE entities. Only PA, PR, PD and PU are interpreted."),
		mcp.WithString("hpgl", mcp.Required(), mcp.Description("HPGL source, commands separated by ';' or newlines")),
	)
	s.mcpServer.AddTool(convertTool, s.handleConvert)

	inspectTool := mcp.NewTool("inspect_hpgl",
		mcp.WithDescription("Run an HPGL program through the pen state machine and report the lines it draws, skipped commands and the final pen state."),
		mcp.WithString("hpgl", mcp.Required(), mcp.Description("HPGL source")),
		mcp.WithOutputSchema[InspectResponse](),
	)
	s.mcpServer.AddTool(inspectTool, mcp.NewStructuredToolHandler(s.handleInspect))
}

func (s *Server) handleConvert(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("hpgl")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var buf bytes.Buffer
	report, err := s.conv.Convert(ctx, []byte(input), &buf)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("conversion failed", err), nil
	}
	if len(report.Errors) > 0 {
		slog.Debug("convert_hpgl skipped commands", "count", len(report.Errors))
	}

	return mcp.NewToolResultText(buf.String()), nil
}

func (s *Server) handleInspect(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (InspectResponse, error) {
	input, _ := args["hpgl"].(string)
	if input == "" {
		input = request.GetString("hpgl", "")
	}

	segs, report, err := s.conv.Segments(ctx, []byte(input))
	if err != nil {
		return InspectResponse{}, fmt.Errorf("inspection failed: %w", err)
	}
	if segs == nil {
		segs = []domain.LineSegment{}
	}

	return InspectResponse{
		Segments: segs,
		Errors:   report.ErrorMessages(),
		Final:    report.Final,
		Tokens:   report.Tokens,
		Ignored:  report.Ignored,
	}, nil
}
