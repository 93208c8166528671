package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/hpgl2dxf"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestNewServer_RegistersTools(t *testing.T) {
	s := NewServer(hpgl2dxf.New())

	tools := s.MCPServer().ListTools()
	assert.Contains(t, tools, "convert_hpgl")
	assert.Contains(t, tools, "inspect_hpgl")
}

func TestHandleConvert(t *testing.T) {
	s := NewServer(hpgl2dxf.New())

	res, err := s.handleConvert(context.Background(), callRequest("convert_hpgl", map[string]any{
		"hpgl": "PD;PA3,4;",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t,
		"0\nSECTION\n0\nENTITIES\n0\nLINE\n10\n0.000\n20\n0.000\n11\n3.000\n21\n4.000\n0\nENDSEC\n",
		resultText(t, res))
}

func TestHandleConvert_MissingArgument(t *testing.T) {
	s := NewServer(hpgl2dxf.New())

	res, err := s.handleConvert(context.Background(), callRequest("convert_hpgl", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleConvert_Cancelled(t *testing.T) {
	s := NewServer(hpgl2dxf.New())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := s.handleConvert(ctx, callRequest("convert_hpgl", map[string]any{"hpgl": "PD;PA1,1;"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleInspect(t *testing.T) {
	s := NewServer(hpgl2dxf.New())
	args := map[string]any{"hpgl": "IN;PD;PR1,1;PR1,-1;PA;PU;"}

	resp, err := s.handleInspect(context.Background(), callRequest("inspect_hpgl", args), args)
	require.NoError(t, err)

	require.Len(t, resp.Segments, 2)
	assert.Equal(t, 2.0, resp.Segments[1].End.X)
	assert.Equal(t, 0.0, resp.Segments[1].End.Y)
	assert.Equal(t, []string{"cannot find coordinates in 'PA'"}, resp.Errors)
	assert.Equal(t, 6, resp.Tokens)
	assert.Equal(t, 1, resp.Ignored)
	assert.False(t, resp.Final.IsDown())
}

func TestHandleInspect_Empty(t *testing.T) {
	s := NewServer(hpgl2dxf.New())

	resp, err := s.handleInspect(context.Background(), callRequest("inspect_hpgl", nil), nil)
	require.NoError(t, err)
	assert.NotNil(t, resp.Segments)
	assert.Empty(t, resp.Segments)
	assert.Empty(t, resp.Errors)
}
