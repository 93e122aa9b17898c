// Package mcp exposes the ask pipeline as a stdio MCP tool.
package mcp

import (
	"context"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sandevgo/memberqa/internal/core"
	"github.com/sandevgo/memberqa/pkg/log"
)

const toolAskMember = "ask_member"

type Asker interface {
	Ask(ctx context.Context, question string) (core.Result, error)
}

type Server struct {
	asker Asker
	mcp   *server.MCPServer
}

func NewServer(asker Asker) *Server {
	s := &Server{asker: asker}
	s.mcp = server.NewMCPServer(
		core.AppName,
		core.AppVersion,
		server.WithToolCapabilities(false),
	)

	tool := mcp.NewTool(toolAskMember,
		mcp.WithDescription("Answer a question about one member using only that member's own messages. Name the member in the question."),
		mcp.WithString("question",
			mcp.Required(),
			mcp.Description("Question mentioning the member, e.g. \"When is Layla Kawaguchi's trip?\""),
		),
	)
	s.mcp.AddTool(tool, s.handleAsk)
	return s
}

// Serve speaks MCP over in/out until ctx is cancelled or in is closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	log.FromCtx(ctx).Info().Str("tool", toolAskMember).Msg("mcp server listening on stdio")
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}

func (s *Server) handleAsk(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := s.asker.Ask(ctx, question)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("ask failed")
		return mcp.NewToolResultError("failed to load messages"), nil
	}
	return mcp.NewToolResultText(res.Answer), nil
}
