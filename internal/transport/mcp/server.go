// Package mcp exposes the recommendation service as MCP tools over stdio.
package mcp

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	collectionuc "github.com/0Anshu1/collabup-be/internal/usecase/collection"
	recommenduc "github.com/0Anshu1/collabup-be/internal/usecase/recommend"
	"github.com/0Anshu1/collabup-be/internal/version"
)

// ServerName is the MCP server name.
const ServerName = "collabup"

// Server wraps the MCP server with application dependencies.
type Server struct {
	mcp         *server.MCPServer
	recommend   *recommenduc.Service
	collections *collectionuc.Service
	logger      *zap.Logger
}

// NewServer creates an MCP server with all tools registered.
func NewServer(recommend *recommenduc.Service, collections *collectionuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		mcp:         server.NewMCPServer(ServerName, version.Version, server.WithToolCapabilities(false)),
		recommend:   recommend,
		collections: collections,
		logger:      logger,
	}

	s.mcp.AddTool(recommendTool(), s.handleRecommend)
	s.mcp.AddTool(debugQueryTool(), s.handleDebugQuery)
	s.mcp.AddTool(collectionsInfoTool(), s.handleCollectionsInfo)

	return s
}

// Serve runs the server on stdio and blocks until stdin closes or ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(zap.NewStdLog(s.logger))
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}
