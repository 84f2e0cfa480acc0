package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/0Anshu1/collabup-be/internal/domain"
	"github.com/0Anshu1/collabup-be/internal/logger"
	"github.com/0Anshu1/collabup-be/internal/transport/response"
)

func recommendTool() mcp.Tool {
	return mcp.NewTool("recommend",
		mcp.WithDescription("Rank student projects, startup projects, mentors and research projects against a free-text query"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-text search, e.g. \"machine learning bangalore\""),
		),
		mcp.WithNumber("top_n",
			mcp.Description("Maximum results per record type (default 5)"),
		),
	)
}

func debugQueryTool() mcp.Tool {
	return mcp.NewTool("debug_query",
		mcp.WithDescription("Show how a query is categorized and how one sample record per collection scores"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-text search to explain"),
		),
	)
}

func collectionsInfoTool() mcp.Tool {
	return mcp.NewTool("collections_info",
		mcp.WithDescription("List the store collections with record counts and descriptions"),
	)
}

func (s *Server) handleRecommend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	topN := request.GetInt("top_n", 0)

	ctx = s.withLogger(ctx, "recommend")
	res, err := s.recommend.Recommend(ctx, query, topN)
	if err != nil {
		return s.toolError("recommend", err), nil
	}
	return jsonResult(response.Recommendation(&res))
}

func (s *Server) handleDebugQuery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ctx = s.withLogger(ctx, "debug_query")
	report := s.recommend.Debug(ctx, query)
	return jsonResult(response.Debug(&report))
}

func (s *Server) handleCollectionsInfo(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx = s.withLogger(ctx, "collections_info")
	infos, err := s.collections.Info(ctx)
	if err != nil {
		return s.toolError("collections_info", err), nil
	}
	return jsonResult(response.Collections(infos))
}

func (s *Server) withLogger(ctx context.Context, tool string) context.Context {
	return logger.ContextWithLogger(ctx, s.logger.With(zap.String("tool", tool)))
}

// toolError reports a failed call to the client without internal details.
func (s *Server) toolError(tool string, err error) *mcp.CallToolResult {
	s.logger.Warn("tool failed", zap.String("tool", tool), zap.Error(err))
	switch {
	case errors.Is(err, domain.ErrStoreUnavailable):
		return mcp.NewToolResultError(domain.ErrStoreUnavailable.Error())
	case errors.Is(err, domain.ErrInvalidRequest):
		return mcp.NewToolResultError(domain.ErrInvalidRequest.Error())
	default:
		return mcp.NewToolResultError("internal error")
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
