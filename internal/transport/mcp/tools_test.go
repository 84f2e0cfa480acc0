package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/0Anshu1/collabup-be/internal/domain"
	domrec "github.com/0Anshu1/collabup-be/internal/domain/record"
	"github.com/0Anshu1/collabup-be/internal/transport/response"
	collectionuc "github.com/0Anshu1/collabup-be/internal/usecase/collection"
	recommenduc "github.com/0Anshu1/collabup-be/internal/usecase/recommend"
)

type fakeRepo struct {
	records map[string][]domrec.Record
	err     error
}

func (f *fakeRepo) Candidates(_ context.Context, t domrec.Type) ([]domrec.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	src, _ := domrec.SourceOf(t)
	return f.records[src.Collection], nil
}

func (f *fakeRepo) Sample(_ context.Context, collection string) (domrec.Record, bool, error) {
	if f.err != nil {
		return domrec.Record{}, false, f.err
	}
	recs := f.records[collection]
	if len(recs) == 0 {
		return domrec.Record{}, false, nil
	}
	return recs[0], true, nil
}

func (f *fakeRepo) Count(_ context.Context, collection string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.records[collection]), nil
}

func (f *fakeRepo) Put(_ context.Context, _ string, _ domrec.Record) error { return f.err }

func newTestServer(repo *fakeRepo) *Server {
	return NewServer(recommenduc.New(repo), collectionuc.New(repo), zap.NewNop())
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestHandleRecommend(t *testing.T) {
	s := newTestServer(&fakeRepo{records: map[string][]domrec.Record{
		domrec.CollectionResearchProjects: {
			domrec.New("r1", map[string]any{"title": "Quantum optics", "instituteName": "IISc"}),
		},
	}})

	res, err := s.handleRecommend(context.Background(), callRequest(map[string]any{"query": "quantum", "top_n": 2}))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	var out response.Recommend
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	require.Len(t, out.ResearchProjects, 1)
	assert.Equal(t, "r1", out.ResearchProjects[0]["id"])
	assert.Empty(t, out.StudentProjects)
}

func TestHandleRecommend_MissingQuery(t *testing.T) {
	s := newTestServer(&fakeRepo{})

	res, err := s.handleRecommend(context.Background(), callRequest(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleRecommend_StoreUnavailable(t *testing.T) {
	s := newTestServer(&fakeRepo{err: domain.ErrStoreUnavailable})

	res, err := s.handleRecommend(context.Background(), callRequest(map[string]any{"query": "react"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "store unavailable", resultText(t, res))
}

func TestHandleDebugQuery(t *testing.T) {
	s := newTestServer(&fakeRepo{records: map[string][]domrec.Record{
		domrec.CollectionStudentProjects: {domrec.New("sp1", map[string]any{"title": "React dashboard"})},
	}})

	res, err := s.handleDebugQuery(context.Background(), callRequest(map[string]any{"query": "react"}))
	require.NoError(t, err)

	var out response.DebugReport
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.Equal(t, "react", out.Query)
	assert.Greater(t, out.SampleScores["student_projects"], 0.0)
	assert.Contains(t, out.SampleData, domrec.CollectionStudentProjects)
}

func TestHandleCollectionsInfo(t *testing.T) {
	s := newTestServer(&fakeRepo{records: map[string][]domrec.Record{
		domrec.CollectionUsers: {domrec.New("u1", nil), domrec.New("u2", nil)},
	}})

	res, err := s.handleCollectionsInfo(context.Background(), callRequest(nil))
	require.NoError(t, err)

	var out map[string]response.CollectionInfo
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.Len(t, out, 4)
	assert.Equal(t, 2, out[domrec.CollectionUsers].Count)
}

func TestToolDefinitions(t *testing.T) {
	assert.Equal(t, []string{"query"}, recommendTool().InputSchema.Required)
	assert.Contains(t, recommendTool().InputSchema.Properties, "top_n")
	assert.Equal(t, []string{"query"}, debugQueryTool().InputSchema.Required)
	assert.Equal(t, "collections_info", collectionsInfoTool().Name)
}
