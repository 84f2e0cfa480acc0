package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/0Anshu1/collabup-be/internal/domain"
	domrec "github.com/0Anshu1/collabup-be/internal/domain/record"
	"github.com/0Anshu1/collabup-be/internal/transport/response"
	collectionuc "github.com/0Anshu1/collabup-be/internal/usecase/collection"
	healthuc "github.com/0Anshu1/collabup-be/internal/usecase/health"
	recommenduc "github.com/0Anshu1/collabup-be/internal/usecase/recommend"
)

// --- Mocks ---

// fakeRepo backs every use case with in-memory collections.
type fakeRepo struct {
	records map[string][]domrec.Record
	err     error
	pingErr error
}

func (f *fakeRepo) Candidates(_ context.Context, t domrec.Type) ([]domrec.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	src, _ := domrec.SourceOf(t)
	var out []domrec.Record
	for _, r := range f.records[src.Collection] {
		if src.Admits(&r) {
			out = append(out, r)
		}
	}
	return out, nil
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

func (f *fakeRepo) Ping(_ context.Context) error { return f.pingErr }

func (f *fakeRepo) Count(_ context.Context, collection string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.records[collection]), nil
}

func (f *fakeRepo) Put(_ context.Context, collection string, rec domrec.Record) error {
	f.records[collection] = append(f.records[collection], rec)
	return nil
}

func newTestRouter(t *testing.T, repo *fakeRepo) http.Handler {
	t.Helper()
	srv := NewServer(
		recommenduc.New(repo),
		healthuc.New(repo),
		collectionuc.New(repo),
		zap.NewNop(),
	)
	return NewRouter(srv, RouterConfig{}, zap.NewNop())
}

func seededRepo() *fakeRepo {
	return &fakeRepo{records: map[string][]domrec.Record{
		domrec.CollectionStudentProjects: {
			domrec.New("sp1", map[string]any{"title": "Machine Learning System", "domain": "AI"}),
		},
		domrec.CollectionStartupProjects: {
			domrec.New("st1", map[string]any{"location": "Bangalore", "description": "logistics app"}),
		},
		domrec.CollectionUsers: {
			domrec.New("u1", map[string]any{"role": "student", "name": "Machine Learner"}),
		},
	}}
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

// --- Tests ---

func TestRecommend_Success(t *testing.T) {
	h := newTestRouter(t, seededRepo())

	rr := do(t, h, http.MethodPost, "/recommend", `{"query":"machine learning bangalore","top_n":3}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}

	resp := decode[response.Recommend](t, rr)
	if len(resp.StudentProjects) != 1 {
		t.Fatalf("expected 1 student project, got %d", len(resp.StudentProjects))
	}
	sp := resp.StudentProjects[0]
	if sp["id"] != "sp1" || sp["title"] != "Machine Learning System" {
		t.Errorf("unexpected entry: %v", sp)
	}
	if s, ok := sp["similarity_score"].(float64); !ok || s <= 0.1 {
		t.Errorf("unexpected similarity_score: %v", sp["similarity_score"])
	}
	if len(resp.StartupProjects) != 1 || resp.StartupProjects[0]["id"] != "st1" {
		t.Errorf("unexpected startup projects: %v", resp.StartupProjects)
	}
	if resp.MentorProfiles == nil || len(resp.MentorProfiles) != 0 {
		t.Errorf("expected empty mentor list, got %v", resp.MentorProfiles)
	}
}

func TestRecommend_EmptyListsSerializeAsArrays(t *testing.T) {
	h := newTestRouter(t, seededRepo())

	rr := do(t, h, http.MethodPost, "/recommend", `{"query":"  "}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, key := range []string{"student_projects", "startup_projects", "mentor_profiles", "research_projects"} {
		if !strings.Contains(body, `"`+key+`":[]`) {
			t.Errorf("expected empty array for %s in %s", key, body)
		}
	}
}

func TestRecommend_BadRequests(t *testing.T) {
	h := newTestRouter(t, seededRepo())

	for name, body := range map[string]string{
		"invalid json":  `{"query":`,
		"missing query": `{"top_n":3}`,
		"wrong type":    `{"query":42}`,
	} {
		t.Run(name, func(t *testing.T) {
			rr := do(t, h, http.MethodPost, "/recommend", body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("got %d, want %d", rr.Code, http.StatusBadRequest)
			}
			if e := decode[ErrorResponse](t, rr); e.Code != CodeBadRequest {
				t.Errorf("unexpected code %q", e.Code)
			}
		})
	}
}

func TestRecommend_StoreUnavailable(t *testing.T) {
	repo := seededRepo()
	repo.err = errors.Join(domain.ErrStoreUnavailable, errors.New("dial tcp: refused"))
	h := newTestRouter(t, repo)

	rr := do(t, h, http.MethodPost, "/recommend", `{"query":"react"}`)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	e := decode[ErrorResponse](t, rr)
	if e.Code != CodeStoreUnavailable {
		t.Errorf("unexpected code %q", e.Code)
	}
	if strings.Contains(e.Message, "dial tcp") {
		t.Errorf("internal error leaked: %q", e.Message)
	}
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t, seededRepo())

	rr := do(t, h, http.MethodGet, "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusOK)
	}
	resp := decode[response.HealthReport](t, rr)
	if resp.Status != "healthy" || resp.StoreStatus != "connected" {
		t.Errorf("unexpected status: %+v", resp)
	}
	users := resp.Collections[domrec.CollectionUsers]
	if users.Status != "accessible" || users.SampleCount == nil || *users.SampleCount != 1 {
		t.Errorf("unexpected users entry: %+v", users)
	}
	research := resp.Collections[domrec.CollectionResearchProjects]
	if research.SampleCount == nil || *research.SampleCount != 0 {
		t.Errorf("unexpected research entry: %+v", research)
	}
	if resp.Timestamp == "" {
		t.Error("expected timestamp")
	}
}

func TestHealth_PingFails(t *testing.T) {
	repo := seededRepo()
	repo.pingErr = errors.New("conn refused")
	h := newTestRouter(t, repo)

	rr := do(t, h, http.MethodGet, "/health", "")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	if resp := decode[response.HealthReport](t, rr); resp.Status != "unhealthy" || resp.StoreStatus != "not connected" {
		t.Errorf("unexpected status: %+v", resp)
	}
}

func TestDebugQuery(t *testing.T) {
	h := newTestRouter(t, seededRepo())

	rr := do(t, h, http.MethodGet, "/debug-query?query=machine+learning", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	resp := decode[response.DebugReport](t, rr)
	if resp.Query != "machine learning" {
		t.Errorf("unexpected query %q", resp.Query)
	}
	if _, ok := resp.CategorizedTokens["general"]; !ok {
		t.Errorf("expected every category key, got %v", resp.CategorizedTokens)
	}
	if resp.SampleScores["student_projects"] <= 0 {
		t.Errorf("expected student score, got %v", resp.SampleScores)
	}
	if _, ok := resp.SampleScores["mentor_profiles"]; ok {
		t.Error("non-mentor user must not be scored")
	}
	if resp.SampleData[domrec.CollectionUsers]["id"] != "u1" {
		t.Errorf("unexpected users sample: %v", resp.SampleData[domrec.CollectionUsers])
	}
}

func TestDebugQuery_MissingQuery(t *testing.T) {
	h := newTestRouter(t, seededRepo())

	rr := do(t, h, http.MethodGet, "/debug-query", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestCollectionsInfo(t *testing.T) {
	h := newTestRouter(t, seededRepo())

	rr := do(t, h, http.MethodGet, "/collections-info", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusOK)
	}
	resp := decode[map[string]response.CollectionInfo](t, rr)
	if len(resp) != 4 {
		t.Fatalf("expected 4 collections, got %d", len(resp))
	}
	if resp[domrec.CollectionStudentProjects].Count != 1 {
		t.Errorf("unexpected count: %+v", resp[domrec.CollectionStudentProjects])
	}
	if resp[domrec.CollectionResearchProjects].Description == "" {
		t.Error("expected description")
	}
}

func TestCollectionsInfo_StoreUnavailable(t *testing.T) {
	repo := seededRepo()
	repo.err = domain.ErrStoreUnavailable
	h := newTestRouter(t, repo)

	rr := do(t, h, http.MethodGet, "/collections-info", "")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter(t, seededRepo())

	rr := do(t, h, http.MethodGet, "/metrics", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestCORS_AllowAll(t *testing.T) {
	h := newTestRouter(t, seededRepo())

	req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
	req.Header.Set("Origin", "https://app.example.com")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("got Access-Control-Allow-Origin %q, want *", got)
	}
}

func TestNotFound(t *testing.T) {
	h := newTestRouter(t, seededRepo())

	rr := do(t, h, http.MethodGet, "/nope", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestJSONRecoverer(t *testing.T) {
	h := jsonRecoverer(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if e := decode[ErrorResponse](t, rr); e.Code != CodeInternalError {
		t.Errorf("unexpected code %q", e.Code)
	}
}
