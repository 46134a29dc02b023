package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexaterminal/internal/cache"
	"nexaterminal/internal/config"
	"nexaterminal/internal/metrics"
	"nexaterminal/internal/model"
	"nexaterminal/internal/questionbank"
	"nexaterminal/internal/service"
)

type memoryStore struct {
	mu      sync.Mutex
	items   []*model.Assessment
	failErr error
}

func (m *memoryStore) Insert(_ context.Context, a *model.Assessment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.items = append(m.items, a)
	return nil
}

func (m *memoryStore) GetLatest(ctx context.Context, userID, topic string) (*model.Assessment, error) {
	list, err := m.ListByUser(ctx, userID, topic, 1)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

// ListByUser relies on insertion order matching creation order
func (m *memoryStore) ListByUser(_ context.Context, userID, topic string, limit int) ([]*model.Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*model.Assessment{}
	for i := len(m.items) - 1; i >= 0 && len(out) < limit; i-- {
		if a := m.items[i]; a.UserID == userID && a.Topic == topic {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryStore) EnsureIndexes(context.Context) error { return nil }

type noCache struct{}

func (noCache) Get(context.Context, string, string) (*model.Assessment, error) { return nil, nil }
func (noCache) Set(context.Context, *model.Assessment) error { return nil }

type memoryStats struct {
	mu     sync.Mutex
	counts map[string]int64
}

func (s *memoryStats) Record(_ context.Context, _ string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.counts[id]++
	}
	return nil
}

func (s *memoryStats) Top(_ context.Context, _ string, limit int) ([]cache.ViolationCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []cache.ViolationCount{}
	for id, n := range s.counts {
		out = append(out, cache.ViolationCount{QuestionID: id, Count: n})
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type testServer struct {
	handler http.Handler
	store   *memoryStore
	token   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	banks, err := questionbank.NewRegistry(questionbank.Builtin()...)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	store := &memoryStore{}
	svc := service.NewAssessmentService(banks, store, noCache{}, &memoryStats{counts: map[string]int64{}}, metrics.New(reg), logger)
	auth := service.NewAuthService("test-secret")

	token, err := auth.IssueUserToken("user-1", time.Hour)
	require.NoError(t, err)

	return &testServer{
		handler: NewRouter(&Container{
			AuthService:       auth,
			AssessmentService: svc,
			Metrics:           reg,
			CORS:              config.CORSConfig{AllowedOrigins: "https://nexa.mk"},
			Logger:            logger,
		}),
		store: store,
		token: token,
	}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Authorization", "Bearer "+s.token)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	s.do("POST", "/v1/health-check/payment/assessments", `{"answers":{"pay_payslip":"no"}}`)

	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "nexa_assessments_total")
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)

	tests := map[string]string{
		"missing": "",
		"garbage": "Bearer nope",
		"scheme":  "Basic " + s.token,
	}
	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/health-check/topics", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			s.handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/v1/health-check/payment/assessments", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://nexa.mk", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Type, Authorization", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestTopicsAndQuestions(t *testing.T) {
	s := newTestServer(t)

	rec := s.do("GET", "/v1/health-check/topics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var topics struct {
		Topics []model.TopicSummary `json:"topics"`
	}
	decode(t, rec, &topics)
	assert.Len(t, topics.Topics, 4)

	rec = s.do("GET", "/v1/health-check/payment/questions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "isCorrect")
	assert.NotContains(t, rec.Body.String(), "correctAnswer")
	var q model.Questionnaire
	decode(t, rec, &q)
	assert.Equal(t, "payment", q.Topic)

	rec = s.do("GET", "/v1/health-check/unknown/questions", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitAndLatest(t *testing.T) {
	s := newTestServer(t)

	rec := s.do("GET", "/v1/health-check/termination/assessments/latest", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do("POST", "/v1/health-check/termination/assessments", `{
		"companySize": "medium",
		"companyName": "Пример ДОО",
		"answers": {"term_written_notice": "yes", "term_severance": "partially", "term_documents": ["x"]}
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created model.Assessment
	decode(t, rec, &created)
	assert.Equal(t, "user-1", created.UserID)
	assert.Equal(t, model.CompanyMedium, created.CompanySize)
	assert.Equal(t, 8.0, created.Report.MaxScore)
	assert.Equal(t, 1.5, created.Report.Score)
	assert.Len(t, created.Report.Violations, 2)

	rec = s.do("GET", "/v1/health-check/termination/assessments/latest", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var latest model.Assessment
	decode(t, rec, &latest)
	assert.Equal(t, created.ID, latest.ID)

	rec = s.do("GET", "/v1/health-check/termination/assessments?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var history struct {
		Assessments []model.Assessment `json:"assessments"`
	}
	decode(t, rec, &history)
	assert.Len(t, history.Assessments, 1)

	rec = s.do("GET", "/v1/health-check/termination/violations/top", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var top struct {
		Violations []model.ViolationStat `json:"violations"`
	}
	decode(t, rec, &top)
	assert.Len(t, top.Violations, 2)
}

func TestSubmit_Errors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{name: "bad json", path: "/v1/health-check/payment/assessments", body: `{`, status: http.StatusBadRequest},
		{name: "bad answer type", path: "/v1/health-check/payment/assessments", body: `{"answers":{"pay_equal":1}}`, status: http.StatusBadRequest},
		{name: "bad size", path: "/v1/health-check/payment/assessments", body: `{"companySize":"giant"}`, status: http.StatusBadRequest},
		{name: "unknown topic", path: "/v1/health-check/nope/assessments", body: `{}`, status: http.StatusNotFound},
		{name: "bad limit", path: "/v1/health-check/payment/assessments?limit=x", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			method := "POST"
			if tt.body == "" {
				method = "GET"
			}

			rec := s.do(method, tt.path, tt.body)

			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestSubmit_StorageFailure(t *testing.T) {
	s := newTestServer(t)
	s.store.failErr = errors.New("connection refused")

	rec := s.do("POST", "/v1/health-check/payment/assessments", `{}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestTopViolations_AggregateAcrossUsers(t *testing.T) {
	s := newTestServer(t)

	rec := s.do("POST", "/v1/health-check/payment/assessments", `{"companyName":"Тајна ДОО","answers":{"pay_payslip":"no"}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	other, err := service.NewAuthService("test-secret").IssueUserToken("user-2", time.Hour)
	require.NoError(t, err)
	s.token = other

	rec = s.do("GET", "/v1/health-check/payment/violations/top", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var top struct {
		Violations []model.ViolationStat `json:"violations"`
	}
	decode(t, rec, &top)
	require.Len(t, top.Violations, 1)
	assert.Equal(t, "pay_payslip", top.Violations[0].QuestionID)
	assert.Equal(t, int64(1), top.Violations[0].Count)
	assert.NotContains(t, rec.Body.String(), "user-1")
	assert.NotContains(t, rec.Body.String(), "Тајна ДОО")

	rec = s.do("GET", "/v1/health-check/payment/assessments/latest", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
