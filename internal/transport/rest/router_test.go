package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reasonbridge/internal/analysis"
	"reasonbridge/internal/config"
	"reasonbridge/internal/model"
	"reasonbridge/internal/service"
)

type memFeedbackRepo struct {
	items map[string]*model.Feedback
	seq   int
}

func (r *memFeedbackRepo) Create(_ context.Context, f *model.Feedback) error {
	r.seq++
	f.ID = fmt.Sprintf("fb%04d", r.seq)
	cp := *f
	r.items[f.ID] = &cp
	return nil
}

func (r *memFeedbackRepo) GetByID(_ context.Context, id string) (*model.Feedback, error) {
	f, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *memFeedbackRepo) GetByResponseID(_ context.Context, responseID string) ([]*model.Feedback, error) {
	ids := make([]string, 0, len(r.items))
	for id, f := range r.items {
		if f.ResponseID == responseID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	out := make([]*model.Feedback, 0, len(ids))
	for _, id := range ids {
		cp := *r.items[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memFeedbackRepo) Update(_ context.Context, f *model.Feedback) error {
	cp := *f
	r.items[f.ID] = &cp
	return nil
}

func (r *memFeedbackRepo) GroupByType(_ context.Context) ([]model.FeedbackTypeTotals, error) {
	byType := map[model.FeedbackType]*model.FeedbackTypeTotals{}
	for _, f := range r.items {
		t, ok := byType[f.Type]
		if !ok {
			t = &model.FeedbackTypeTotals{Type: f.Type}
			byType[f.Type] = t
		}
		t.Count++
	}
	totals := make([]model.FeedbackTypeTotals, 0, len(byType))
	for _, t := range byType {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Type < totals[j].Type })
	return totals, nil
}

type memResponseRepo struct {
	items map[string]*model.Response
	seq   int
}

func (r *memResponseRepo) Create(_ context.Context, resp *model.Response) error {
	r.seq++
	resp.ID = fmt.Sprintf("resp%04d", r.seq)
	cp := *resp
	r.items[resp.ID] = &cp
	return nil
}

func (r *memResponseRepo) GetByID(_ context.Context, id string) (*model.Response, error) {
	resp, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *resp
	return &cp, nil
}

func (r *memResponseRepo) GetByTopicID(_ context.Context, topicID string) ([]*model.Response, error) {
	ids := make([]string, 0, len(r.items))
	for id, resp := range r.items {
		if resp.TopicID == topicID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	out := make([]*model.Response, 0, len(ids))
	for _, id := range ids {
		cp := *r.items[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memResponseRepo) Update(_ context.Context, resp *model.Response) error {
	cp := *resp
	r.items[resp.ID] = &cp
	return nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:   "test-secret",
		ModUsername: "admin",
		ModPassword: "password123",
	}

	feedbackRepo := &memFeedbackRepo{items: map[string]*model.Feedback{}}
	responseRepo := &memResponseRepo{items: map[string]*model.Response{}}

	analyzer := analysis.NewAnalyzer()
	container := &Container{
		AuthService:         service.NewAuthService(cfg),
		ResponseService:     service.NewResponseService(responseRepo),
		FeedbackService:     service.NewFeedbackService(feedbackRepo, responseRepo, nil, analyzer),
		AnalyticsService:    service.NewAnalyticsService(feedbackRepo, nil),
		CommonGroundService: service.NewCommonGroundService(responseRepo, nil),
	}

	srv := httptest.NewServer(NewRouter(container))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body interface{}, out interface{}) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func joinParticipant(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	var join model.JoinResponse
	status := doJSON(t, http.MethodPost, srv.URL+"/v1/participants", "", model.JoinRequest{DisplayName: "Dana"}, &join)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, join.Token)
	return join.Token
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestParticipantRoutesRequireAuth(t *testing.T) {
	srv := newTestServer(t)

	status := doJSON(t, http.MethodPost, srv.URL+"/v1/responses", "", map[string]string{
		"topicId": "t1", "stance": "support", "content": "Hello.",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestResponseAndFeedbackFlow(t *testing.T) {
	srv := newTestServer(t)
	token := joinParticipant(t, srv)

	var created map[string]string
	status := doJSON(t, http.MethodPost, srv.URL+"/v1/responses", token, map[string]string{
		"topicId": "topic_remote_work",
		"stance":  "support",
		"content": "You're stupid. Obviously you don't get it.",
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	responseID := created["responseId"]
	require.NotEmpty(t, responseID)

	var requested struct {
		Feedback []*model.Feedback `json:"feedback"`
	}
	status = doJSON(t, http.MethodPost, srv.URL+"/v1/responses/"+responseID+"/feedback", token, map[string]string{}, &requested)
	require.Equal(t, http.StatusCreated, status)
	require.Len(t, requested.Feedback, 1)
	assert.Equal(t, model.FeedbackTypeInflammatory, requested.Feedback[0].Type)
	assert.True(t, requested.Feedback[0].DisplayedToUser)

	feedbackID := requested.Feedback[0].ID
	var acked model.Feedback
	status = doJSON(t, http.MethodPost, srv.URL+"/v1/feedback/"+feedbackID+"/acknowledge", token, nil, &acked)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, acked.UserAcknowledged)

	var dismissed model.Feedback
	status = doJSON(t, http.MethodPatch, srv.URL+"/v1/feedback/"+feedbackID+"/dismiss", token, map[string]string{
		"dismissalReason": "not applicable",
	}, &dismissed)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, dismissed.IsDismissed())

	var metrics model.ClarityMetrics
	status = doJSON(t, http.MethodGet, srv.URL+"/v1/responses/"+responseID+"/clarity", token, nil, &metrics)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, metrics.IssuesDetected)
}

func TestFeedbackRequestUnknownResponse(t *testing.T) {
	srv := newTestServer(t)
	token := joinParticipant(t, srv)

	status := doJSON(t, http.MethodPost, srv.URL+"/v1/responses/missing/feedback", token, map[string]string{}, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPreviewEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := joinParticipant(t, srv)

	var result model.PreviewResult
	status := doJSON(t, http.MethodPost, srv.URL+"/v1/ai/feedback/preview", token, map[string]string{
		"content":     "By that logic, everyone knows that this will lead to disaster.",
		"sensitivity": "MEDIUM",
	}, &result)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, result.ReadyToPost)
	require.Len(t, result.Feedback, 1)
	assert.Equal(t, model.FeedbackTypeFallacy, result.Feedback[0].Type)
}

func TestCommonGroundEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := joinParticipant(t, srv)

	for _, body := range []map[string]string{
		{"topicId": "t1", "stance": "support", "content": "Remote productivity improves with flexible schedules."},
		{"topicId": "t1", "stance": "oppose", "content": "Team productivity drops without mentoring in person."},
	} {
		status := doJSON(t, http.MethodPost, srv.URL+"/v1/responses", token, body, nil)
		require.Equal(t, http.StatusCreated, status)
	}

	var summary model.CommonGroundSummary
	status := doJSON(t, http.MethodGet, srv.URL+"/v1/topics/t1/common-ground", token, nil, &summary)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, summary.TotalResponses)
	assert.Equal(t, 1, summary.SupportCount)
	assert.Equal(t, 1, summary.OpposeCount)
}

func TestAnalyticsRequiresModerator(t *testing.T) {
	srv := newTestServer(t)

	status := doJSON(t, http.MethodGet, srv.URL+"/v1/analytics/feedback", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	// participant tokens are not accepted on moderator routes
	token := joinParticipant(t, srv)
	status = doJSON(t, http.MethodGet, srv.URL+"/v1/analytics/feedback", token, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	var login model.LoginResponse
	status = doJSON(t, http.MethodPost, srv.URL+"/v1/auth/login", "", model.LoginRequest{Username: "admin", Password: "password123"}, &login)
	require.Equal(t, http.StatusOK, status)

	var rollup model.FeedbackRollup
	status = doJSON(t, http.MethodGet, srv.URL+"/v1/analytics/feedback", login.Token, nil, &rollup)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, rollup.TotalFeedback)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv := newTestServer(t)

	status := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/login", "", model.LoginRequest{Username: "admin", Password: "nope"}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}
