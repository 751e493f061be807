package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"reasonbridge/internal/model"
)

// fakeFeedbackRepo is an in-memory FeedbackRepo. It stores copies so tests
// exercise the read-modify-write path the same way the Mongo repo does.
type fakeFeedbackRepo struct {
	items map[string]*model.Feedback
	seq   int
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{items: map[string]*model.Feedback{}}
}

func (r *fakeFeedbackRepo) Create(_ context.Context, feedback *model.Feedback) error {
	r.seq++
	feedback.ID = fmt.Sprintf("fb%04d", r.seq)
	cp := *feedback
	r.items[feedback.ID] = &cp
	return nil
}

func (r *fakeFeedbackRepo) GetByID(_ context.Context, id string) (*model.Feedback, error) {
	f, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFeedbackRepo) GetByResponseID(_ context.Context, responseID string) ([]*model.Feedback, error) {
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

func (r *fakeFeedbackRepo) Update(_ context.Context, feedback *model.Feedback) error {
	if _, ok := r.items[feedback.ID]; !ok {
		return fmt.Errorf("no feedback with id %s", feedback.ID)
	}
	cp := *feedback
	r.items[feedback.ID] = &cp
	return nil
}

func (r *fakeFeedbackRepo) GroupByType(_ context.Context) ([]model.FeedbackTypeTotals, error) {
	byType := map[model.FeedbackType]*model.FeedbackTypeTotals{}
	for _, f := range r.items {
		t, ok := byType[f.Type]
		if !ok {
			t = &model.FeedbackTypeTotals{Type: f.Type}
			byType[f.Type] = t
		}
		t.Count++
		if f.UserAcknowledged {
			t.Acknowledged++
		}
		if f.UserRevised {
			t.Revised++
		}
		if f.DismissedAt != nil {
			t.Dismissed++
		}
		if f.UserHelpfulRating != nil && *f.UserHelpfulRating == model.RatingHelpful {
			t.RatedHelpful++
		}
	}

	totals := make([]model.FeedbackTypeTotals, 0, len(byType))
	for _, t := range byType {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Type < totals[j].Type })
	return totals, nil
}

// fakeResponseRepo is an in-memory ResponseRepo
type fakeResponseRepo struct {
	items map[string]*model.Response
	seq   int
}

func newFakeResponseRepo() *fakeResponseRepo {
	return &fakeResponseRepo{items: map[string]*model.Response{}}
}

func (r *fakeResponseRepo) Create(_ context.Context, response *model.Response) error {
	r.seq++
	response.ID = fmt.Sprintf("resp%04d", r.seq)
	cp := *response
	r.items[response.ID] = &cp
	return nil
}

func (r *fakeResponseRepo) GetByID(_ context.Context, id string) (*model.Response, error) {
	resp, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *resp
	return &cp, nil
}

func (r *fakeResponseRepo) GetByTopicID(_ context.Context, topicID string) ([]*model.Response, error) {
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

func (r *fakeResponseRepo) Update(_ context.Context, response *model.Response) error {
	if _, ok := r.items[response.ID]; !ok {
		return fmt.Errorf("no response with id %s", response.ID)
	}
	cp := *response
	r.items[response.ID] = &cp
	return nil
}

// fakePreviewCache records hit/set counts so tests can assert cache behavior
type fakePreviewCache struct {
	entries map[string]*model.PreviewResult
	hits    int
	sets    int
}

func newFakePreviewCache() *fakePreviewCache {
	return &fakePreviewCache{entries: map[string]*model.PreviewResult{}}
}

func (c *fakePreviewCache) key(hash string, sensitivity model.Sensitivity) string {
	return string(sensitivity) + ":" + hash
}

func (c *fakePreviewCache) Get(_ context.Context, hash string, sensitivity model.Sensitivity) (*model.PreviewResult, error) {
	result, ok := c.entries[c.key(hash, sensitivity)]
	if !ok {
		return nil, nil
	}
	c.hits++
	return result, nil
}

func (c *fakePreviewCache) Set(_ context.Context, hash string, sensitivity model.Sensitivity, result *model.PreviewResult) error {
	c.sets++
	c.entries[c.key(hash, sensitivity)] = result
	return nil
}

// failingPreviewCache simulates a Redis outage on every operation
type failingPreviewCache struct{}

func (failingPreviewCache) Get(context.Context, string, model.Sensitivity) (*model.PreviewResult, error) {
	return nil, errors.New("dial tcp: connection refused")
}

func (failingPreviewCache) Set(context.Context, string, model.Sensitivity, *model.PreviewResult) error {
	return errors.New("dial tcp: connection refused")
}
