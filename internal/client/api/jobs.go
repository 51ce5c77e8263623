package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/recruit/internal/client/models"
)

func (c *HTTPClient) ListJobs(ctx context.Context, f models.JobFilter) ([]models.Job, error) {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Location != "" {
		q.Set("location", f.Location)
	}
	if f.EmploymentType != "" {
		q.Set("employmentType", f.EmploymentType)
	}
	return call[[]models.Job](ctx, c, http.MethodGet, "/jobs", q, nil)
}

func (c *HTTPClient) GetJob(ctx context.Context, id string) (models.Job, error) {
	return call[models.Job](ctx, c, http.MethodGet, "/jobs/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) CreateJob(ctx context.Context, in models.JobInput) (models.Job, error) {
	return call[models.Job](ctx, c, http.MethodPost, "/jobs", nil, in)
}

func (c *HTTPClient) UpdateJob(ctx context.Context, id string, in models.JobInput) (models.Job, error) {
	return call[models.Job](ctx, c, http.MethodPut, "/jobs/"+url.PathEscape(id), nil, in)
}

func (c *HTTPClient) DeleteJob(ctx context.Context, id string) error {
	_, err := call[struct{}](ctx, c, http.MethodDelete, "/jobs/"+url.PathEscape(id), nil, nil)
	return err
}
