package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/recruit/internal/client/models"
)

func (c *HTTPClient) Apply(ctx context.Context, req models.ApplyRequest) (models.Application, error) {
	return call[models.Application](ctx, c, http.MethodPost, "/applications", nil, req)
}

func (c *HTTPClient) CandidateApplications(ctx context.Context) ([]models.Application, error) {
	return call[[]models.Application](ctx, c, http.MethodGet, "/candidates/applications", nil, nil)
}

func (c *HTTPClient) CompanyApplications(ctx context.Context) ([]models.Application, error) {
	return call[[]models.Application](ctx, c, http.MethodGet, "/companies/applications", nil, nil)
}

func (c *HTTPClient) UpdateApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus) (models.Application, error) {
	return call[models.Application](ctx, c, http.MethodPut, "/applications/"+url.PathEscape(id)+"/status", nil,
		models.StatusUpdate{Status: status})
}
