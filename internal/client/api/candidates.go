package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/recruit/internal/client/models"
)

func (c *HTTPClient) CandidateProfile(ctx context.Context) (models.CandidateProfile, error) {
	return call[models.CandidateProfile](ctx, c, http.MethodGet, "/candidates/profile", nil, nil)
}

func (c *HTTPClient) UpdateCandidateProfile(ctx context.Context, p models.CandidateProfile) (models.CandidateProfile, error) {
	return call[models.CandidateProfile](ctx, c, http.MethodPut, "/candidates/profile", nil, p)
}

func (c *HTTPClient) AssessmentScores(ctx context.Context) ([]models.AssessmentScore, error) {
	return call[[]models.AssessmentScore](ctx, c, http.MethodGet, "/candidates/assessment-scores", nil, nil)
}
