package api

import (
	"context"

	"github.com/dmitrijs2005/recruit/internal/client/models"
)

// AuthClient is the subset of the backend used by the session store.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (models.AuthData, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthData, error)
	UploadResume(ctx context.Context, req models.ResumeUpload) (models.RegistrationDraft, error)
	ConfirmRegistration(ctx context.Context, req models.ConfirmRequest) (models.AuthData, error)
}

type JobsClient interface {
	ListJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error)
	GetJob(ctx context.Context, id string) (models.Job, error)
	CreateJob(ctx context.Context, in models.JobInput) (models.Job, error)
	UpdateJob(ctx context.Context, id string, in models.JobInput) (models.Job, error)
	DeleteJob(ctx context.Context, id string) error
}

type ApplicationsClient interface {
	Apply(ctx context.Context, req models.ApplyRequest) (models.Application, error)
	CandidateApplications(ctx context.Context) ([]models.Application, error)
	CompanyApplications(ctx context.Context) ([]models.Application, error)
	UpdateApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus) (models.Application, error)
}

type CandidatesClient interface {
	CandidateProfile(ctx context.Context) (models.CandidateProfile, error)
	UpdateCandidateProfile(ctx context.Context, p models.CandidateProfile) (models.CandidateProfile, error)
	AssessmentScores(ctx context.Context) ([]models.AssessmentScore, error)
}

// Client is the full backend surface.
type Client interface {
	AuthClient
	JobsClient
	ApplicationsClient
	CandidatesClient
}
