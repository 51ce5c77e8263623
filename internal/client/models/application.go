package models

import (
	"fmt"
	"time"
)

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewed    ApplicationStatus = "reviewed"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationHired       ApplicationStatus = "hired"
)

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch st := ApplicationStatus(s); st {
	case ApplicationPending, ApplicationReviewed, ApplicationShortlisted, ApplicationRejected, ApplicationHired:
		return st, nil
	default:
		return "", fmt.Errorf("unknown application status %q", s)
	}
}

type Application struct {
	ID             string            `json:"id"`
	JobID          string            `json:"jobId"`
	JobTitle       string            `json:"jobTitle,omitempty"`
	CandidateID    string            `json:"candidateId,omitempty"`
	CandidateName  string            `json:"candidateName,omitempty"`
	CandidateEmail string            `json:"candidateEmail,omitempty"`
	CoverLetter    string            `json:"coverLetter,omitempty"`
	Status         ApplicationStatus `json:"status"`
	Score          *float64          `json:"score,omitempty"`
	AppliedAt      time.Time         `json:"appliedAt,omitzero"`
}

type ApplyRequest struct {
	JobID       string `json:"jobId"`
	CoverLetter string `json:"coverLetter,omitempty"`
}

type StatusUpdate struct {
	Status ApplicationStatus `json:"status"`
}

// AssessmentScore is an opaque score computed by the backend.
type AssessmentScore struct {
	JobID    string    `json:"jobId"`
	JobTitle string    `json:"jobTitle,omitempty"`
	Score    float64   `json:"score"`
	Summary  string    `json:"summary,omitempty"`
	ScoredAt time.Time `json:"scoredAt,omitzero"`
}
