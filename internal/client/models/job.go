package models

import "time"

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

type Job struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Requirements   []string  `json:"requirements,omitempty"`
	Location       string    `json:"location,omitempty"`
	EmploymentType string    `json:"employmentType,omitempty"`
	SalaryMin      int       `json:"salaryMin,omitempty"`
	SalaryMax      int       `json:"salaryMax,omitempty"`
	CompanyID      string    `json:"companyId,omitempty"`
	CompanyName    string    `json:"companyName,omitempty"`
	Status         JobStatus `json:"status,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitzero"`
}

// JobInput is the create/update body for a job posting.
type JobInput struct {
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Requirements   []string  `json:"requirements,omitempty"`
	Location       string    `json:"location,omitempty"`
	EmploymentType string    `json:"employmentType,omitempty"`
	SalaryMin      int       `json:"salaryMin,omitempty"`
	SalaryMax      int       `json:"salaryMax,omitempty"`
	Status         JobStatus `json:"status,omitempty"`
}

// JobFilter narrows GET /jobs. Empty fields are not sent.
type JobFilter struct {
	Search         string
	Location       string
	EmploymentType string
}
