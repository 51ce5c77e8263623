package models

import "io"

// ResumeUpload is step one of the resume-assisted registration. It is sent
// as multipart form data; File is streamed as the resumeFile part.
type ResumeUpload struct {
	Email    string
	Password string
	Role     Role
	FileName string
	File     io.Reader
}

// ParsedResume is the backend's draft profile extracted from a resume.
// The user may edit any field before confirming.
type ParsedResume struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	CurrentPosition string  `json:"currentPosition,omitempty"`
	Education       string  `json:"education,omitempty"`
	Confidence      float64 `json:"confidence"`
}

// RegistrationDraft correlates a server-side registration session with
// the parsed data awaiting review.
type RegistrationDraft struct {
	SessionID  string       `json:"sessionId"`
	ParsedData ParsedResume `json:"parsedData"`
}

// ConfirmRequest is step two of the resume-assisted registration.
type ConfirmRequest struct {
	SessionID  string       `json:"sessionId"`
	ParsedData ParsedResume `json:"parsedData"`
}
