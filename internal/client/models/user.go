// Package models defines the records exchanged with the recruiting backend
// and mirrored in the client's durable session storage.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Role is the account kind. It decides which pages a user may open.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates s against the known roles.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleCandidate, RoleEmployer:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// User is the authenticated identity returned by the auth endpoints.
type User struct {
	ID               string            `json:"id"`
	Email            string            `json:"email"`
	Role             Role              `json:"role"`
	CandidateProfile *CandidateProfile `json:"candidateProfile,omitempty"`
	CompanyProfile   *CompanyProfile   `json:"companyProfile,omitempty"`
}

// DisplayName prefers the profile name and falls back to the email.
func (u User) DisplayName() string {
	if p := u.CandidateProfile; p != nil && (p.FirstName != "" || p.LastName != "") {
		if p.LastName == "" {
			return p.FirstName
		}
		if p.FirstName == "" {
			return p.LastName
		}
		return p.FirstName + " " + p.LastName
	}
	if p := u.CompanyProfile; p != nil && p.CompanyName != "" {
		return p.CompanyName
	}
	return u.Email
}

type CandidateProfile struct {
	FirstName       string   `json:"firstName,omitempty"`
	LastName        string   `json:"lastName,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Location        string   `json:"location,omitempty"`
	CurrentPosition string   `json:"currentPosition,omitempty"`
	Education       string   `json:"education,omitempty"`
	Summary         string   `json:"summary,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	ResumeURL       string   `json:"resumeUrl,omitempty"`
}

type CompanyProfile struct {
	CompanyName string `json:"companyName,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Website     string `json:"website,omitempty"`
	Size        string `json:"size,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// AuthData is the payload of every successful login-like call.
//
// RawUser keeps the user object exactly as the backend sent it, including
// fields User does not model. It is set only by UnmarshalJSON.
type AuthData struct {
	User    User            `json:"user"`
	Token   string          `json:"token"`
	RawUser json.RawMessage `json:"-"`
}

func (a *AuthData) UnmarshalJSON(b []byte) error {
	var wire struct {
		User  json.RawMessage `json:"user"`
		Token string          `json:"token"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	*a = AuthData{Token: wire.Token}
	if len(wire.User) == 0 || string(wire.User) == "null" {
		return nil
	}
	if err := json.Unmarshal(wire.User, &a.User); err != nil {
		return err
	}
	a.RawUser = wire.User
	return nil
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the plain registration body. Name fields apply to
// candidates, CompanyName to employers; the caller picks the subset.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        Role   `json:"role"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
}

// Clone returns a copy of u that shares no pointers or slices with it.
func (u User) Clone() User {
	out := u
	if u.CandidateProfile != nil {
		cp := *u.CandidateProfile
		cp.Skills = append([]string(nil), u.CandidateProfile.Skills...)
		out.CandidateProfile = &cp
	}
	if u.CompanyProfile != nil {
		cp := *u.CompanyProfile
		out.CompanyProfile = &cp
	}
	return out
}
