package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var ErrEmptyPatch = errors.New("patch has no fields")

// UserPatch is a partial User. Only the fields listed here can be patched;
// id and role are fixed for the lifetime of a session.
//
// Apply replaces whole fields. A patched CandidateProfile overwrites the
// previous profile rather than being merged into it.
type UserPatch struct {
	Email            *string           `json:"email,omitempty"`
	CandidateProfile *CandidateProfile `json:"candidateProfile,omitempty"`
	CompanyProfile   *CompanyProfile   `json:"companyProfile,omitempty"`
}

// ParseUserPatch decodes a JSON object into a UserPatch, rejecting keys that
// are not patchable and trailing data after the object.
func ParseUserPatch(r io.Reader) (UserPatch, error) {
	var p UserPatch

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return UserPatch{}, fmt.Errorf("decode user patch: %w", err)
	}
	if dec.More() {
		return UserPatch{}, errors.New("decode user patch: trailing data")
	}
	if p.IsEmpty() {
		return UserPatch{}, ErrEmptyPatch
	}
	return p, nil
}

// ParseUserPatchString is ParseUserPatch for inline input.
func ParseUserPatchString(s string) (UserPatch, error) {
	return ParseUserPatch(bytes.NewBufferString(s))
}

func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.CandidateProfile == nil && p.CompanyProfile == nil
}

// Apply returns a copy of u with the patch fields replaced.
func (u User) Apply(p UserPatch) User {
	out := u.Clone()
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.CandidateProfile != nil {
		out.CandidateProfile = User{CandidateProfile: p.CandidateProfile}.Clone().CandidateProfile
	}
	if p.CompanyProfile != nil {
		out.CompanyProfile = User{CompanyProfile: p.CompanyProfile}.Clone().CompanyProfile
	}
	return out
}
