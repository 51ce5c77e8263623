package stubapi

import (
	"net/http"

	"github.com/dmitrijs2005/recruit/internal/client/models"
	"github.com/gorilla/mux"
)

func (s *Server) apply(w http.ResponseWriter, r *http.Request) {
	var req models.ApplyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	a, err := s.data.Apply(userFrom(r.Context()).ID, req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.ok(w, r, http.StatusCreated, a)
}

func (s *Server) candidateApplications(w http.ResponseWriter, r *http.Request) {
	s.ok(w, r, http.StatusOK, s.data.CandidateApplications(userFrom(r.Context()).ID))
}

func (s *Server) companyApplications(w http.ResponseWriter, r *http.Request) {
	s.ok(w, r, http.StatusOK, s.data.CompanyApplications(userFrom(r.Context()).ID))
}

func (s *Server) setApplicationStatus(w http.ResponseWriter, r *http.Request) {
	var req models.StatusUpdate
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	a, err := s.data.SetApplicationStatus(userFrom(r.Context()).ID, mux.Vars(r)["id"], req.Status)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.ok(w, r, http.StatusOK, a)
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.data.CandidateProfile(userFrom(r.Context()).ID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.ok(w, r, http.StatusOK, p)
}

func (s *Server) putProfile(w http.ResponseWriter, r *http.Request) {
	var p models.CandidateProfile
	if err := decodeJSON(w, r, &p); err != nil {
		s.fail(w, r, err)
		return
	}
	out, err := s.data.UpdateCandidateProfile(userFrom(r.Context()).ID, p)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.ok(w, r, http.StatusOK, out)
}

func (s *Server) assessmentScores(w http.ResponseWriter, r *http.Request) {
	s.ok(w, r, http.StatusOK, s.data.AssessmentScores(userFrom(r.Context()).ID))
}
