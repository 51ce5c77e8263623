package stubapi

import (
	"net/http"

	"github.com/dmitrijs2005/recruit/internal/client/models"
	"github.com/gorilla/mux"
)

func (s *Server) listJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.ok(w, r, http.StatusOK, s.data.ListJobs(models.JobFilter{
		Search:         q.Get("search"),
		Location:       q.Get("location"),
		EmploymentType: q.Get("employmentType"),
	}))
}

func (s *Server) getJob(w http.ResponseWriter, r *http.Request) {
	j, err := s.data.GetJob(mux.Vars(r)["id"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.ok(w, r, http.StatusOK, j)
}

func (s *Server) createJob(w http.ResponseWriter, r *http.Request) {
	var in models.JobInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	j, err := s.data.CreateJob(userFrom(r.Context()), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.ok(w, r, http.StatusCreated, j)
}

func (s *Server) updateJob(w http.ResponseWriter, r *http.Request) {
	var in models.JobInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	j, err := s.data.UpdateJob(userFrom(r.Context()).ID, mux.Vars(r)["id"], in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.ok(w, r, http.StatusOK, j)
}

func (s *Server) deleteJob(w http.ResponseWriter, r *http.Request) {
	if err := s.data.DeleteJob(userFrom(r.Context()).ID, mux.Vars(r)["id"]); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
