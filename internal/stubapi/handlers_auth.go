package stubapi

import (
	"net/http"

	"github.com/dmitrijs2005/recruit/internal/client/models"
)

// maxResumeSize bounds the multipart upload.
const maxResumeSize = 10 << 20

func (s *Server) issue(w http.ResponseWriter, r *http.Request, status int, u models.User) {
	token, err := GenerateToken(u.ID, u.Role, s.secret, s.tokenTTL)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.ok(w, r, status, models.AuthData{User: u, Token: token})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req models.Credentials
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	u, err := s.data.Authenticate(req.Email, req.Password)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.issue(w, r, http.StatusOK, u)
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	u, err := s.data.CreateAccount(req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.log.Info(r.Context(), "account created", "user_id", u.ID, "role", u.Role)
	s.issue(w, r, http.StatusCreated, u)
}

// uploadResume accepts the resume but only checks that it is present and
// non-empty. The draft is built from the email alone.
func (s *Server) uploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxResumeSize)
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		s.fail(w, r, failure(ErrInvalid, "Expected a multipart form of at most 10 MB"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	if role := r.FormValue("role"); role != "" && role != string(models.RoleCandidate) {
		s.fail(w, r, failure(ErrInvalid, "Resume registration is only available to candidates"))
		return
	}

	file, hdr, err := r.FormFile("resumeFile")
	if err != nil {
		s.fail(w, r, failure(ErrInvalid, "resumeFile is required"))
		return
	}
	file.Close()
	if hdr.Size == 0 {
		s.fail(w, r, failure(ErrInvalid, "resumeFile is empty"))
		return
	}

	draft, err := s.data.StartRegistration(r.FormValue("email"), r.FormValue("password"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.log.Info(r.Context(), "registration started", "session_id", draft.SessionID, "file", hdr.Filename, "size", hdr.Size)
	s.ok(w, r, http.StatusOK, draft)
}

func (s *Server) confirmRegistration(w http.ResponseWriter, r *http.Request) {
	var req models.ConfirmRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	u, err := s.data.ConfirmRegistration(req.SessionID, req.ParsedData)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.issue(w, r, http.StatusCreated, u)
}
