package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/dmitrijs2005/recruit/internal/client/models"
)

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.AuthData, error) {
	return call[models.AuthData](ctx, c, http.MethodPost, "/auth/login", nil,
		models.Credentials{Email: email, Password: password})
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (models.AuthData, error) {
	return call[models.AuthData](ctx, c, http.MethodPost, "/auth/register", nil, req)
}

// UploadResume streams the resume as multipart/form-data without buffering
// the whole file in memory.
func (c *HTTPClient) UploadResume(ctx context.Context, in models.ResumeUpload) (models.RegistrationDraft, error) {
	if in.File == nil {
		return models.RegistrationDraft{}, fmt.Errorf("upload resume: no file")
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeResumeForm(mw, in))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/auth/register/upload", nil), pr)
	if err != nil {
		_ = pr.Close()
		return models.RegistrationDraft{}, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", mw.FormDataContentType())

	draft, err := send[models.RegistrationDraft](c, req)
	// Unblocks the writer goroutine if the transport stopped reading early.
	_ = pr.CloseWithError(io.ErrClosedPipe)
	return draft, err
}

func writeResumeForm(mw *multipart.Writer, in models.ResumeUpload) error {
	fields := [][2]string{
		{"email", in.Email},
		{"password", in.Password},
		{"role", string(in.Role)},
	}
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return err
		}
	}

	name := filepath.Base(in.FileName)
	if name == "." || name == string(filepath.Separator) {
		name = "resume"
	}
	part, err := mw.CreateFormFile("resumeFile", name)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, in.File); err != nil {
		return fmt.Errorf("read resume: %w", err)
	}
	return mw.Close()
}

func (c *HTTPClient) ConfirmRegistration(ctx context.Context, req models.ConfirmRequest) (models.AuthData, error) {
	return call[models.AuthData](ctx, c, http.MethodPost, "/auth/register/confirm", nil, req)
}
