package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/recruit/internal/client/guard"
	"github.com/dmitrijs2005/recruit/internal/client/models"
	"github.com/dmitrijs2005/recruit/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// getPassword is an indirection so tests need no terminal.
var getPassword = GetPassword

func (a *App) home(ctx context.Context, _ []string) error {
	u, ok := a.store.User()
	if !ok {
		a.println("You are not signed in. Try 'jobs', 'login', 'register' or 'register-resume'.")
		return nil
	}
	a.printf("Hello, %s.\n", u.DisplayName())
	switch u.Role {
	case models.RoleCandidate:
		a.println("Try 'jobs', 'apply <job id>', 'applications' or 'scores'.")
	case models.RoleEmployer:
		a.println("Try 'post-job', 'candidates' or 'export-candidates <file>'.")
	}
	return nil
}

// login prompts for credentials (the email may be given as an argument) and
// signs in through the session store.
func (a *App) login(ctx context.Context, args []string) error {
	email := ""
	if len(args) > 0 {
		email = args[0]
	} else {
		var err error
		if email, err = GetSimpleText(a.reader, "Enter email", a.out); err != nil {
			return err
		}
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.store.Login(ctx, email, string(password)); err != nil {
		return err
	}
	a.signedIn("Login successful.")
	return nil
}

func (a *App) register(ctx context.Context, _ []string) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	roleText, err := GetSimpleText(a.reader, "Account type (candidate/employer)", a.out)
	if err != nil {
		return err
	}
	role, err := models.ParseRole(strings.ToLower(roleText))
	if err != nil {
		return err
	}

	req := models.RegisterRequest{Email: email, Password: string(password), Role: role}
	switch role {
	case models.RoleCandidate:
		if req.FirstName, err = GetSimpleText(a.reader, "First name", a.out); err != nil {
			return err
		}
		if req.LastName, err = GetSimpleText(a.reader, "Last name", a.out); err != nil {
			return err
		}
	case models.RoleEmployer:
		if req.CompanyName, err = GetSimpleText(a.reader, "Company name", a.out); err != nil {
			return err
		}
	}

	if err := a.store.Register(ctx, req); err != nil {
		return err
	}
	a.signedIn("Registration successful.")
	return nil
}

// registerResume is the two-step candidate registration: upload a resume,
// review what the backend extracted, then confirm.
func (a *App) registerResume(ctx context.Context, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	} else {
		var err error
		if path, err = GetSimpleText(a.reader, "Path to your resume (PDF or DOCX)", a.out); err != nil {
			return err
		}
	}
	if path == "" {
		return a.usage("register-resume")
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open resume: %w", err)
	}
	defer f.Close()

	a.println("Uploading and parsing your resume...")
	draft, err := a.store.UploadResumeAndParse(ctx, models.ResumeUpload{
		Email:    email,
		Password: string(password),
		Role:     models.RoleCandidate,
		FileName: path,
		File:     f,
	})
	if err != nil {
		return err
	}

	data, err := a.reviewDraft(draft.ParsedData)
	if err != nil {
		return err
	}
	ok, err := GetConfirm(a.reader, "Create the account with these details?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Registration not confirmed.")
		return nil
	}

	if err := a.store.ConfirmRegistration(ctx, draft.SessionID, data); err != nil {
		return err
	}
	a.signedIn("Registration successful.")
	return nil
}

// reviewDraft lets the user correct every parsed field. Confidence is the
// backend's and is passed through untouched.
func (a *App) reviewDraft(d models.ParsedResume) (models.ParsedResume, error) {
	a.printf("We extracted these details (confidence %.0f%%). Press Enter to keep a value, '-' to clear it.\n", d.Confidence*100)

	fields := []struct {
		label string
		value *string
	}{
		{"First name", &d.FirstName},
		{"Last name", &d.LastName},
		{"Email", &d.Email},
		{"Current position", &d.CurrentPosition},
		{"Education", &d.Education},
	}
	for _, f := range fields {
		v, err := GetWithDefault(a.reader, f.label, *f.value, a.out)
		if err != nil {
			return models.ParsedResume{}, err
		}
		*f.value = v
	}
	return d, nil
}

func (a *App) signedIn(msg string) {
	a.println(msg)
	if u, ok := a.store.User(); ok {
		a.printf("Signed in as %s (%s).\n", u.DisplayName(), u.Role)
	}
	a.nav.redirect(guard.RouteRoot, "")
}

func (a *App) logout(ctx context.Context, _ []string) error {
	if err := a.store.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out.")
	a.nav.redirect(guard.RouteLogin, "")
	return nil
}

func (a *App) whoami(ctx context.Context, _ []string) error {
	u, ok := a.store.User()
	if !ok {
		return nil
	}
	a.printf("ID:    %s\n", u.ID)
	a.printf("Name:  %s\n", u.DisplayName())
	a.printf("Email: %s\n", u.Email)
	a.printf("Role:  %s\n", u.Role)
	if exp, ok := tokenExpiry(a.store.Token()); ok {
		a.printf("Token expires: %s (in %s)\n", exp.Local().Format(time.DateTime), time.Until(exp).Round(time.Minute))
	}
	return nil
}

// tokenExpiry reads exp from a JWT without verifying it. The server is the
// only judge of validity; this is for display.
func tokenExpiry(token string) (time.Time, bool) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// settings edits the locally stored user with a JSON patch. Nothing is sent
// to the backend.
func (a *App) settings(ctx context.Context, _ []string) error {
	text, err := GetMultiline(a.reader,
		`Enter a JSON patch with any of "email", "candidateProfile", "companyProfile"`, a.out)
	if err != nil {
		return err
	}
	patch, err := models.ParseUserPatchString(text)
	if err != nil {
		return err
	}
	if err := a.store.UpdateUser(ctx, patch); err != nil {
		return err
	}
	a.println("Settings saved on this device.")
	return nil
}
