package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recruit/internal/client/models"
)

func (a *App) apply(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("apply")
	}
	letter, err := GetMultiline(a.reader, "Cover letter (optional)", a.out)
	if err != nil {
		return err
	}
	app, err := a.api.Apply(ctx, models.ApplyRequest{JobID: args[0], CoverLetter: letter})
	if err != nil {
		return err
	}
	a.printf("Applied to %s, application %s is %s.\n", orDash(app.JobTitle), app.ID, app.Status)
	return nil
}

func (a *App) applications(ctx context.Context, _ []string) error {
	apps, err := a.api.CandidateApplications(ctx)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		a.println("You have not applied to any jobs yet.")
		return nil
	}
	tw := newTable(a.out, "ID", "JOB", "STATUS", "SCORE", "APPLIED")
	for _, ap := range apps {
		row(tw, ap.ID, orDash(ap.JobTitle), string(ap.Status), formatScore(ap.Score), formatDate(ap.AppliedAt))
	}
	return tw.Flush()
}

func (a *App) profile(ctx context.Context, _ []string) error {
	p, err := a.api.CandidateProfile(ctx)
	if err != nil {
		return err
	}
	printProfile(a.out, p)
	return nil
}

// profileEdit saves the profile on the backend and mirrors the result into
// the locally stored user.
func (a *App) profileEdit(ctx context.Context, _ []string) error {
	cur, err := a.api.CandidateProfile(ctx)
	if err != nil {
		return err
	}
	a.println("Press Enter to keep a value, '-' to clear it.")

	next := cur
	fields := []struct {
		label string
		value *string
	}{
		{"First name", &next.FirstName},
		{"Last name", &next.LastName},
		{"Phone", &next.Phone},
		{"Location", &next.Location},
		{"Current position", &next.CurrentPosition},
		{"Education", &next.Education},
		{"Summary", &next.Summary},
	}
	for _, f := range fields {
		v, err := GetWithDefault(a.reader, f.label, *f.value, a.out)
		if err != nil {
			return err
		}
		*f.value = v
	}
	skills, err := GetWithDefault(a.reader, "Skills (comma separated)", strings.Join(cur.Skills, ", "), a.out)
	if err != nil {
		return err
	}
	next.Skills = splitList(skills)

	saved, err := a.api.UpdateCandidateProfile(ctx, next)
	if err != nil {
		return err
	}
	if err := a.store.UpdateUser(ctx, models.UserPatch{CandidateProfile: &saved}); err != nil {
		return fmt.Errorf("profile saved, but the local copy was not updated: %w", err)
	}
	a.println("Profile saved.")
	return nil
}

func (a *App) scores(ctx context.Context, _ []string) error {
	scores, err := a.api.AssessmentScores(ctx)
	if err != nil {
		return err
	}
	if len(scores) == 0 {
		a.println("No assessment scores yet.")
		return nil
	}
	tw := newTable(a.out, "JOB", "SCORE", "SCORED", "SUMMARY")
	for _, s := range scores {
		row(tw, orDash(firstNonEmpty(s.JobTitle, s.JobID)), fmt.Sprintf("%.1f", s.Score), formatDate(s.ScoredAt), orDash(s.Summary))
	}
	return tw.Flush()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
