package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/recruit/internal/client/models"
)

func (a *App) candidates(ctx context.Context, args []string) error {
	apps, err := a.companyApplications(ctx, args)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		a.println("No applications yet.")
		return nil
	}
	tw := newTable(a.out, "ID", "JOB", "CANDIDATE", "EMAIL", "STATUS", "SCORE", "APPLIED")
	for _, ap := range apps {
		row(tw, ap.ID, orDash(ap.JobTitle), orDash(ap.CandidateName), orDash(ap.CandidateEmail),
			string(ap.Status), formatScore(ap.Score), formatDate(ap.AppliedAt))
	}
	return tw.Flush()
}

// companyApplications lists the employer's applications, optionally only
// those for the job id in args[0].
func (a *App) companyApplications(ctx context.Context, args []string) ([]models.Application, error) {
	apps, err := a.api.CompanyApplications(ctx)
	if err != nil || len(args) == 0 {
		return apps, err
	}
	out := apps[:0]
	for _, ap := range apps {
		if ap.JobID == args[0] {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (a *App) setStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return a.usage("set-status")
	}
	status, err := models.ParseApplicationStatus(args[1])
	if err != nil {
		return err
	}
	app, err := a.api.UpdateApplicationStatus(ctx, args[0], status)
	if err != nil {
		return err
	}
	a.printf("Application %s is now %s.\n", app.ID, app.Status)
	return nil
}

var csvHeader = []string{"application_id", "job_id", "job_title", "candidate_name", "candidate_email", "status", "score", "applied_at"}

// exportCandidates writes the employer's applications as CSV to a file, or
// to the terminal when the target is "-". A second argument filters by job.
func (a *App) exportCandidates(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return a.usage("export-candidates")
	}
	apps, err := a.companyApplications(ctx, args[1:])
	if err != nil {
		return err
	}

	if args[0] == "-" {
		return writeApplicationsCSV(a.out, apps)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	if err := writeApplicationsCSV(f, apps); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	a.printf("Exported %d applications to %s.\n", len(apps), args[0])
	return nil
}

func writeApplicationsCSV(w io.Writer, apps []models.Application) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, ap := range apps {
		score := ""
		if ap.Score != nil {
			score = strconv.FormatFloat(*ap.Score, 'f', -1, 64)
		}
		applied := ""
		if !ap.AppliedAt.IsZero() {
			applied = ap.AppliedAt.UTC().Format(time.RFC3339)
		}
		rec := []string{ap.ID, ap.JobID, ap.JobTitle, ap.CandidateName, ap.CandidateEmail, string(ap.Status), score, applied}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
